package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/playground/internal/config"
	"github.com/Zachkp/playground/internal/content"
	"github.com/Zachkp/playground/internal/score"
	"github.com/Zachkp/playground/internal/storage"
)

// app holds what the handlers share.
type app struct {
	cfg      config.Server
	db       *storage.DB
	scores   *score.Store
	sessions *sessions
	// send delivers a contact message.
	send func(name, email, message string) error
}

func newApp(cfg config.Server, db *storage.DB, scores *score.Store) *app {
	a := &app{cfg: cfg, db: db, scores: scores, sessions: newSessions()}
	a.send = func(name, email, message string) error {
		return sendContactEmail(cfg.SMTP, name, email, message)
	}
	return a
}

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Seed(content.Defaults()); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	scores, err := score.Open(storage.Record{DB: db, Key: score.StorageKey})
	if err != nil {
		log.Fatalf("Failed to load leaderboard: %v", err)
	}

	initAdmin(cfg)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")
	newApp(cfg, db, scores).routes(r)

	r.Run(":" + cfg.Port)
}

func (a *app) routes(r *gin.Engine) {
	r.GET("/", a.home)

	// HTMX contact form fragment
	r.GET("/contact-form", func(c *gin.Context) {
		values := a.pageContent()
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title":  values["contact_title"],
			"button": values["contact_button"],
		})
	})
	r.POST("/contact", a.contact)

	api := r.Group("/api")
	api.GET("/content", func(c *gin.Context) {
		values, err := a.db.Content()
		if err != nil {
			log.Printf("Error loading content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"content": values})
	})
	api.GET("/leaderboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"leaderboard": a.scores.All()})
	})
	api.POST("/leaderboard", a.mergeLeaderboard)
	api.GET("/leaderboard/stream", a.streamLeaderboard)

	a.adminRoutes(r)
}

type leaderboardRow struct {
	Key   string
	Title string
	Score int
}

func (a *app) leaderboardRows() []leaderboardRow {
	board := a.scores.All()
	rows := make([]leaderboardRow, 0, len(gameBlurbs))
	for _, g := range gameBlurbs {
		rows = append(rows, leaderboardRow{Key: g.Key, Title: g.Title, Score: board[score.Key(g.Key)]})
	}
	return rows
}

// pageContent is the editable content for rendered pages. Pages still
// render with the default copy when the store cannot be read.
func (a *app) pageContent() map[string]string {
	values, err := a.db.Content()
	if err != nil {
		log.Printf("Error loading content, using defaults: %v", err)
		return content.Defaults()
	}
	return values
}

func (a *app) home(c *gin.Context) {
	values := a.pageContent()
	settings := content.Parse(values)

	cards := make([]Project, len(projects))
	for i, p := range projects {
		p.Title = values[p.TitleKey]
		cards[i] = p
	}

	enabled := map[string]bool{
		"block":  settings.EnableBlockBlast,
		"cat":    settings.EnableCatMouse,
		"rocket": settings.EnableRocketTouch,
	}
	var games []GameBlurb
	for _, g := range gameBlurbs {
		if on, gated := enabled[g.Key]; gated && !on {
			continue
		}
		games = append(games, g)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"content":     values,
		"theme":       settings.Theme,
		"projects":    cards,
		"games":       games,
		"leaderboard": a.leaderboardRows(),
	})
}

// mergeLeaderboard max-merges the posted scores. Keys that are not games
// and values that are not whole, non-negative numbers are ignored.
func (a *app) mergeLeaderboard(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	board := score.Board{}
	for k, v := range body {
		key, ok := score.ParseKey(k)
		if !ok {
			continue
		}
		f, ok := v.(float64)
		if !ok || f < 0 || f != float64(int(f)) {
			continue
		}
		board[key] = int(f)
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": a.scores.Merge(board)})
}

// streamLeaderboard sends the board as a "leaderboard" event on connect and
// after every change. Slow clients only get the latest board.
func (a *app) streamLeaderboard(c *gin.Context) {
	updates := make(chan score.Board, 1)
	unsubscribe := a.scores.Subscribe(func(b score.Board) {
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- b:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("leaderboard", a.scores.All())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case b := <-updates:
			c.SSEvent("leaderboard", b)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// validateContact returns a user-facing problem with the submission, or ""
// when it can be sent.
func validateContact(name, email, message string) string {
	switch {
	case strings.TrimSpace(name) == "":
		return "Please tell me your name."
	case !strings.Contains(email, "@"):
		return "Please enter a valid email address."
	case len([]rune(strings.TrimSpace(message))) < 8:
		return "Your message should be at least 8 characters."
	}
	return ""
}

// Handle contact form submission with HTMX
func (a *app) contact(c *gin.Context) {
	name := c.PostForm("fullName")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if problem := validateContact(name, email, message); problem != "" {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": problem})
		return
	}

	if err := a.send(name, email, message); err != nil {
		log.Printf("Error sending email: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactFailed})
		return
	}
	c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": contactThanks})
}

func sendContactEmail(cfg config.SMTP, name, email, message string) error {
	if cfg.User == "" || cfg.Pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	to := cfg.ToEmail
	if to == "" {
		to = cfg.User
	}

	subject := fmt.Sprintf("Playground Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from the playground:

Name: %s
Email: %s
Message:
%s

---
Sent from the playground contact form
`, name, email, message)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	if err := smtp.SendMail(cfg.Host+":"+cfg.Port, auth, cfg.User, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	log.Printf("Email sent successfully from %s (%s)", name, email)
	return nil
}
