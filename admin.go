// admin.go - content editor with session logins
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/playground/internal/config"
	"github.com/Zachkp/playground/internal/content"
)

const (
	sessionCookie = "session"
	sessionMaxAge = 3600 * 24
)

var hashingSalt string

func initAdmin(cfg config.Server) {
	hashingSalt = generateToken()

	log.Printf("Admin access available at: /admin/login")
	if cfg.AdminPassword == "admin123" {
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
}

func generateToken() string {
	bytes := make([]byte, 24)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address so logs never hold the raw address
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// sessions maps login tokens to the admin email they were issued for.
type sessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newSessions() *sessions {
	return &sessions{tokens: map[string]string{}}
}

func (s *sessions) create(email string) string {
	token := generateToken()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = email
	return token
}

func (s *sessions) valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *sessions) drop(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

func (a *app) authenticated(c *gin.Context) bool {
	token, err := c.Cookie(sessionCookie)
	return err == nil && a.sessions.valid(token)
}

func (a *app) checkCredentials(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.cfg.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.AdminPassword)) == 1
	return emailOK && passOK
}

func (a *app) login(c *gin.Context, email string) {
	token := a.sessions.create(email)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, sessionMaxAge, "/", "", false, true)
	log.Printf("Admin login successful from %s", hashIP(c.ClientIP()))
}

func (a *app) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		a.sessions.drop(token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	log.Printf("Admin logout from %s", hashIP(c.ClientIP()))
}

// Middleware for JSON endpoints
func (a *app) apiAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticated(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// Middleware for admin pages
func (a *app) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticated(c) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	Content map[string]any `json:"content" binding:"required"`
}

// stringify turns posted values into content strings.
func stringify(values map[string]any) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		switch v := v.(type) {
		case string:
			out[k] = v
		case nil:
			out[k] = ""
		default:
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

type fieldView struct {
	content.Field
	Value string
}

func (a *app) adminRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": a.authenticated(c)})
	})

	api.POST("/login", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		if !a.checkCredentials(req.Email, req.Password) {
			log.Printf("Failed admin login attempt from %s", hashIP(c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Wrong email or password"})
			return
		}
		a.login(c, req.Email)
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Logged in"})
	})

	api.POST("/logout", func(c *gin.Context) {
		a.logout(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api.POST("/content/update", a.apiAuthMiddleware(), func(c *gin.Context) {
		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
		if err := a.db.UpdateContent(stringify(req.Content)); err != nil {
			log.Printf("Error updating content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
			return
		}
		values, err := a.db.Content()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "content": values})
	})

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		if a.authenticated(c) {
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		email := c.PostForm("email")
		if !a.checkCredentials(email, c.PostForm("password")) {
			log.Printf("Failed admin login attempt from %s", hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		a.login(c, email)
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		a.logout(c)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		values, err := a.db.Content()
		if err != nil {
			log.Printf("Error loading content: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load content",
			})
			return
		}

		fields := make([]fieldView, 0, len(content.Fields))
		for _, f := range content.Fields {
			fields = append(fields, fieldView{Field: f, Value: values[f.Key]})
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"fields":      fields,
			"leaderboard": a.leaderboardRows(),
			"saved":       c.Query("saved") == "1",
		})
	})

	// Form post from the dashboard editor
	adminGroup.POST("/content", func(c *gin.Context) {
		values := map[string]string{}
		for _, f := range content.Fields {
			if v, ok := c.GetPostForm(f.Key); ok {
				values[f.Key] = v
			}
		}
		if err := a.db.UpdateContent(values); err != nil {
			log.Printf("Error updating content: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to save content",
			})
			return
		}
		log.Printf("Content updated (%d fields) by %s", len(values), hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard?saved=1")
	})

	// Leaderboard export for backups
	adminGroup.GET("/export/leaderboard", func(c *gin.Context) {
		c.Header("Content-Disposition", "attachment; filename=leaderboard.json")
		log.Printf("Leaderboard exported by %s", hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, a.scores.All())
	})
}
