// Package arcade wires the games, the score store and the site settings
// into one playable screen.
package arcade

import (
	"fmt"
	"image/color"

	"github.com/Zachkp/playground/internal/content"
	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/games"
	"github.com/Zachkp/playground/internal/score"
)

// Screen layout.
const (
	ScreenWidth  = 860
	ScreenHeight = 720

	margin            = 20.0
	titleY            = 16.0
	tabY              = 28.0
	tabWidth          = 130.0
	tabHeight         = 24.0
	minTabHeight      = 12.0
	maxTabHeight      = 32.0
	tabGap            = 6.0
	canvasY           = 64.0
	lineHeight        = 18.0
	leaderboardY      = 610.0
	leaderboardColumn = 280.0
)

// Screen is the final drawing target. Canvas composes a game canvas made by
// Options.NewSurface onto it.
type Screen interface {
	engine.Surface
	Canvas(c engine.Surface, x, y float64)
}

// Options configure New.
type Options struct {
	Scores   *score.Store
	Settings content.Settings
	Rand     engine.Rand
	Sound    engine.Sound
	// NewSurface creates the canvas a game of the given size renders to.
	// When nil the games run headless and Draw renders the focused game
	// straight onto the screen.
	NewSurface func(w, h int) engine.Surface
}

// Arcade is the application context: every enabled game with its loop, the
// router that feeds them input and the leaderboard view.
type Arcade struct {
	settings content.Settings
	scores   *score.Store
	palette  engine.Palette
	sfx      *Switch
	// tabH is the tab bar height, scaled by icon_scale.
	tabH     float64

	games    []engine.Game
	canvases []engine.Surface
	driver   *engine.Driver
	router   *engine.Router

	board       *Leaderboard
	unsubscribe func()
}

// New builds the arcade. Block Blast, Cat & Mouse and Rocket Touch are only
// added when their enable flag is set.
func New(opts Options) (*Arcade, error) {
	if opts.Scores == nil {
		return nil, fmt.Errorf("arcade: score store is required")
	}
	sound := opts.Sound
	if sound == nil {
		sound = engine.Silent{}
	}

	a := &Arcade{
		settings: opts.Settings,
		scores:   opts.Scores,
		palette:  opts.Settings.Palette(),
		sfx:      &Switch{Sound: sound, On: opts.Settings.SfxOn},
		tabH:     tabBarHeight(opts.Settings.IconScale),
		driver:   engine.NewDriver(),
	}

	env := games.Env{Scores: opts.Scores, Rand: opts.Rand, Sound: a.sfx, Palette: a.palette}
	a.games = []engine.Game{games.NewCatcher(env), games.NewMemory(env), games.NewRunner(env)}
	if opts.Settings.EnableBlockBlast {
		a.games = append(a.games, games.NewBlockBlast(env))
	}
	if opts.Settings.EnableCatMouse {
		a.games = append(a.games, games.NewCatMouse(env))
	}
	if opts.Settings.EnableRocketTouch {
		a.games = append(a.games, games.NewRocket(env))
	}

	for _, g := range a.games {
		var canvas engine.Surface
		if opts.NewSurface != nil {
			w, h := g.Size()
			canvas = opts.NewSurface(w, h)
		}
		a.canvases = append(a.canvases, canvas)
		a.driver.Add(engine.NewLoop(g, canvas))
	}

	a.router = engine.NewRouter(a.driver)
	a.router.OriginX, a.router.OriginY = margin, canvasY

	title := opts.Settings.LeaderboardTitle
	if title == "" {
		title = "Leaderboard"
	}
	a.board, a.unsubscribe = NewLeaderboard(title, opts.Scores)
	return a, nil
}

// Games returns the enabled games in tab order.
func (a *Arcade) Games() []engine.Game { return a.games }

// Router returns the input router, for replays.
func (a *Arcade) Router() *engine.Router { return a.router }

// Leaderboard returns the leaderboard view.
func (a *Arcade) Leaderboard() *Leaderboard { return a.board }

// SfxOn reports whether sound effects are enabled.
func (a *Arcade) SfxOn() bool { return a.sfx.On }

// Close stops the leaderboard updates.
func (a *Arcade) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Frame routes the queued input then steps every game once.
func (a *Arcade) Frame(events []engine.InputEvent) {
	for _, ev := range events {
		a.handle(ev)
	}
	a.driver.Step()
}

func (a *Arcade) handle(ev engine.InputEvent) {
	if ev.Kind == engine.KeyDown && ev.Key == engine.KeyMute {
		a.sfx.On = !a.sfx.On
		return
	}
	if ev.Kind == engine.PointerDown {
		if i, ok := a.tabAt(ev.X, ev.Y); ok {
			a.router.SetFocus(i)
			return
		}
	}
	a.router.Dispatch(ev)
}

func tabX(i int) float64 { return margin + float64(i)*(tabWidth+tabGap) }

// tabBarHeight scales the tab height, kept clear of the canvas below.
func tabBarHeight(scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	return min(max(tabHeight*scale, minTabHeight), maxTabHeight)
}

func (a *Arcade) tabAt(x, y float64) (int, bool) {
	if y < tabY || y > tabY+a.tabH {
		return 0, false
	}
	for i := range a.games {
		if x >= tabX(i) && x <= tabX(i)+tabWidth {
			return i, true
		}
	}
	return 0, false
}

// Draw composes the title, tab bar, focused canvas, its status lines and
// the leaderboard.
func (a *Arcade) Draw(dst Screen) {
	p := a.palette
	dst.Clear()
	dst.FillRect(0, 0, ScreenWidth, ScreenHeight, p.Background)
	dst.Text(a.settings.GamesTitle, margin, titleY, p.Foreground)

	focus := a.router.Focus()
	for i, g := range a.games {
		x := tabX(i)
		if i == focus {
			dst.FillRect(x, tabY, tabWidth, a.tabH, p.Muted)
		}
		dst.StrokeRect(x, tabY, tabWidth, a.tabH, p.Primary)
		dst.Text(fmt.Sprintf("%d %s", i+1, g.Title()), x+6, tabY+a.tabH/2+4, p.Foreground)
	}
	if len(a.games) == 0 {
		return
	}

	g := a.games[focus]
	if c := a.canvases[focus]; c != nil {
		dst.Canvas(c, margin, canvasY)
	} else {
		g.Render(offset{Surface: dst, x: margin, y: canvasY})
	}

	_, h := g.Size()
	y := canvasY + float64(h) + lineHeight
	dst.Text(g.Status(), margin, y, p.Foreground)
	if msg := g.Message(); msg != "" {
		dst.Text(msg, margin, y+lineHeight, p.Accent)
	}
	if desc := a.settings.Descriptions[g.Title()]; desc != "" {
		dst.Text(desc, margin, y+2*lineHeight, p.Muted)
	}
	sfx := "off"
	if a.sfx.On {
		sfx = "on"
	}
	dst.Text(fmt.Sprintf("Tab/1-%d switch · R reset · M sfx: %s", len(a.games), sfx), margin, y+3*lineHeight, p.Muted)

	a.board.Draw(dst, margin, leaderboardY, p)
}

// Switch gates a Sound behind the SFX toggle.
type Switch struct {
	Sound engine.Sound
	On    bool
}

func (s *Switch) Blip() {
	if s.On {
		s.Sound.Blip()
	}
}

// offset draws onto a Surface shifted by x, y.
type offset struct {
	engine.Surface
	x, y float64
}

func (o offset) FillRect(x, y, w, h float64, c color.Color) {
	o.Surface.FillRect(x+o.x, y+o.y, w, h, c)
}

func (o offset) StrokeRect(x, y, w, h float64, c color.Color) {
	o.Surface.StrokeRect(x+o.x, y+o.y, w, h, c)
}

func (o offset) FillCircle(cx, cy, r float64, c color.Color) {
	o.Surface.FillCircle(cx+o.x, cy+o.y, r, c)
}

func (o offset) Text(s string, x, y float64, c color.Color) {
	o.Surface.Text(s, x+o.x, y+o.y, c)
}

// Clear is a no-op: the screen was cleared before the canvas is drawn.
func (o offset) Clear() {}
