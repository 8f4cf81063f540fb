package games

import (
	"fmt"
	"math"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

const (
	rocketWidth     = 420
	rocketHeight    = 320
	rocketY         = 280.0
	rocketSpawnP    = 0.03
	rocketMinSpeed  = 2.0
	rocketSpeedSpan = 3.0
	rocketHitRadius = 20.0
	rocketScoreStep = 0.2
	rocketCrashNote = "Boom! The rocket is down."
)

// Hazard is a falling rock.
type Hazard struct {
	X, Y, Speed float64
}

// Rocket is the Rocket Touch game: dodge falling hazards.
type Rocket struct {
	env Env

	X       float64
	Hazards []Hazard
	Score   float64
	Dead    bool
}

func NewRocket(env Env) *Rocket {
	return &Rocket{env: env.withDefaults(), X: rocketWidth / 2}
}

func (g *Rocket) Title() string       { return "Rocket Touch" }
func (g *Rocket) ScoreKey() score.Key { return score.Rocket }
func (g *Rocket) Size() (int, int)    { return rocketWidth, rocketHeight }

// Points is the score as displayed and reported.
func (g *Rocket) Points() int { return int(math.Floor(g.Score)) }

func (g *Rocket) Status() string { return fmt.Sprintf("Score: %d", g.Points()) }

func (g *Rocket) Message() string {
	if g.Dead {
		return rocketCrashNote
	}
	return ""
}

// Reset banks the current run and starts over.
func (g *Rocket) Reset() {
	g.env.Scores.Report(score.Rocket, g.Points())
	g.Hazards = nil
	g.Score = 0
	g.Dead = false
}

func (g *Rocket) Handle(ev engine.InputEvent) {
	switch {
	case isReset(ev):
		g.Reset()
	case ev.Kind == engine.PointerMove || ev.Kind == engine.PointerDown:
		g.X = engine.Clamp(ev.X, 0, rocketWidth)
	}
}

func (g *Rocket) Update(frames int) {
	for i := 0; i < frames; i++ {
		g.step()
	}
}

func (g *Rocket) step() {
	if !g.Dead && g.env.Rand.Float64() < rocketSpawnP {
		g.Hazards = append(g.Hazards, Hazard{
			X:     g.env.Rand.Float64() * rocketWidth,
			Y:     -10,
			Speed: rocketMinSpeed + g.env.Rand.Float64()*rocketSpeedSpan,
		})
	}

	kept := g.Hazards[:0]
	for _, h := range g.Hazards {
		h.Y += h.Speed
		if !g.Dead && math.Hypot(h.X-g.X, h.Y-rocketY) < rocketHitRadius {
			g.Dead = true
			g.env.Scores.Report(score.Rocket, g.Points())
		}
		if h.Y <= rocketHeight+10 {
			kept = append(kept, h)
		}
	}
	g.Hazards = kept

	if !g.Dead {
		g.Score += rocketScoreStep
	}
}

func (g *Rocket) Render(s engine.Surface) {
	p := g.env.Palette
	s.FillRect(0, 0, rocketWidth, rocketHeight, p.Background)
	body := p.Primary
	if g.Dead {
		body = p.Danger
	}
	s.FillRect(g.X-8, rocketY-14, 16, 28, body)
	s.FillCircle(g.X, rocketY-16, 8, body)
	for _, h := range g.Hazards {
		s.FillCircle(h.X, h.Y, 9, p.Accent)
	}
}
