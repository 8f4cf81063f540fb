package games

import (
	"fmt"
	"math"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

const (
	runnerWidth      = 820
	runnerHeight     = 220
	runnerGroundY    = 195.0
	runnerRestY      = 170.0
	runnerX          = 60.0
	runnerSize       = 24.0
	runnerGravity    = 0.9
	runnerJump       = -12.0
	runnerSpawnP     = 0.02
	runnerBugSpeed   = 5.0
	runnerBugSize    = 20.0
	runnerBugTop     = 174.0
	runnerBugGone    = -30.0
	runnerHitRight   = 82.0
	runnerScoreStep  = 0.12
	runnerDeathNotes = "SyntaxError: you hit a bug! Try again."
)

// Bug is an obstacle scrolling toward the player.
type Bug struct {
	X, W, H float64
}

// Runner is the Code Runner game: jump over bugs for as long as possible.
type Runner struct {
	env Env

	Y, VY float64
	Bugs  []Bug
	Score float64
	Dead  bool
	Note  string
}

func NewRunner(env Env) *Runner {
	r := &Runner{env: env.withDefaults()}
	r.restart()
	return r
}

func (r *Runner) Title() string       { return "Code Runner" }
func (r *Runner) ScoreKey() score.Key { return score.Runner }
func (r *Runner) Size() (int, int)    { return runnerWidth, runnerHeight }
func (r *Runner) Message() string     { return r.Note }

// Points is the score as displayed and reported.
func (r *Runner) Points() int { return int(math.Floor(r.Score)) }

func (r *Runner) Status() string { return fmt.Sprintf("Score: %d", r.Points()) }

// Reset banks the current run and starts over.
func (r *Runner) Reset() {
	r.env.Scores.Report(score.Runner, r.Points())
	r.restart()
}

func (r *Runner) restart() {
	r.Y = runnerRestY
	r.VY = 0
	r.Bugs = nil
	r.Score = 0
	r.Dead = false
	r.Note = ""
}

func (r *Runner) Handle(ev engine.InputEvent) {
	switch {
	case isReset(ev):
		r.Reset()
	case ev.Kind == engine.PointerDown,
		ev.Kind == engine.Action && ev.Action == engine.ActionJump,
		ev.Kind == engine.KeyDown && (ev.Key == engine.KeySpace || ev.Key == engine.KeyArrowUp):
		r.Jump()
	}
}

// Jump launches the player when grounded and alive.
func (r *Runner) Jump() {
	if r.Y >= runnerRestY && !r.Dead {
		r.VY = runnerJump
		r.env.Sound.Blip()
	}
}

func (r *Runner) Update(frames int) {
	for i := 0; i < frames; i++ {
		r.step()
	}
}

func (r *Runner) step() {
	if !r.Dead && r.env.Rand.Float64() < runnerSpawnP {
		r.Bugs = append(r.Bugs, Bug{X: runnerWidth, W: runnerBugSize, H: runnerBugSize})
	}

	r.VY += runnerGravity
	r.Y += r.VY
	if r.Y > runnerRestY {
		r.Y = runnerRestY
		r.VY = 0
	}

	kept := r.Bugs[:0]
	for _, b := range r.Bugs {
		b.X -= runnerBugSpeed
		if !r.Dead && r.hits(b) {
			r.Dead = true
			r.Note = runnerDeathNotes
			r.env.Scores.Report(score.Runner, r.Points())
		}
		if b.X > runnerBugGone {
			kept = append(kept, b)
		}
	}
	r.Bugs = kept

	if !r.Dead {
		r.Score += runnerScoreStep
	}
}

func (r *Runner) hits(b Bug) bool {
	return b.X < runnerHitRight && b.X+b.W > runnerX && r.Y+runnerSize > runnerBugTop
}

func (r *Runner) Render(s engine.Surface) {
	p := r.env.Palette
	s.FillRect(0, 0, runnerWidth, runnerHeight, p.Background)
	s.FillRect(0, runnerGroundY, runnerWidth, 4, p.Primary)
	player := p.Accent
	if r.Dead {
		player = p.Muted
	}
	s.FillRect(runnerX, r.Y, runnerSize, runnerSize, player)
	for _, b := range r.Bugs {
		s.FillRect(b.X, runnerBugTop, b.W, b.H, p.Danger)
	}
}
