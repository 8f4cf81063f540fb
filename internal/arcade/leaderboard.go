package arcade

import (
	"fmt"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

var gameNames = map[score.Key]string{
	score.Catcher: "Skill Catcher",
	score.Memory:  "Memory Match",
	score.Runner:  "Code Runner",
	score.Block:   "Block Blast",
	score.Cat:     "Cat & Mouse",
	score.Rocket:  "Rocket Touch",
}

// Leaderboard renders the score board as text lines. It re-renders from the
// store's snapshot after every report.
type Leaderboard struct {
	Title   string
	lines   []string
	renders int
}

// NewLeaderboard renders store's current board and subscribes to it. The
// returned function stops the updates.
func NewLeaderboard(title string, store *score.Store) (*Leaderboard, func()) {
	l := &Leaderboard{Title: title}
	l.Render(store.All())
	return l, store.Subscribe(l.Render)
}

// Render replaces the lines with board's entries in game order.
func (l *Leaderboard) Render(board score.Board) {
	lines := make([]string, 0, len(score.Keys))
	for _, k := range score.Keys {
		lines = append(lines, fmt.Sprintf("%s: %d", gameNames[k], board[k]))
	}
	l.lines = lines
	l.renders++
}

func (l *Leaderboard) Lines() []string { return l.lines }

// Renders returns how many times the board was rendered.
func (l *Leaderboard) Renders() int { return l.renders }

// Draw lays the lines out in two columns starting at x, y.
func (l *Leaderboard) Draw(s engine.Surface, x, y float64, p engine.Palette) {
	s.Text(l.Title, x, y, p.Accent)
	for i, line := range l.lines {
		col, row := i/3, i%3
		s.Text(line, x+float64(col)*leaderboardColumn, y+lineHeight*float64(row+1), p.Foreground)
	}
}
