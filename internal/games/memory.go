package games

import (
	"fmt"
	"time"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

const (
	memoryCols       = 4
	memoryCardSize   = 90.0
	memoryGap        = 16.0
	memoryPad        = 24.0
	memoryWidth      = 456
	memoryHeight     = 236
	memoryStartTime  = 60
	memoryPairPoints = 10
	memoryFlipBack   = 500 * time.Millisecond
)

var memorySymbols = []string{"UI", "UX", "JS", "VID"}

var memoryFacts = map[string]string{
	"UI":  "Fun fact: loves experimenting with glassmorphism.",
	"UX":  "Fun fact: the user's experience always comes first.",
	"JS":  "Fun fact: enjoys interactive coding and animation.",
	"VID": "Fun fact: edits videos with cinematic timing.",
}

// Card is one memory card.
type Card struct {
	Label   string
	FaceUp  bool
	Matched bool
}

// Memory is the Memory Match game: find the four pairs before time runs out.
type Memory struct {
	env   Env
	sched *engine.Scheduler

	Cards   []Card
	Matched int
	Score   int
	Timer   int
	Fact    string

	flipped   []int
	countdown *engine.Timer
	flipBack  *engine.Timer
}

func NewMemory(env Env) *Memory {
	m := &Memory{env: env.withDefaults(), sched: engine.NewScheduler()}
	m.Reset()
	return m
}

func (m *Memory) Title() string       { return "Memory Match" }
func (m *Memory) ScoreKey() score.Key { return score.Memory }
func (m *Memory) Size() (int, int)    { return memoryWidth, memoryHeight }
func (m *Memory) Message() string     { return m.Fact }

func (m *Memory) Status() string {
	return fmt.Sprintf("Score: %d | Time: %d", m.Score, m.Timer)
}

// Reset deals a freshly shuffled board and restarts the countdown. Pending
// flip-backs from the previous board are dropped.
func (m *Memory) Reset() {
	m.sched.CancelAll()
	m.flipBack = nil

	m.Cards = make([]Card, 0, 2*len(memorySymbols))
	for _, s := range memorySymbols {
		m.Cards = append(m.Cards, Card{Label: s}, Card{Label: s})
	}
	for i := len(m.Cards) - 1; i > 0; i-- {
		j := m.env.Rand.IntN(i + 1)
		m.Cards[i], m.Cards[j] = m.Cards[j], m.Cards[i]
	}
	m.flipped = m.flipped[:0]
	m.Matched = 0
	m.Score = 0
	m.Timer = memoryStartTime
	m.Fact = ""
	m.countdown = m.sched.Every(time.Second, m.tick)
}

func (m *Memory) tick() {
	m.Timer--
	if m.Timer <= 0 {
		m.Timer = 0
		m.countdown.Cancel()
	}
}

// Update advances the countdown and any pending flip-back.
func (m *Memory) Update(frames int) {
	m.sched.Advance(frames)
}

func (m *Memory) Handle(ev engine.InputEvent) {
	switch {
	case isReset(ev):
		m.Reset()
	case ev.Kind == engine.PointerDown:
		if i, ok := m.cardAt(ev.X, ev.Y); ok {
			m.Flip(i)
		}
	}
}

// Flip turns card i face up. Illegal flips are ignored: two cards already
// showing, a matched or face-up card, or the clock at zero.
func (m *Memory) Flip(i int) {
	if i < 0 || i >= len(m.Cards) {
		return
	}
	c := &m.Cards[i]
	if len(m.flipped) >= 2 || c.Matched || c.FaceUp || m.Timer <= 0 {
		return
	}
	c.FaceUp = true
	m.flipped = append(m.flipped, i)
	m.env.Sound.Blip()
	if len(m.flipped) < 2 {
		return
	}

	a, b := m.flipped[0], m.flipped[1]
	if m.Cards[a].Label != m.Cards[b].Label {
		m.flipBack = m.sched.After(memoryFlipBack, func() {
			m.Cards[a].FaceUp = false
			m.Cards[b].FaceUp = false
			m.flipped = m.flipped[:0]
		})
		return
	}

	m.Cards[a].Matched = true
	m.Cards[b].Matched = true
	m.Matched += 2
	m.Score += memoryPairPoints
	m.Fact = memoryFacts[m.Cards[a].Label]
	m.env.Scores.Report(score.Memory, m.Score)
	m.flipped = m.flipped[:0]

	if m.Matched == len(m.Cards) {
		m.countdown.Cancel()
		bonus := m.Timer
		m.Score += bonus
		m.Fact = fmt.Sprintf("All cards matched! Time bonus +%d", bonus)
		m.env.Scores.Report(score.Memory, m.Score)
	}
}

// Done reports whether every pair is matched.
func (m *Memory) Done() bool { return m.Matched == len(m.Cards) }

func cardOrigin(i int) (float64, float64) {
	col, row := i%memoryCols, i/memoryCols
	return memoryPad + float64(col)*(memoryCardSize+memoryGap), memoryPad + float64(row)*(memoryCardSize+memoryGap)
}

func (m *Memory) cardAt(x, y float64) (int, bool) {
	for i := range m.Cards {
		cx, cy := cardOrigin(i)
		if x >= cx && x < cx+memoryCardSize && y >= cy && y < cy+memoryCardSize {
			return i, true
		}
	}
	return 0, false
}

func (m *Memory) Render(s engine.Surface) {
	p := m.env.Palette
	s.FillRect(0, 0, memoryWidth, memoryHeight, p.Background)
	for i, c := range m.Cards {
		x, y := cardOrigin(i)
		switch {
		case c.Matched:
			s.FillRect(x, y, memoryCardSize, memoryCardSize, p.Primary)
			s.Text(c.Label, x+memoryCardSize/2-10, y+memoryCardSize/2, p.Background)
		case c.FaceUp:
			s.FillRect(x, y, memoryCardSize, memoryCardSize, p.Accent)
			s.Text(c.Label, x+memoryCardSize/2-10, y+memoryCardSize/2, p.Background)
		default:
			s.FillRect(x, y, memoryCardSize, memoryCardSize, p.Muted)
			s.Text("?", x+memoryCardSize/2-3, y+memoryCardSize/2, p.Foreground)
		}
	}
}
