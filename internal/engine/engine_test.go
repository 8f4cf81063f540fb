package engine

import (
	"testing"
	"time"

	"github.com/Zachkp/playground/internal/score"
)

type fakeGame struct {
	updates int
	renders int
	resets  int
	events  []InputEvent
	panicAt int
}

func (g *fakeGame) Title() string       { return "fake" }
func (g *fakeGame) ScoreKey() score.Key { return score.Catcher }
func (g *fakeGame) Size() (int, int)    { return 100, 100 }
func (g *fakeGame) Status() string      { return "" }
func (g *fakeGame) Message() string     { return "" }
func (g *fakeGame) Reset()              { g.resets++ }
func (g *fakeGame) Handle(ev InputEvent) {
	g.events = append(g.events, ev)
}
func (g *fakeGame) Update(frames int) {
	g.updates += frames
	if g.panicAt != 0 && g.updates == g.panicAt {
		panic("boom")
	}
}
func (g *fakeGame) Render(s Surface) {
	g.renders++
	s.Text("frame", 0, 0, Dark.Foreground)
}

func TestFrames(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int64
	}{
		{time.Second, 60},
		{500 * time.Millisecond, 30},
		{450 * time.Millisecond, 27},
		{time.Millisecond, 1},
		{0, 1},
	}
	for _, c := range cases {
		if got := Frames(c.d); got != c.want {
			t.Errorf("Frames(%v) = %d, want %d", c.d, got, c.want)
		}
	}
}

func TestSchedulerAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(500*time.Millisecond, func() { fired++ })

	s.Advance(29)
	if fired != 0 {
		t.Fatalf("fired after 29 frames")
	}
	s.Advance(1)
	if fired != 1 {
		t.Fatalf("fired = %d after 30 frames, want 1", fired)
	}
	s.Advance(100)
	if fired != 1 {
		t.Fatalf("one-shot fired %d times", fired)
	}
	if s.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerEveryAndCancel(t *testing.T) {
	s := NewScheduler()
	ticks := 0
	var timer *Timer
	timer = s.Every(time.Second, func() {
		ticks++
		if ticks == 3 {
			timer.Cancel()
		}
	})

	s.Advance(60 * 10)
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}
	if timer.Active() {
		t.Fatal("timer still active after cancel")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(time.Second, func() { fired = true })
	s.Every(time.Second, func() { fired = true })
	s.CancelAll()
	s.Advance(120)
	if fired {
		t.Fatal("canceled timer fired")
	}
}

func TestLoopStepOrder(t *testing.T) {
	g := &fakeGame{}
	rec := &Recorder{}
	l := NewLoop(g, rec)

	l.Step()
	l.Step()

	if g.updates != 2 || g.renders != 2 || rec.Clears != 2 {
		t.Fatalf("updates=%d renders=%d clears=%d, want 2 each", g.updates, g.renders, rec.Clears)
	}
	if len(rec.Ops) != 1 {
		t.Fatalf("surface should only hold the latest frame, got %v", rec.Ops)
	}
}

func TestLoopRecoversAndResets(t *testing.T) {
	bad := &fakeGame{panicAt: 2}
	good := &fakeGame{}
	d := NewDriver(NewLoop(bad, nil), NewLoop(good, nil))

	d.Run(5)

	if bad.resets != 1 {
		t.Fatalf("bad game resets = %d, want 1", bad.resets)
	}
	if good.updates != 5 {
		t.Fatalf("good game updates = %d, want 5", good.updates)
	}
	if d.Loops()[0].Recovered() != 1 {
		t.Fatalf("recovered = %d, want 1", d.Loops()[0].Recovered())
	}
}

func TestRouterFocusAndTranslate(t *testing.T) {
	a, b := &fakeGame{}, &fakeGame{}
	d := NewDriver(NewLoop(a, nil), NewLoop(b, nil))
	r := NewRouter(d)
	r.OriginX, r.OriginY = 10, 40

	var focused []int
	r.OnFocus = func(i int) { focused = append(focused, i) }

	r.Dispatch(Move(110, 140))
	r.Dispatch(Key(KeyTab))
	r.Dispatch(Press(20, 50))
	r.Dispatch(Key("1"))
	r.Dispatch(Key("9"))
	r.Dispatch(Key(KeyReset))

	if len(a.events) != 3 {
		t.Fatalf("game a events = %v", a.events)
	}
	if a.events[0].X != 100 || a.events[0].Y != 100 {
		t.Fatalf("translated move = %+v", a.events[0])
	}
	if a.events[1].Kind != KeyDown || a.events[1].Key != "9" {
		t.Fatalf("unhandled digit should reach the game, got %+v", a.events[1])
	}
	if a.events[2].Kind != Action || a.events[2].Action != ActionReset {
		t.Fatalf("reset key should arrive as an action event, got %+v", a.events[2])
	}
	if len(b.events) != 1 || b.events[0].X != 10 || b.events[0].Y != 10 {
		t.Fatalf("game b events = %v", b.events)
	}
	if len(focused) != 2 || focused[0] != 1 || focused[1] != 0 {
		t.Fatalf("focus changes = %v", focused)
	}
}

func TestReplayDeliversBeforeFrame(t *testing.T) {
	g := &fakeGame{}
	d := NewDriver(NewLoop(g, nil))
	r := NewRouter(d)

	Replay(r, []Scripted{
		{Frame: 0, Event: Key(KeySpace)},
		{Frame: 3, Event: Do(ActionJump)},
	}, 5)

	if g.updates != 5 {
		t.Fatalf("updates = %d, want 5", g.updates)
	}
	if len(g.events) != 2 || g.events[1].Action != ActionJump {
		t.Fatalf("events = %v", g.events)
	}
}
