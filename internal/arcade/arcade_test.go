package arcade

import (
	"fmt"
	"slices"
	"testing"

	"github.com/Zachkp/playground/internal/content"
	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

type countingSound struct{ n int }

func (c *countingSound) Blip() { c.n++ }

// screen records draw calls plus canvas compositions.
type screen struct {
	engine.Recorder
}

func (s *screen) Canvas(_ engine.Surface, x, y float64) {
	s.Ops = append(s.Ops, fmt.Sprintf("canvas %.0f,%.0f", x, y))
}

func newArcade(t *testing.T, values map[string]string, sound engine.Sound) (*Arcade, *score.Store) {
	t.Helper()
	store, err := score.Open(&score.MemoryBackend{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	a, err := New(Options{
		Scores:   store,
		Settings: content.Parse(values),
		Rand:     fixedRand{f: 0.99},
		Sound:    sound,
	})
	if err != nil {
		t.Fatalf("new arcade: %v", err)
	}
	t.Cleanup(a.Close)
	return a, store
}

func keysOf(a *Arcade) []score.Key {
	var keys []score.Key
	for _, g := range a.Games() {
		keys = append(keys, g.ScoreKey())
	}
	return keys
}

func TestNewRequiresStore(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error without a score store")
	}
}

func TestGamesInFixedOrder(t *testing.T) {
	a, _ := newArcade(t, nil, nil)

	want := []score.Key{score.Catcher, score.Memory, score.Runner, score.Block, score.Cat, score.Rocket}
	if got := keysOf(a); !slices.Equal(got, want) {
		t.Fatalf("games = %v, want %v", got, want)
	}
}

func TestEnableFlagsGateGames(t *testing.T) {
	a, _ := newArcade(t, map[string]string{
		"enable_blockblast":   "false",
		"enable_rocket_touch": "false",
	}, nil)

	want := []score.Key{score.Catcher, score.Memory, score.Runner, score.Cat}
	if got := keysOf(a); !slices.Equal(got, want) {
		t.Fatalf("games = %v, want %v", got, want)
	}
}

func TestLeaderboardFollowsStore(t *testing.T) {
	a, store := newArcade(t, nil, nil)
	before := a.Leaderboard().Renders()

	store.Report(score.Cat, 25)

	if a.Leaderboard().Renders() != before+1 {
		t.Fatalf("renders = %d, want %d", a.Leaderboard().Renders(), before+1)
	}
	if !slices.Contains(a.Leaderboard().Lines(), "Cat & Mouse: 25") {
		t.Fatalf("lines = %v", a.Leaderboard().Lines())
	}

	a.Close()
	store.Report(score.Cat, 50)
	if slices.Contains(a.Leaderboard().Lines(), "Cat & Mouse: 50") {
		t.Fatal("closed arcade should stop following the store")
	}
}

func TestBlockBlastThroughFrames(t *testing.T) {
	a, store := newArcade(t, nil, nil)

	// Focus Block Blast, draw from the tray, place at the top-left cell.
	a.Frame([]engine.InputEvent{engine.Key("4")})
	a.Frame([]engine.InputEvent{engine.Press(margin+100, canvasY+400)})
	a.Frame([]engine.InputEvent{engine.Press(margin+30, canvasY+30)})

	if a.Router().Focus() != 3 {
		t.Fatalf("focus = %d, want 3", a.Router().Focus())
	}
	if store.Best(score.Block) != 120 {
		t.Fatalf("block best = %d, want 120", store.Best(score.Block))
	}
	if !slices.Contains(a.Leaderboard().Lines(), "Block Blast: 120") {
		t.Fatalf("lines = %v", a.Leaderboard().Lines())
	}
}

func TestReplayThroughRouter(t *testing.T) {
	a, store := newArcade(t, nil, nil)

	script := []engine.Scripted{
		{Frame: 0, Event: engine.Key("3")},
		{Frame: 10, Event: engine.Do(engine.ActionReset)},
	}
	engine.Replay(a.Router(), script, 20)

	// the reset banks the runner's floored score: 10 alive frames at 0.12
	if store.Best(score.Runner) != 1 {
		t.Fatalf("runner best = %d, want 1", store.Best(score.Runner))
	}
}

func TestTabClickFocuses(t *testing.T) {
	a, _ := newArcade(t, nil, nil)

	a.Frame([]engine.InputEvent{engine.Press(tabX(2)+10, tabY+5)})

	if a.Router().Focus() != 2 {
		t.Fatalf("focus = %d, want 2", a.Router().Focus())
	}
}

func TestMuteKeyTogglesSound(t *testing.T) {
	sound := &countingSound{}
	a, _ := newArcade(t, map[string]string{"sfx_default": "on"}, sound)
	draw := engine.Press(margin+100, canvasY+400)

	a.Frame([]engine.InputEvent{engine.Key("4"), draw})
	if sound.n != 1 {
		t.Fatalf("blips = %d, want 1", sound.n)
	}

	a.Frame([]engine.InputEvent{engine.Key(engine.KeyMute), draw})
	if a.SfxOn() || sound.n != 1 {
		t.Fatalf("muted arcade blipped: sfx %v, blips %d", a.SfxOn(), sound.n)
	}
}

func TestDrawHeadless(t *testing.T) {
	a, _ := newArcade(t, map[string]string{"games_title": "Arcade"}, nil)
	a.Frame(nil)

	dst := &screen{}
	a.Draw(dst)

	texts := dst.Texts()
	for _, want := range []string{"Arcade", "1 Skill Catcher", "6 Rocket Touch", "Score: 0", "Local Leaderboard", "Skill Catcher: 0"} {
		if !slices.Contains(texts, want) {
			t.Errorf("missing %q in %v", want, texts)
		}
	}
	// the focused catcher draws its background straight onto the screen
	if !slices.Contains(dst.Ops, "rect 20,64 820x300") {
		t.Errorf("catcher background not offset: %v", dst.Ops)
	}
}

func TestDrawComposesCanvases(t *testing.T) {
	store, _ := score.Open(nil)
	var canvases []*engine.Recorder
	a, err := New(Options{
		Scores:   store,
		Settings: content.Parse(nil),
		Rand:     fixedRand{f: 0.99},
		NewSurface: func(w, h int) engine.Surface {
			r := &engine.Recorder{}
			canvases = append(canvases, r)
			return r
		},
	})
	if err != nil {
		t.Fatalf("new arcade: %v", err)
	}
	defer a.Close()

	a.Frame(nil)
	a.Frame(nil)
	for i, c := range canvases {
		if c.Clears != 2 {
			t.Errorf("canvas %d cleared %d times, want 2", i, c.Clears)
		}
	}

	dst := &screen{}
	a.Draw(dst)
	if !slices.Contains(dst.Ops, "canvas 20,64") {
		t.Fatalf("focused canvas not composed: %v", dst.Ops)
	}
}

func TestIconScaleSizesTabs(t *testing.T) {
	below := engine.Press(tabX(1)+10, tabY+28)

	a, _ := newArcade(t, nil, nil)
	a.Frame([]engine.InputEvent{below})
	if a.Router().Focus() != 0 {
		t.Fatalf("click under a default tab focused %d", a.Router().Focus())
	}

	a, _ = newArcade(t, map[string]string{"icon_scale": "1.25"}, nil)
	dst := &screen{}
	a.Draw(dst)
	if !slices.Contains(dst.Ops, "stroke 20,28 130x30") {
		t.Fatalf("tab not scaled: %v", dst.Ops)
	}
	a.Frame([]engine.InputEvent{below})
	if a.Router().Focus() != 1 {
		t.Fatalf("focus = %d, want 1", a.Router().Focus())
	}

	a, _ = newArcade(t, map[string]string{"icon_scale": "3"}, nil)
	dst = &screen{}
	a.Draw(dst)
	if !slices.Contains(dst.Ops, "stroke 20,28 130x32") {
		t.Fatalf("tab height not capped: %v", dst.Ops)
	}
}
