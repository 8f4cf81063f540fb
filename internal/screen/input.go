package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Zachkp/playground/internal/engine"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyTab:     engine.KeyTab,
	ebiten.KeySpace:   engine.KeySpace,
	ebiten.KeyArrowUp: engine.KeyArrowUp,
	ebiten.KeyR:       engine.KeyReset,
	ebiten.KeyM:       engine.KeyMute,
	ebiten.KeyDigit1:  "1",
	ebiten.KeyDigit2:  "2",
	ebiten.KeyDigit3:  "3",
	ebiten.KeyDigit4:  "4",
	ebiten.KeyDigit5:  "5",
	ebiten.KeyDigit6:  "6",
}

// Input turns Ebiten's polled device state into engine events.
type Input struct {
	lastX, lastY int
	touches      []ebiten.TouchID
	keys         []ebiten.Key
}

// Poll returns the events since the previous call, in screen coordinates.
// It must be called once per Update.
func (in *Input) Poll() []engine.InputEvent {
	var events []engine.InputEvent

	x, y := ebiten.CursorPosition()
	if x != in.lastX || y != in.lastY {
		in.lastX, in.lastY = x, y
		events = append(events, engine.Move(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, engine.Press(float64(x), float64(y)))
	}

	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		tx, ty := ebiten.TouchPosition(id)
		events = append(events, engine.Press(float64(tx), float64(ty)))
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if name, ok := keyNames[k]; ok {
			events = append(events, engine.Key(name))
		}
	}
	return events
}
