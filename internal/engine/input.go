package engine

// EventKind classifies an InputEvent.
type EventKind int

const (
	PointerMove EventKind = iota
	PointerDown
	KeyDown
	// Action is a named intent from an on-screen control.
	Action
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerDown:
		return "pointer-down"
	case KeyDown:
		return "key-down"
	case Action:
		return "action"
	default:
		return "unknown"
	}
}

// Key names understood by the router and games.
const (
	KeySpace   = "Space"
	KeyArrowUp = "ArrowUp"
	KeyTab     = "Tab"
	KeyReset   = "R"
	KeyMute    = "M"
)

// Action names.
const (
	ActionReset = "reset"
	ActionJump  = "jump"
	ActionDraw  = "draw"
)

// InputEvent is one pointer or keyboard event. X and Y are canvas local once
// the router hands the event to a game.
type InputEvent struct {
	Kind   EventKind
	X, Y   float64
	Key    string
	Action string
}

// Move returns a pointer move event.
func Move(x, y float64) InputEvent { return InputEvent{Kind: PointerMove, X: x, Y: y} }

// Press returns a pointer down event.
func Press(x, y float64) InputEvent { return InputEvent{Kind: PointerDown, X: x, Y: y} }

// Key returns a key down event.
func Key(name string) InputEvent { return InputEvent{Kind: KeyDown, Key: name} }

// Do returns an action event.
func Do(action string) InputEvent { return InputEvent{Kind: Action, Action: action} }
