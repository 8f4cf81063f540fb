package engine

import (
	"fmt"
	"image/color"
)

// Recorder is a Surface that keeps a log of draw calls since the last Clear.
// It backs headless runs and tests.
type Recorder struct {
	Ops    []string
	Clears int
}

func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Clears++
}

func (r *Recorder) FillRect(x, y, w, h float64, _ color.Color) {
	r.Ops = append(r.Ops, fmt.Sprintf("rect %.0f,%.0f %.0fx%.0f", x, y, w, h))
}

func (r *Recorder) StrokeRect(x, y, w, h float64, _ color.Color) {
	r.Ops = append(r.Ops, fmt.Sprintf("stroke %.0f,%.0f %.0fx%.0f", x, y, w, h))
}

func (r *Recorder) FillCircle(cx, cy, radius float64, _ color.Color) {
	r.Ops = append(r.Ops, fmt.Sprintf("circle %.0f,%.0f r%.0f", cx, cy, radius))
}

func (r *Recorder) Text(s string, x, y float64, _ color.Color) {
	r.Ops = append(r.Ops, fmt.Sprintf("text %q %.0f,%.0f", s, x, y))
}

// Texts returns the strings drawn since the last Clear.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		var s string
		if _, err := fmt.Sscanf(op, "text %q", &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}
