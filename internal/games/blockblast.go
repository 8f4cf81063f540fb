package games

import (
	"fmt"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

const (
	GridSize         = 8
	blockCell        = 40.0
	blockPad         = 20.0
	blockWidth       = 360
	blockHeight      = 460
	blockDrawY       = 360.0
	blockDrawH       = 80.0
	blockPlacePoints = 120
	blockLinePoints  = 500
)

// Shape is a piece as a row-major occupancy matrix.
type Shape [][]bool

// Shapes are the pieces a draw can produce.
var Shapes = []Shape{
	{{true, true}, {true, true}},
	{{true, true, true, true}},
	{{true, false}, {true, false}, {true, true}},
	{{true, true, true}, {false, true, false}},
}

// Grid is the board, indexed [row][col].
type Grid [GridSize][GridSize]bool

// BlockBlast is a lite Block Blast: draw a piece, place it, clear full lines.
type BlockBlast struct {
	env Env

	Grid     Grid
	Selected Shape
	Score    int
}

func NewBlockBlast(env Env) *BlockBlast {
	return &BlockBlast{env: env.withDefaults()}
}

func (b *BlockBlast) Title() string       { return "Block Blast" }
func (b *BlockBlast) ScoreKey() score.Key { return score.Block }
func (b *BlockBlast) Size() (int, int)    { return blockWidth, blockHeight }
func (b *BlockBlast) Status() string      { return fmt.Sprintf("Score: %d", b.Score) }
func (b *BlockBlast) Message() string {
	if b.Selected == nil {
		return "Tap the tray to draw a piece."
	}
	return ""
}

func (b *BlockBlast) Reset() {
	b.Grid = Grid{}
	b.Selected = nil
	b.Score = 0
}

// Update is a no-op: the board only changes on input.
func (b *BlockBlast) Update(int) {}

func (b *BlockBlast) Handle(ev engine.InputEvent) {
	switch {
	case isReset(ev):
		b.Reset()
	case ev.Kind == engine.Action && ev.Action == engine.ActionDraw:
		b.Draw()
	case ev.Kind == engine.PointerDown:
		if ev.Y >= blockDrawY && ev.Y < blockDrawY+blockDrawH {
			b.Draw()
			return
		}
		col := int((ev.X - blockPad) / blockCell)
		row := int((ev.Y - blockPad) / blockCell)
		if ev.X >= blockPad && ev.Y >= blockPad && row < GridSize && col < GridSize {
			b.Place(row, col)
		}
	}
}

// Draw selects a uniformly random shape, replacing any previous selection.
func (b *BlockBlast) Draw() {
	b.Selected = Shapes[b.env.Rand.IntN(len(Shapes))]
	b.env.Sound.Blip()
}

// Fits reports whether shape anchored at (row, col) lands on free, in-bounds
// cells only.
func (b *BlockBlast) Fits(shape Shape, row, col int) bool {
	for r, line := range shape {
		for c, filled := range line {
			if !filled {
				continue
			}
			gr, gc := row+r, col+c
			if gr < 0 || gr >= GridSize || gc < 0 || gc >= GridSize || b.Grid[gr][gc] {
				return false
			}
		}
	}
	return true
}

// Place puts the selected piece at (row, col). It reports whether the
// placement happened; a bad placement leaves board and selection untouched.
func (b *BlockBlast) Place(row, col int) bool {
	if b.Selected == nil || !b.Fits(b.Selected, row, col) {
		return false
	}
	for r, line := range b.Selected {
		for c, filled := range line {
			if filled {
				b.Grid[row+r][col+c] = true
			}
		}
	}
	b.Score += blockPlacePoints
	b.Selected = nil
	b.Score += blockLinePoints * b.clearLines()
	b.env.Scores.Report(score.Block, b.Score)
	return true
}

// clearLines finds every full row and column on the current board, then
// empties them all and returns how many lines were full. Rows and columns
// are counted independently, so crossing lines each score.
func (b *BlockBlast) clearLines() int {
	var rows, cols []int
	for i := 0; i < GridSize; i++ {
		rowFull, colFull := true, true
		for j := 0; j < GridSize; j++ {
			rowFull = rowFull && b.Grid[i][j]
			colFull = colFull && b.Grid[j][i]
		}
		if rowFull {
			rows = append(rows, i)
		}
		if colFull {
			cols = append(cols, i)
		}
	}
	for _, r := range rows {
		for j := 0; j < GridSize; j++ {
			b.Grid[r][j] = false
		}
	}
	for _, c := range cols {
		for j := 0; j < GridSize; j++ {
			b.Grid[j][c] = false
		}
	}
	if len(rows)+len(cols) > 0 {
		b.env.Sound.Blip()
	}
	return len(rows) + len(cols)
}

func (b *BlockBlast) Render(s engine.Surface) {
	p := b.env.Palette
	s.FillRect(0, 0, blockWidth, blockHeight, p.Background)
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			x, y := blockPad+float64(c)*blockCell, blockPad+float64(r)*blockCell
			if b.Grid[r][c] {
				s.FillRect(x+1, y+1, blockCell-2, blockCell-2, p.Primary)
			} else {
				s.StrokeRect(x, y, blockCell, blockCell, p.Muted)
			}
		}
	}

	s.StrokeRect(blockPad, blockDrawY, blockWidth-2*blockPad, blockDrawH-blockPad, p.Muted)
	if b.Selected == nil {
		s.Text("DRAW", blockWidth/2-14, blockDrawY+blockDrawH/2-6, p.Foreground)
		return
	}
	const mini = 14.0
	for r, line := range b.Selected {
		for c, filled := range line {
			if filled {
				s.FillRect(blockWidth/2-2*mini+float64(c)*mini, blockDrawY+6+float64(r)*mini, mini-1, mini-1, p.Accent)
			}
		}
	}
}
