package games

import (
	"testing"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

var square = Shapes[0]

func TestBlockBlastPlacementBounds(t *testing.T) {
	log := newReportLog(t)
	b := NewBlockBlast(env(log, fixedRand{n: 0}))
	b.Draw()

	if !b.Place(6, 6) {
		t.Fatal("2x2 at (6,6) should fit")
	}
	if b.Score != 120 || b.Selected != nil {
		t.Fatalf("score=%d selected=%v after placement", b.Score, b.Selected)
	}
	if log.store.Best(score.Block) != 120 {
		t.Fatalf("stored block = %d", log.store.Best(score.Block))
	}

	b.Draw()
	before := b.Grid
	if b.Place(7, 7) {
		t.Fatal("2x2 at (7,7) runs off the board")
	}
	if b.Grid != before {
		t.Fatal("rejected placement changed the grid")
	}
	if b.Selected == nil {
		t.Fatal("rejected placement dropped the selection")
	}
	if b.Score != 120 {
		t.Fatalf("rejected placement scored: %d", b.Score)
	}
}

func TestBlockBlastRejectsOverlap(t *testing.T) {
	b := NewBlockBlast(Env{Rand: fixedRand{n: 0}})
	b.Grid[2][3] = true
	b.Draw()

	before := b.Grid
	if b.Place(1, 2) {
		t.Fatal("placement over an occupied cell succeeded")
	}
	if b.Grid != before || b.Selected == nil {
		t.Fatal("overlap changed the board or selection")
	}
}

func TestBlockBlastPlaceWithoutSelection(t *testing.T) {
	b := NewBlockBlast(Env{Rand: quiet})
	if b.Place(0, 0) {
		t.Fatal("placed with nothing selected")
	}
	if b.Grid != (Grid{}) {
		t.Fatal("grid changed")
	}
}

func TestBlockBlastClearsFullRow(t *testing.T) {
	b := NewBlockBlast(Env{Rand: fixedRand{n: 0}})
	for c := 2; c < GridSize; c++ {
		b.Grid[3][c] = true
	}
	b.Draw()

	if !b.Place(3, 0) {
		t.Fatal("placement failed")
	}
	for c := 0; c < GridSize; c++ {
		if b.Grid[3][c] {
			t.Fatalf("row 3 col %d still occupied", c)
		}
	}
	if !b.Grid[4][0] || !b.Grid[4][1] {
		t.Fatal("cells outside the cleared row should stay")
	}
	if b.Score != 120+500 {
		t.Fatalf("score = %d, want 620", b.Score)
	}
}

func TestBlockBlastCrossingLinesScoreTwice(t *testing.T) {
	b := NewBlockBlast(Env{Rand: quiet})
	for i := 1; i < GridSize; i++ {
		b.Grid[0][i] = true
		b.Grid[i][0] = true
	}
	b.Selected = Shape{{true}}

	if !b.Place(0, 0) {
		t.Fatal("placement failed")
	}
	if b.Score != 120+2*500 {
		t.Fatalf("score = %d, want 1120", b.Score)
	}
	if b.Grid != (Grid{}) {
		t.Fatal("row 0 and column 0 should both be empty")
	}
}

func TestBlockBlastInput(t *testing.T) {
	b := NewBlockBlast(Env{Rand: fixedRand{n: 0}})

	b.Handle(engine.Press(100, blockDrawY+10))
	if b.Selected == nil {
		t.Fatal("tapping the tray should draw a piece")
	}
	b.Handle(engine.Press(blockPad+6*blockCell+5, blockPad+6*blockCell+5))
	if !b.Grid[6][6] || !b.Grid[7][7] {
		t.Fatal("tap on cell (6,6) should place the square there")
	}

	b.Handle(engine.Do(engine.ActionDraw))
	b.Handle(engine.Press(5, 5))
	if b.Selected == nil {
		t.Fatal("tap outside the grid should keep the selection")
	}

	b.Handle(engine.Do(engine.ActionReset))
	if b.Grid != (Grid{}) || b.Score != 0 || b.Selected != nil {
		t.Fatal("reset left state behind")
	}
}

func TestShapesAreNotEmpty(t *testing.T) {
	if len(Shapes) != 4 {
		t.Fatalf("shapes = %d, want 4", len(Shapes))
	}
	for i, s := range Shapes {
		cells := 0
		for _, row := range s {
			for _, f := range row {
				if f {
					cells++
				}
			}
		}
		if cells != 4 {
			t.Errorf("shape %d has %d cells, want 4", i, cells)
		}
	}
	if len(square) != 2 || len(square[0]) != 2 {
		t.Fatal("first shape should be the 2x2 square")
	}
}
