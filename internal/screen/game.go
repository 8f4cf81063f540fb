package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zachkp/playground/internal/arcade"
)

// Game adapts an arcade to ebiten.Game.
type Game struct {
	Arcade    *arcade.Arcade
	FontScale float64
	input     Input
}

func (g *Game) Update() error {
	g.Arcade.Frame(g.input.Poll())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Arcade.Draw(&Canvas{Image: screen, FontScale: g.FontScale})
}

func (g *Game) Layout(int, int) (int, int) {
	return arcade.ScreenWidth, arcade.ScreenHeight
}
