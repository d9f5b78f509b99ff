// internal/ui/label.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Label — строка текста в HUD (счётчик размера).
type Label struct {
	X, Y  int
	Color color.Color
	Face  font.Face
}

func NewLabel(x, y int, clr color.Color) *Label {
	return &Label{X: x, Y: y, Color: clr, Face: basicfont.Face7x13}
}

// Draw рисует s так, что (X, Y) — левый верхний угол строки.
func (l *Label) Draw(screen *ebiten.Image, s string) {
	text.Draw(screen, s, l.Face, l.X, l.Y+l.Face.Metrics().Ascent.Ceil(), l.Color)
}
