// internal/ui/button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Button — текстовая кнопка с подложкой. Размер подстраивается под текст.
type Button struct {
	X, Y           float32
	PadX, PadY     float32
	Text           string
	TextColor      color.Color
	BgColor        color.Color
	Face           font.Face
	LastToggleTime time.Time
}

// NewButton создает новую кнопку с левым верхним углом в (x, y).
func NewButton(x, y, padX, padY float32, label string, textColor, bgColor color.Color) *Button {
	return &Button{
		X:         x,
		Y:         y,
		PadX:      padX,
		PadY:      padY,
		Text:      label,
		TextColor: textColor,
		BgColor:   bgColor,
		Face:      basicfont.Face7x13,
	}
}

// Size — ширина и высота подложки
func (b *Button) Size() (float32, float32) {
	bounds := text.BoundString(b.Face, b.Text)
	return float32(bounds.Dx()) + 2*b.PadX, float32(b.Face.Metrics().Height.Ceil()) + 2*b.PadY
}

// Contains проверяет, попала ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	w, h := b.Size()
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+w && fy >= b.Y && fy <= b.Y+h
}

// Ready — прошёл ли cooldown с последнего нажатия
func (b *Button) Ready(cooldown time.Duration) bool {
	return time.Since(b.LastToggleTime) >= cooldown
}

// Press отмечает время нажатия
func (b *Button) Press() {
	b.LastToggleTime = time.Now()
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	w, h := b.Size()
	vector.DrawFilledRect(screen, b.X, b.Y, w, h, b.BgColor, false)
	ascent := b.Face.Metrics().Ascent.Ceil()
	text.Draw(screen, b.Text, b.Face, int(b.X+b.PadX), int(b.Y+b.PadY)+ascent, b.TextColor)
}
