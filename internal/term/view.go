// internal/term/view.go
package term

import (
	"math"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/types"

	"github.com/gdamore/tcell/v2"
)

// HUDRows — строки над полем: показатель размера и кнопка стрельбы.
const HUDRows = 2

// CellWriter — часть tcell.Screen, нужная для рисования.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	styleBullet     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleButtonOn   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	styleButtonOff  = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleGameOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
)

// Projection отображает пиксели мира в клетки терминала под HUD.
type Projection struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// Cell — клетка для точки мира; ok=false, если точка вне поля.
func (p Projection) Cell(x, y float64) (int, int, bool) {
	fieldRows := p.Rows - HUDRows
	if p.WorldW <= 0 || p.WorldH <= 0 || p.Cols <= 0 || fieldRows <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor(x / p.WorldW * float64(p.Cols)))
	cy := int(math.Floor(y / p.WorldH * float64(fieldRows)))
	if cx < 0 || cx >= p.Cols || cy < 0 || cy >= fieldRows {
		return 0, 0, false
	}
	return cx, cy + HUDRows, true
}

// ButtonLabel — текст кнопки в терминале.
func ButtonLabel(text string) string {
	return "[ " + text + " ]"
}

// ButtonHit — попал ли клик (x, y) в кнопку на второй строке HUD.
func ButtonHit(x, y int, text string) bool {
	return y == 1 && x >= 0 && x < len(ButtonLabel(text))
}

// View рисует мир в сетку символов.
type View struct {
	Proj Projection
}

func (v *View) Draw(w CellWriter, ecs *entity.ECS, readout, button string) {
	v.Proj.WorldW, v.Proj.WorldH = ecs.Viewport.W, ecs.Viewport.H

	for y := 0; y < v.Proj.Rows; y++ {
		for x := 0; x < v.Proj.Cols; x++ {
			w.SetContent(x, y, ' ', nil, styleBackground)
		}
	}

	for _, id := range ecs.WallIDs() {
		v.fillRect(w, ecs, id, '▒', styleWall)
	}
	for _, id := range ecs.EnemyIDs() {
		v.fillRect(w, ecs, id, '█', styleEnemy)
	}
	if _, ok := ecs.Positions.Get(ecs.PlayerID); ok && ecs.Player != nil {
		v.fillRect(w, ecs, ecs.PlayerID, '█', stylePlayer)
	}
	for _, id := range ecs.BulletIDs() {
		pos, ok := ecs.Positions.Get(id)
		if !ok {
			continue
		}
		if cx, cy, ok := v.Proj.Cell(pos.X, pos.Y); ok {
			w.SetContent(cx, cy, '•', nil, styleBullet)
		}
	}

	readoutStyle := styleText
	if ecs.GameState.Phase == component.GameOver {
		readoutStyle = styleGameOver
	}
	v.text(w, 0, 0, readout, readoutStyle)
	buttonStyle := styleButtonOn
	if !ecs.GameState.FireEnabled {
		buttonStyle = styleButtonOff
	}
	v.text(w, 0, 1, ButtonLabel(button), buttonStyle)
}

// fillRect закрашивает клетки, накрытые прямоугольником сущности.
// Маленькое тело занимает хотя бы одну клетку.
func (v *View) fillRect(w CellWriter, ecs *entity.ECS, id types.EntityID, ch rune, style tcell.Style) {
	rect, ok := ecs.RectOf(id)
	if !ok {
		return
	}
	x0, y0, ok0 := v.Proj.Cell(max(rect.X, 0), max(rect.Y, 0))
	x1, y1, ok1 := v.Proj.Cell(min(rect.Right(), v.Proj.WorldW-1e-9), min(rect.Bottom(), v.Proj.WorldH-1e-9))
	if !ok0 || !ok1 {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w.SetContent(x, y, ch, nil, style)
		}
	}
}

func (v *View) text(w CellWriter, x, y int, s string, style tcell.Style) {
	if y >= v.Proj.Rows {
		return
	}
	for _, r := range s {
		if x >= v.Proj.Cols {
			return
		}
		w.SetContent(x, y, r, nil, style)
		x++
	}
}
