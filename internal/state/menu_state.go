// internal/state/menu_state.go
package state

import (
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка до начала игры
type MenuState struct {
	sm     *StateMachine
	tuning config.Tuning
	hooks  []func(*event.Dispatcher)
}

// NewMenuState: hooks передаются дальше в GameState (например, подписка звука).
func NewMenuState(sm *StateMachine, tuning config.Tuning, hooks ...func(*event.Dispatcher)) *MenuState {
	return &MenuState{sm: sm, tuning: tuning, hooks: hooks}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.tuning, m.hooks...))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "MAZE ABSORB", 40, 40)
	ebitenutil.DebugPrintAt(screen, "Arrows: move. Eat smaller squares, avoid bigger ones.", 40, 70)
	ebitenutil.DebugPrintAt(screen, "Yellow bullets shrink you. Click the blue button to toggle enemy fire.", 40, 90)
	ebitenutil.DebugPrintAt(screen, "Press SPACE to start", 40, 130)
}

func (m *MenuState) Exit() {}
