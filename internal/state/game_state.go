// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"go-maze-absorb/internal/app"
	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/event"
	"go-maze-absorb/internal/ui"
	"go-maze-absorb/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что GameState соответствует интерфейсам
var (
	_ State     = (*GameState)(nil)
	_ Resizable = (*GameState)(nil)
)

// GameState — состояние игры: ввод с клавиатуры и мыши, HUD, отрисовка мира.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *render.WorldRenderer
	readout   *ui.Label
	fireBtn   *ui.Button
	showDebug bool
}

func NewGameState(sm *StateMachine, tuning config.Tuning, hooks ...func(*event.Dispatcher)) *GameState {
	gameLogic := app.NewGame(tuning, float64(tuning.WindowWidth), float64(tuning.WindowHeight))
	for _, hook := range hooks {
		hook(gameLogic.EventDispatcher)
	}

	return &GameState{
		sm:   sm,
		game: gameLogic,
		renderer: render.NewWorldRenderer(render.WorldColors{
			BackgroundColor: config.BackgroundColor,
			GameOverTint:    config.GameOverTintColor,
		}),
		readout: ui.NewLabel(config.HUDMarginX, config.SizeReadoutY, config.TextLightColor),
		fireBtn: ui.NewButton(config.HUDMarginX, config.ToggleButtonY, config.ToggleButtonPadX, config.ToggleButtonPadY,
			gameLogic.FireButtonText(), config.TextLightColor, config.ButtonColor),
	}
}

// GetGame — доступ к логике, например для тестов и отладки.
func (g *GameState) GetGame() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Resize(width, height int) {
	g.game.Resize(float64(width), float64(height))
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	g.game.SetInput(readArrows())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}

	g.game.Update(deltaTime)
}

// readArrows читает стрелки. Опрос, а не события: важно только, зажата ли клавиша.
func readArrows() component.Input {
	return component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}

func (g *GameState) handleClick(x, y int) {
	if !g.fireBtn.Contains(x, y) {
		return
	}
	if !g.fireBtn.Ready(config.ClickCooldown * time.Millisecond) {
		return
	}
	g.fireBtn.Press()
	if g.game.ToggleFire() {
		g.fireBtn.BgColor = config.ButtonColor
	} else {
		g.fireBtn.BgColor = config.ButtonOffColor
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)

	g.readout.Draw(screen, g.game.Readout())
	g.fireBtn.Text = g.game.FireButtonText()
	g.fireBtn.Draw(screen)

	if g.showDebug {
		ecs := g.game.ECS
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  enemies %d  bullets %d  timers %d  absorbed %d  hits %d",
			ebiten.ActualTPS(), ecs.EnemyCount(), ecs.BulletCount(), g.game.Clock.Len(), g.game.Stats.Absorbed, g.game.Stats.Hits),
			config.HUDMarginX, int(ecs.Viewport.H)-20)
	}
}

func (g *GameState) Exit() {}
