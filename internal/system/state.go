// internal/system/state.go
package system

import (
	"log"
	"strconv"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/event"
	"go-maze-absorb/internal/types"
)

// StateSystem ведёт фазу игры. Единственный переход — Playing -> GameOver.
type StateSystem struct {
	ecs             *entity.ECS
	physics         *PhysicsSystem
	clock           *Clock
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, physics *PhysicsSystem, clock *Clock, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		physics:         physics,
		clock:           clock,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}

// SwitchToGameOver останавливает физику и таймеры. Повторный вызов ничего не меняет.
func (s *StateSystem) SwitchToGameOver(by types.EntityID, enemySize int) {
	if s.ecs.GameState.Phase == component.GameOver {
		return
	}
	s.ecs.GameState.Phase = component.GameOver
	s.physics.Pause()
	s.clock.Pause()
	if s.ecs.Player != nil {
		log.Printf("game over: player size %v touched enemy %d of size %d", s.ecs.Player.Size, by, enemySize)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.EnemyData{EnemyID: by, Size: enemySize}})
}

// ToggleFire переключает стрельбу врагов и возвращает новое значение.
// Уже летящие пули и зарегистрированные таймеры не трогаются.
func (s *StateSystem) ToggleFire() bool {
	s.ecs.GameState.FireEnabled = !s.ecs.GameState.FireEnabled
	s.eventDispatcher.Dispatch(event.Event{Type: event.FireToggled, Data: s.ecs.GameState.FireEnabled})
	return s.ecs.GameState.FireEnabled
}

// ReadoutText — текст счётчика размера: "Size: N" или "Game Over!".
func ReadoutText(ecs *entity.ECS) string {
	if ecs.GameState.Phase == component.GameOver {
		return config.GameOverText
	}
	if ecs.Player == nil {
		return "Size: -"
	}
	return "Size: " + strconv.FormatFloat(ecs.Player.Size, 'f', -1, 64)
}

// FireButtonText — подпись кнопки переключения стрельбы.
func FireButtonText(ecs *entity.ECS) string {
	if ecs.GameState.FireEnabled {
		return "Enemy fire: ON"
	}
	return "Enemy fire: OFF"
}
