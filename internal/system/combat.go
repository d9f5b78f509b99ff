// internal/system/combat.go
package system

import (
	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/event"
	"go-maze-absorb/internal/types"
)

// CombatSystem разбирает перекрытия игрока с врагами: меньший враг
// поглощается, равный или больший заканчивает игру.
type CombatSystem struct {
	ecs             *entity.ECS
	physics         *PhysicsSystem
	players         *PlayerSystem
	spawner         *SpawnSystem
	states          *StateSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, physics *PhysicsSystem, players *PlayerSystem, spawner *SpawnSystem,
	states *StateSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		physics:         physics,
		players:         players,
		spawner:         spawner,
		states:          states,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	if s.ecs.Player == nil || s.ecs.GameState.Phase != component.Playing {
		return
	}
	for _, enemyID := range s.physics.Overlapping(s.ecs.PlayerID, TagEnemy) {
		s.Resolve(enemyID)
		if s.ecs.GameState.Phase != component.Playing {
			return
		}
	}
}

// Resolve обрабатывает одно касание игрока с врагом enemyID.
// Если врага уже нет (удалён раньше в этом кадре), ничего не делает.
func (s *CombatSystem) Resolve(enemyID types.EntityID) {
	if s.ecs.Player == nil || s.ecs.GameState.Phase != component.Playing {
		return
	}
	enemy, ok := s.ecs.Enemy(enemyID)
	if !ok {
		return
	}

	if s.ecs.Player.Size > float64(enemy.Size) {
		size := s.players.Grow(float64(enemy.Size) / 2)
		s.spawner.Despawn(enemyID)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyAbsorbed, Data: event.AbsorbData{
			EnemyID:    enemyID,
			EnemySize:  enemy.Size,
			PlayerSize: size,
		}})
		return
	}

	s.states.SwitchToGameOver(enemyID, enemy.Size)
}
