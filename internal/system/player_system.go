// internal/system/player_system.go
package system

import (
	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/types"
)

// PlayerSystem создаёт игрока и меняет его размер. Размер и сторона
// тела всегда совпадают.
type PlayerSystem struct {
	ecs     *entity.ECS
	physics *PhysicsSystem
}

func NewPlayerSystem(ecs *entity.ECS, physics *PhysicsSystem) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, physics: physics}
}

// CreatePlayer ставит игрока в точку (x, y). Повторный вызов заменяет игрока.
func (s *PlayerSystem) CreatePlayer(x, y, size float64) types.EntityID {
	if s.ecs.Player != nil {
		s.physics.RemoveBody(s.ecs.PlayerID)
		s.ecs.RemoveEntity(s.ecs.PlayerID)
	}
	size = max(size, config.PlayerMinSize)

	id := s.ecs.NewEntity()
	s.ecs.PlayerID = id
	s.ecs.Player = &component.Player{Size: size}
	s.ecs.Positions.Put(id, &component.Position{X: x, Y: y})
	s.ecs.Velocities.Put(id, &component.Velocity{})
	s.ecs.Bodies.Put(id, &component.Body{W: size, H: size, CollideWorldBounds: true, CollideWalls: true})
	s.ecs.Renderables.Put(id, &component.Renderable{Color: config.PlayerColor, Shape: component.ShapeRect, Layer: 2})
	s.physics.AddBody(id, TagPlayer)
	return id
}

// SetSize задаёт размер игрока с нижней границей PlayerMinSize
// и возвращает итоговый размер.
func (s *PlayerSystem) SetSize(size float64) float64 {
	if s.ecs.Player == nil {
		return 0
	}
	size = max(size, config.PlayerMinSize)
	s.ecs.Player.Size = size
	if body, ok := s.ecs.Bodies.Get(s.ecs.PlayerID); ok {
		body.W, body.H = size, size
	}
	return size
}

// Grow увеличивает игрока на amount
func (s *PlayerSystem) Grow(amount float64) float64 {
	if s.ecs.Player == nil {
		return 0
	}
	return s.SetSize(s.ecs.Player.Size + amount)
}

// Shrink уменьшает игрока на amount, но не ниже PlayerMinSize
func (s *PlayerSystem) Shrink(amount float64) float64 {
	if s.ecs.Player == nil {
		return 0
	}
	return s.SetSize(s.ecs.Player.Size - amount)
}
