// internal/system/movement.go
package system

import (
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/utils"
)

// PlayerSpeed — скорость игрока для размера size.
func PlayerSpeed(size float64) float64 {
	return utils.Clamp(config.PlayerBaseSpeed/size, config.MinSpeed, config.MaxSpeed)
}

// EnemySpeed — предел скорости врага для размера size.
func EnemySpeed(size int) float64 {
	return utils.Clamp(config.EnemyBaseSpeed/float64(size), config.MinSpeed, config.MaxSpeed)
}

// MovementSystem переводит состояние клавиш в скорость игрока.
// Влево важнее вправо, вверх важнее вниз. Диагональ не нормируется,
// по ней игрок быстрее в √2 раз.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	if s.ecs.Player == nil {
		return
	}
	vel, ok := s.ecs.Velocities.Get(s.ecs.PlayerID)
	if !ok {
		return
	}
	speed := PlayerSpeed(s.ecs.Player.Size)
	in := s.ecs.Input

	switch {
	case in.Left:
		vel.X = -speed
	case in.Right:
		vel.X = speed
	default:
		vel.X = 0
	}

	switch {
	case in.Up:
		vel.Y = -speed
	case in.Down:
		vel.Y = speed
	default:
		vel.Y = 0
	}
}
