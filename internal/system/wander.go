// internal/system/wander.go
package system

import (
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/utils"
)

// WanderSystem перебрасывает скорость врага, как только он встал
// хотя бы по одной оси (обычно после упора в край экрана).
type WanderSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewWanderSystem(ecs *entity.ECS, rng *utils.PRNGService) *WanderSystem {
	return &WanderSystem{ecs: ecs, rng: rng}
}

func (s *WanderSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemy(id)
		if !ok {
			continue
		}
		vel, ok := s.ecs.Velocities.Get(id)
		if !ok {
			continue
		}
		if vel.X != 0 && vel.Y != 0 {
			continue
		}
		speed := EnemySpeed(enemy.Size)
		vel.X = s.rng.BetweenSpeed(speed)
		vel.Y = s.rng.BetweenSpeed(speed)
	}
}
