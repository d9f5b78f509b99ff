// internal/system/projectile.go
package system

import (
	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/event"
	"go-maze-absorb/internal/types"
	"go-maze-absorb/internal/utils"
)

// ProjectileSystem создаёт вражеские пули, двигает их и обрабатывает
// попадания в игрока. Промахнувшиеся пули живут дальше.
type ProjectileSystem struct {
	ecs             *entity.ECS
	players         *PlayerSystem
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	speed           float64
}

func NewProjectileSystem(ecs *entity.ECS, players *PlayerSystem, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, speed float64) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		players:         players,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		speed:           speed,
	}
}

// FireFrom выпускает пулю из центра врага в случайном направлении.
// Ничего не делает, если стрельба выключена или врага уже нет.
func (s *ProjectileSystem) FireFrom(enemyID types.EntityID) (types.EntityID, bool) {
	if !s.ecs.GameState.FireEnabled {
		return 0, false
	}
	enemy, ok := s.ecs.Enemy(enemyID)
	if !ok {
		return 0, false
	}
	pos, ok := s.ecs.Positions.Get(enemyID)
	if !ok {
		return 0, false
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions.Put(id, &component.Position{X: pos.X, Y: pos.Y})
	s.ecs.Bodies.Put(id, &component.Body{W: 2 * config.BulletRadius, H: 2 * config.BulletRadius})
	s.ecs.Renderables.Put(id, &component.Renderable{
		Color:  config.BulletColor,
		Shape:  component.ShapeCircle,
		Radius: config.BulletRadius,
		Layer:  3,
	})
	s.ecs.Bullets.Put(id, &component.Bullet{
		DirX:  s.rng.Between(-1, 1),
		DirY:  s.rng.Between(-1, 1),
		Speed: s.speed,
		Owner: enemyID,
	})

	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: event.EnemyData{EnemyID: enemyID, Size: enemy.Size}})
	return id, true
}

// Update сдвигает каждую пулю на Dir*Speed (скорость задана за кадр,
// deltaTime не используется) и проверяет попадание в игрока.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.BulletIDs() {
		bullet, ok := s.ecs.Bullets.Get(id)
		if !ok {
			continue
		}
		pos, ok := s.ecs.Positions.Get(id)
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos.X += float64(bullet.DirX) * bullet.Speed
		pos.Y += float64(bullet.DirY) * bullet.Speed

		playerRect, hasPlayer := s.ecs.PlayerRect()
		if !hasPlayer {
			continue
		}
		bulletRect, _ := s.ecs.RectOf(id)
		if !bulletRect.Intersects(playerRect) {
			continue
		}
		size := s.players.Shrink(config.BulletDamage)
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.HitData{BulletID: id, PlayerSize: size}})
	}
}
