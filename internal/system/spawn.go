// internal/system/spawn.go
package system

import (
	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/event"
	"go-maze-absorb/internal/types"
	"go-maze-absorb/internal/utils"
)

// SpawnSystem держит число врагов не ниже целевого и владеет
// их таймерами стрельбы.
type SpawnSystem struct {
	ecs             *entity.ECS
	clock           *Clock
	physics         *PhysicsSystem
	projectiles     *ProjectileSystem
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	target          int
	fireRateMs      float64
}

func NewSpawnSystem(ecs *entity.ECS, clock *Clock, physics *PhysicsSystem, projectiles *ProjectileSystem,
	rng *utils.PRNGService, eventDispatcher *event.Dispatcher, target int, fireRateMs float64) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		clock:           clock,
		physics:         physics,
		projectiles:     projectiles,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		target:          target,
		fireRateMs:      fireRateMs,
	}
}

// Target — целевое число врагов
func (s *SpawnSystem) Target() int { return s.target }

// Update доращивает популяцию до цели в этом же кадре, чтобы после
// любого кадра врагов было не меньше target, даже если за кадр
// поглотили нескольких.
func (s *SpawnSystem) Update(deltaTime float64) {
	for s.ecs.EnemyCount() < s.target {
		s.SpawnEnemy()
	}
}

// SpawnEnemy создаёт врага в случайной точке с отступом от краёв экрана.
func (s *SpawnSystem) SpawnEnemy() types.EntityID {
	vw, vh := int(s.ecs.Viewport.W), int(s.ecs.Viewport.H)
	x := s.rng.Between(config.EnemySpawnInset, vw-config.EnemySpawnInset)
	y := s.rng.Between(config.EnemySpawnInset, vh-config.EnemySpawnInset)
	size := s.rng.Between(config.EnemyMinSize, config.EnemyMaxSize)
	return s.SpawnEnemyAt(float64(x), float64(y), size)
}

// SpawnEnemyAt создаёт врага заданного размера в точке (x, y) со
// случайной скоростью и регистрирует его повторяющийся таймер стрельбы.
func (s *SpawnSystem) SpawnEnemyAt(x, y float64, size int) types.EntityID {
	id := s.ecs.NewEntity()
	side := float64(size * config.EnemyDisplayScale)
	speed := EnemySpeed(size)

	s.ecs.Positions.Put(id, &component.Position{X: x, Y: y})
	s.ecs.Velocities.Put(id, &component.Velocity{
		X: s.rng.BetweenSpeed(speed),
		Y: s.rng.BetweenSpeed(speed),
	})
	s.ecs.Bodies.Put(id, &component.Body{W: side, H: side, CollideWorldBounds: true})
	s.ecs.Renderables.Put(id, &component.Renderable{Color: config.EnemyColor, Shape: component.ShapeRect, Layer: 1})

	enemy := &component.Enemy{Size: size}
	enemy.FireTimer = s.clock.AddEvent(s.fireRateMs, true, func() {
		s.projectiles.FireFrom(id)
	})
	s.ecs.Enemies.Put(id, enemy)
	s.physics.AddBody(id, TagEnemy)

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{EnemyID: id, Size: size}})
	return id
}

// Despawn удаляет врага вместе с его таймером. Отсутствующий враг —
// не ошибка, возвращается false.
func (s *SpawnSystem) Despawn(id types.EntityID) bool {
	enemy, ok := s.ecs.Enemy(id)
	if !ok {
		return false
	}
	s.clock.Cancel(enemy.FireTimer)
	s.physics.RemoveBody(id)
	s.ecs.RemoveEntity(id)
	return true
}
