package system

import (
	"testing"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/event"
	"go-maze-absorb/internal/types"
	"go-maze-absorb/internal/utils"
)

// testWorld — мир без лабиринта и без стартовых врагов.
type testWorld struct {
	ecs         *entity.ECS
	clock       *Clock
	physics     *PhysicsSystem
	players     *PlayerSystem
	projectiles *ProjectileSystem
	spawner     *SpawnSystem
	states      *StateSystem
	combat      *CombatSystem
	movement    *MovementSystem
	wander      *WanderSystem
	events      []event.Event
}

func newTestWorld(t *testing.T, playerSize float64) *testWorld {
	t.Helper()
	ecs := entity.NewECS(800, 600)
	d := event.NewDispatcher()
	rng := utils.NewPRNGService(1)
	clock := NewClock()
	physics := NewPhysicsSystem(ecs)
	players := NewPlayerSystem(ecs, physics)
	projectiles := NewProjectileSystem(ecs, players, rng, d, config.BulletSpeed)
	spawner := NewSpawnSystem(ecs, clock, physics, projectiles, rng, d, config.EnemyTargetCount, config.EnemyFireRate)
	states := NewStateSystem(ecs, physics, clock, d)

	w := &testWorld{
		ecs:         ecs,
		clock:       clock,
		physics:     physics,
		players:     players,
		projectiles: projectiles,
		spawner:     spawner,
		states:      states,
		combat:      NewCombatSystem(ecs, physics, players, spawner, states, d),
		movement:    NewMovementSystem(ecs),
		wander:      NewWanderSystem(ecs, rng),
	}
	record := event.ListenerFunc(func(e event.Event) { w.events = append(w.events, e) })
	for _, et := range []event.EventType{event.EnemySpawned, event.EnemyAbsorbed, event.PlayerHit, event.BulletFired, event.FireToggled, event.GameOver} {
		d.Subscribe(et, record)
	}
	players.CreatePlayer(400, 300, playerSize)
	return w
}

func (w *testWorld) count(et event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == et {
			n++
		}
	}
	return n
}

func (w *testWorld) addWall(x, y, width, height float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions.Put(id, &component.Position{X: x, Y: y})
	w.ecs.Bodies.Put(id, &component.Body{W: width, H: height})
	w.ecs.Walls.Put(id, &component.Wall{})
	w.physics.AddBody(id, TagWall)
	return id
}

// stopEnemy обнуляет скорость, чтобы физика не сдвигала врага в тесте.
func (w *testWorld) stopEnemy(id types.EntityID) {
	if vel, ok := w.ecs.Velocities.Get(id); ok {
		vel.X, vel.Y = 0, 0
	}
}

func (w *testWorld) playerPos() *component.Position {
	pos, _ := w.ecs.Positions.Get(w.ecs.PlayerID)
	return pos
}
