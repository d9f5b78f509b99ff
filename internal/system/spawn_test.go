package system

import (
	"testing"

	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnFillsToTarget(t *testing.T) {
	w := newTestWorld(t, 50)
	w.spawner.Update(0)
	assert.Equal(t, config.EnemyTargetCount, w.ecs.EnemyCount())
	assert.Equal(t, config.EnemyTargetCount, w.clock.Len(), "ровно один таймер на врага")
	assert.Equal(t, config.EnemyTargetCount, w.count(event.EnemySpawned))

	w.spawner.Update(0)
	assert.Equal(t, config.EnemyTargetCount, w.ecs.EnemyCount(), "лишних не создаётся")
}

func TestSpawnReplacesSeveralRemovedInOneFrame(t *testing.T) {
	w := newTestWorld(t, 50)
	w.spawner.Update(0)
	ids := w.ecs.EnemyIDs()
	for _, id := range ids[:3] {
		require.True(t, w.spawner.Despawn(id))
	}
	assert.Equal(t, config.EnemyTargetCount-3, w.ecs.EnemyCount())

	w.spawner.Update(0)
	assert.Equal(t, config.EnemyTargetCount, w.ecs.EnemyCount())
	assert.Equal(t, config.EnemyTargetCount, w.clock.Len())
}

func TestSpawnedEnemyBounds(t *testing.T) {
	w := newTestWorld(t, 50)
	for i := 0; i < 200; i++ {
		id := w.spawner.SpawnEnemy()
		enemy, ok := w.ecs.Enemy(id)
		require.True(t, ok)
		assert.GreaterOrEqual(t, enemy.Size, config.EnemyMinSize)
		assert.LessOrEqual(t, enemy.Size, config.EnemyMaxSize)

		pos, _ := w.ecs.Positions.Get(id)
		assert.True(t, pos.X >= 50 && pos.X <= 750, "x=%v", pos.X)
		assert.True(t, pos.Y >= 50 && pos.Y <= 550, "y=%v", pos.Y)

		body, _ := w.ecs.Bodies.Get(id)
		assert.Equal(t, float64(enemy.Size*config.EnemyDisplayScale), body.W)
		assert.True(t, body.CollideWorldBounds)
		assert.False(t, body.CollideWalls)

		vel, _ := w.ecs.Velocities.Get(id)
		limit := EnemySpeed(enemy.Size)
		assert.True(t, vel.X >= -limit && vel.X <= limit)
		assert.True(t, vel.Y >= -limit && vel.Y <= limit)
	}
}

func TestDespawnCancelsTimer(t *testing.T) {
	w := newTestWorld(t, 50)
	id := w.spawner.SpawnEnemyAt(100, 100, 10)
	require.Equal(t, 1, w.clock.Len())

	assert.True(t, w.spawner.Despawn(id))
	assert.False(t, w.spawner.Despawn(id))
	assert.Equal(t, 0, w.clock.Len())

	w.clock.Tick(10_000)
	assert.Equal(t, 0, w.ecs.BulletCount(), "удалённый враг больше не стреляет")
}

func TestFireTimerPeriod(t *testing.T) {
	w := newTestWorld(t, 50)
	w.spawner.SpawnEnemyAt(100, 100, 10)

	w.clock.Tick(999)
	assert.Equal(t, 0, w.ecs.BulletCount())
	w.clock.Tick(1)
	assert.Equal(t, 1, w.ecs.BulletCount())
	w.clock.Tick(3000)
	assert.Equal(t, 2, w.ecs.BulletCount(), "длинный тик даёт одну пулю")
	w.clock.Tick(1)
	w.clock.Tick(1)
	assert.Equal(t, 4, w.ecs.BulletCount())
}

func TestNoBulletsWhileFireDisabled(t *testing.T) {
	w := newTestWorld(t, 50)
	w.spawner.Update(0)
	w.states.ToggleFire()

	for i := 0; i < 600; i++ {
		w.clock.Tick(1000.0 / 60)
	}
	w.clock.Tick(60_000)
	assert.Equal(t, 0, w.ecs.BulletCount())

	w.states.ToggleFire()
	w.clock.Tick(1000)
	assert.Equal(t, config.EnemyTargetCount, w.ecs.BulletCount(), "таймеры живы, стрельба возобновилась")
}
