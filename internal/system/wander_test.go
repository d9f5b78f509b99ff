package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWanderRerollsStalledAxis(t *testing.T) {
	w := newTestWorld(t, 50)
	id := w.spawner.SpawnEnemyAt(100, 100, 20)
	vel, _ := w.ecs.Velocities.Get(id)

	rerolled := false
	for i := 0; i < 50 && !rerolled; i++ {
		vel.X, vel.Y = 0, 123
		w.wander.Update(0)
		limit := EnemySpeed(20)
		assert.True(t, vel.X >= -limit && vel.X <= limit)
		assert.True(t, vel.Y >= -limit && vel.Y <= limit)
		rerolled = vel.Y != 123
	}
	assert.True(t, rerolled, "обе оси получают новую скорость")
}

func TestWanderLeavesMovingEnemiesAlone(t *testing.T) {
	w := newTestWorld(t, 50)
	id := w.spawner.SpawnEnemyAt(100, 100, 20)
	vel, _ := w.ecs.Velocities.Get(id)
	vel.X, vel.Y = -17, 42

	w.wander.Update(0)
	assert.Equal(t, -17.0, vel.X)
	assert.Equal(t, 42.0, vel.Y)
}
