package system

import (
	"testing"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerStopsAtWall(t *testing.T) {
	w := newTestWorld(t, 20)
	w.playerPos().X, w.playerPos().Y = 100, 100
	w.addWall(150, 100, 20, 100) // левый край на 140

	vel, _ := w.ecs.Velocities.Get(w.ecs.PlayerID)
	vel.X = 600
	w.physics.Update(0.1)

	assert.Equal(t, 130.0, w.playerPos().X, "правый край игрока прижат к стене")
	assert.Equal(t, 0.0, vel.X)
}

func TestWallBlocksOnlyOneAxis(t *testing.T) {
	w := newTestWorld(t, 20)
	w.playerPos().X, w.playerPos().Y = 100, 100
	w.addWall(150, 100, 20, 400)

	vel, _ := w.ecs.Velocities.Get(w.ecs.PlayerID)
	vel.X, vel.Y = 300, 300
	w.physics.Update(0.1)

	assert.Equal(t, 130.0, w.playerPos().X)
	assert.Equal(t, 130.0, w.playerPos().Y)
	assert.Equal(t, 300.0, vel.Y)
}

func TestEmbeddedPlayerCanLeaveWall(t *testing.T) {
	w := newTestWorld(t, 20)
	w.playerPos().X, w.playerPos().Y = 150, 100
	w.addWall(150, 100, 60, 60)

	vel, _ := w.ecs.Velocities.Get(w.ecs.PlayerID)
	vel.X = -150
	w.physics.Update(0.1)
	assert.Equal(t, 135.0, w.playerPos().X, "стена, в которой тело уже стоит, не держит его")
}

func TestGrownPlayerCannotPushThroughWall(t *testing.T) {
	w := newTestWorld(t, 20)
	w.playerPos().X, w.playerPos().Y = 400, 300
	w.addWall(450, 300, 40, 200) // 430..470

	vel, _ := w.ecs.Velocities.Get(w.ecs.PlayerID)
	vel.X = 300
	w.physics.Update(0.1)
	require.Equal(t, 420.0, w.playerPos().X, "прижат к левому краю стены")

	w.players.Grow(40) // 390..450, заходит в стену на 20
	for i := 0; i < 30; i++ {
		vel.X = 300
		w.physics.Update(0.1)
	}
	assert.Equal(t, 420.0, w.playerPos().X, "глубже в стену не проходит")
	assert.Equal(t, 0.0, vel.X)

	vel.X = -300
	w.physics.Update(0.1)
	assert.Equal(t, 390.0, w.playerPos().X, "назад из стены выйти можно")
}

func TestEmbeddedPlayerSlidesAlongWall(t *testing.T) {
	w := newTestWorld(t, 60)
	w.playerPos().X, w.playerPos().Y = 420, 300
	w.addWall(450, 300, 40, 400) // перекрытие по X 20, по Y — всё тело

	vel, _ := w.ecs.Velocities.Get(w.ecs.PlayerID)
	vel.Y = 300
	w.physics.Update(0.1)
	assert.Equal(t, 330.0, w.playerPos().Y, "вдоль стены глубина не растёт")
	assert.Equal(t, 420.0, w.playerPos().X)
}

func TestEnemiesIgnoreWalls(t *testing.T) {
	w := newTestWorld(t, 20)
	w.addWall(300, 100, 20, 100)
	id := w.spawner.SpawnEnemyAt(250, 100, 1)
	vel, _ := w.ecs.Velocities.Get(id)
	vel.X, vel.Y = 300, 0

	w.physics.Update(0.5)
	pos, _ := w.ecs.Positions.Get(id)
	assert.Equal(t, 400.0, pos.X)
}

func TestWorldBoundsStopBody(t *testing.T) {
	w := newTestWorld(t, 20)
	w.playerPos().X, w.playerPos().Y = 795, 5

	vel, _ := w.ecs.Velocities.Get(w.ecs.PlayerID)
	vel.X, vel.Y = 300, -300
	w.physics.Update(0.1)

	assert.Equal(t, 790.0, w.playerPos().X)
	assert.Equal(t, 10.0, w.playerPos().Y)
	assert.Equal(t, component.Velocity{}, *vel)
}

func TestBoundsFollowViewport(t *testing.T) {
	w := newTestWorld(t, 20)
	w.ecs.Viewport = component.Viewport{W: 1000, H: 600}
	w.playerPos().X = 795
	vel, _ := w.ecs.Velocities.Get(w.ecs.PlayerID)
	vel.X = 300
	w.physics.Update(0.1)
	assert.Equal(t, 825.0, w.playerPos().X)
}

func TestPausedPhysicsFreezesBodies(t *testing.T) {
	w := newTestWorld(t, 20)
	vel, _ := w.ecs.Velocities.Get(w.ecs.PlayerID)
	vel.X = 300
	w.physics.Pause()
	w.physics.Update(1)
	assert.Equal(t, 400.0, w.playerPos().X)
}

func TestOverlappingNarrowPhase(t *testing.T) {
	w := newTestWorld(t, 50)                      // 375..425
	near := w.spawner.SpawnEnemyAt(440, 300, 2)   // 430..450, в соседней клетке, но не касается
	touch := w.spawner.SpawnEnemyAt(430, 300, 1)  // 425..435, только касается краем
	inside := w.spawner.SpawnEnemyAt(428, 300, 1) // 423..433, заходит на 2
	far := w.spawner.SpawnEnemyAt(700, 500, 1)

	hits := w.physics.Overlapping(w.ecs.PlayerID, TagEnemy)
	assert.Equal(t, []types.EntityID{inside}, hits)
	assert.NotContains(t, hits, touch, "касание краем не перекрытие")
	assert.NotContains(t, hits, near)
	assert.NotContains(t, hits, far)
}

func TestRemoveBody(t *testing.T) {
	w := newTestWorld(t, 50)
	id := w.spawner.SpawnEnemyAt(400, 300, 1)
	require.Len(t, w.physics.Overlapping(w.ecs.PlayerID, TagEnemy), 1)
	before := w.physics.BodyCount()
	w.physics.RemoveBody(id)
	assert.Equal(t, before-1, w.physics.BodyCount())
	assert.Empty(t, w.physics.Overlapping(w.ecs.PlayerID, TagEnemy))
}
