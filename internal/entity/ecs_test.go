package entity

import (
	"testing"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityNeverZero(t *testing.T) {
	ecs := NewECS(800, 600)
	first := ecs.NewEntity()
	second := ecs.NewEntity()
	assert.NotEqual(t, types.EntityID(0), first)
	assert.Equal(t, first+1, second)
}

func TestRemoveEntityClearsAllStores(t *testing.T) {
	ecs := NewECS(800, 600)
	id := ecs.NewEntity()
	ecs.Positions.Put(id, &component.Position{X: 1, Y: 2})
	ecs.Bodies.Put(id, &component.Body{W: 10, H: 10})
	ecs.Enemies.Put(id, &component.Enemy{Size: 20})

	_, ok := ecs.Enemy(id)
	require.True(t, ok)

	ecs.RemoveEntity(id)
	ecs.RemoveEntity(id)

	_, ok = ecs.Enemy(id)
	assert.False(t, ok)
	assert.False(t, ecs.Positions.Has(id))
	assert.False(t, ecs.Bodies.Has(id))
	assert.Equal(t, 0, ecs.EnemyCount())
}

func TestRemovePlayerDropsSingleton(t *testing.T) {
	ecs := NewECS(800, 600)
	ecs.PlayerID = ecs.NewEntity()
	ecs.Player = &component.Player{Size: 50}
	ecs.RemoveEntity(ecs.PlayerID)
	assert.Nil(t, ecs.Player)
	_, ok := ecs.PlayerRect()
	assert.False(t, ok)
}

func TestSortedIDsSnapshot(t *testing.T) {
	ecs := NewECS(800, 600)
	var want []types.EntityID
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ecs.Bullets.Put(id, &component.Bullet{})
		want = append(want, id)
	}
	ids := ecs.BulletIDs()
	assert.Equal(t, want, ids)

	for _, id := range ids {
		ecs.RemoveEntity(id)
	}
	assert.Empty(t, ecs.BulletIDs())
}

func TestRectOfIsCentred(t *testing.T) {
	ecs := NewECS(800, 600)
	id := ecs.NewEntity()
	ecs.Positions.Put(id, &component.Position{X: 100, Y: 50})
	ecs.Bodies.Put(id, &component.Body{W: 20, H: 10})
	r, ok := ecs.RectOf(id)
	require.True(t, ok)
	assert.Equal(t, 90.0, r.X)
	assert.Equal(t, 45.0, r.Y)
	assert.Equal(t, 110.0, r.Right())
}

func TestDefaultGameState(t *testing.T) {
	ecs := NewECS(800, 600)
	assert.Equal(t, component.Playing, ecs.GameState.Phase)
	assert.True(t, ecs.GameState.FireEnabled)
	assert.Equal(t, component.Viewport{W: 800, H: 600}, ecs.Viewport)
}
