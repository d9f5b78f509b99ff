// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/types"
	"go-maze-absorb/internal/utils"

	"github.com/kamstrup/intmap"
)

// ECS — весь изменяемый мир игры. Системы получают его явно,
// глобальных переменных нет.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   *intmap.Map[types.EntityID, *component.Position]
	Velocities  *intmap.Map[types.EntityID, *component.Velocity]
	Bodies      *intmap.Map[types.EntityID, *component.Body]
	Renderables *intmap.Map[types.EntityID, *component.Renderable]
	Enemies     *intmap.Map[types.EntityID, *component.Enemy]
	Bullets     *intmap.Map[types.EntityID, *component.Bullet]
	Walls       *intmap.Map[types.EntityID, *component.Wall]

	PlayerID  types.EntityID
	Player    *component.Player
	Input     component.Input
	GameState *component.GameState
	Viewport  component.Viewport
}

func NewECS(viewportW, viewportH float64) *ECS {
	return &ECS{
		NextID:      1,
		Positions:   intmap.New[types.EntityID, *component.Position](64),
		Velocities:  intmap.New[types.EntityID, *component.Velocity](64),
		Bodies:      intmap.New[types.EntityID, *component.Body](64),
		Renderables: intmap.New[types.EntityID, *component.Renderable](64),
		Enemies:     intmap.New[types.EntityID, *component.Enemy](16),
		Bullets:     intmap.New[types.EntityID, *component.Bullet](64),
		Walls:       intmap.New[types.EntityID, *component.Wall](64),
		GameState: &component.GameState{
			Phase:       component.Playing,
			FireEnabled: true,
		},
		Viewport: component.Viewport{W: viewportW, H: viewportH},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности. Повторный вызов безопасен.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	ecs.Positions.Del(id)
	ecs.Velocities.Del(id)
	ecs.Bodies.Del(id)
	ecs.Renderables.Del(id)
	ecs.Enemies.Del(id)
	ecs.Bullets.Del(id)
	ecs.Walls.Del(id)
	if id == ecs.PlayerID {
		ecs.PlayerID = 0
		ecs.Player = nil
	}
}

// Enemy ищет врага по id. Отсутствие — обычный случай (враг мог быть
// удалён раньше в этом же кадре), вызывающий обязан его обработать.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	return ecs.Enemies.Get(id)
}

func (ecs *ECS) EnemyCount() int  { return ecs.Enemies.Len() }
func (ecs *ECS) BulletCount() int { return ecs.Bullets.Len() }

// EnemyIDs возвращает отсортированный снимок id, чтобы системы могли
// удалять врагов во время обхода.
func (ecs *ECS) EnemyIDs() []types.EntityID  { return SortedIDs(ecs.Enemies) }
func (ecs *ECS) BulletIDs() []types.EntityID { return SortedIDs(ecs.Bullets) }
func (ecs *ECS) WallIDs() []types.EntityID   { return SortedIDs(ecs.Walls) }

// RectOf — прямоугольник тела сущности.
func (ecs *ECS) RectOf(id types.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.Positions.Get(id)
	if !ok {
		return utils.Rect{}, false
	}
	body, ok := ecs.Bodies.Get(id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.RectFromCenter(pos.X, pos.Y, body.W, body.H), true
}

// PlayerRect — прямоугольник игрока, false если игрока нет.
func (ecs *ECS) PlayerRect() (utils.Rect, bool) {
	if ecs.Player == nil {
		return utils.Rect{}, false
	}
	return ecs.RectOf(ecs.PlayerID)
}

// SortedIDs собирает ключи хранилища по возрастанию.
func SortedIDs[V any](store *intmap.Map[types.EntityID, V]) []types.EntityID {
	ids := make([]types.EntityID, 0, store.Len())
	store.ForEach(func(id types.EntityID, _ V) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)
	return ids
}
