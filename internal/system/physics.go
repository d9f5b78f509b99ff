// internal/system/physics.go
package system

import (
	"slices"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/types"
	"go-maze-absorb/internal/utils"

	"github.com/solarlune/resolv"
)

// Теги объектов в пространстве коллизий
const (
	TagWall   = "wall"
	TagPlayer = "player"
	TagEnemy  = "enemy"
)

// PhysicsSystem двигает тела по скоростям, упирает игрока в стены
// лабиринта и держит тела внутри видимой области. Широкая фаза —
// пространство resolv, узкая — пересечение прямоугольников.
type PhysicsSystem struct {
	ecs     *entity.ECS
	space   *resolv.Space
	objects map[types.EntityID]*resolv.Object
	paused  bool
}

func NewPhysicsSystem(ecs *entity.ECS) *PhysicsSystem {
	return &PhysicsSystem{
		ecs:     ecs,
		space:   resolv.NewSpace(config.WorldMaxWidth, config.WorldMaxHeight, config.CollisionCell, config.CollisionCell),
		objects: make(map[types.EntityID]*resolv.Object),
	}
}

// AddBody регистрирует сущность в пространстве коллизий под тегом.
// Позиция и тело должны уже быть в ECS.
func (s *PhysicsSystem) AddBody(id types.EntityID, tag string) {
	rect, ok := s.ecs.RectOf(id)
	if !ok {
		return
	}
	if old, exists := s.objects[id]; exists {
		s.space.Remove(old)
	}
	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tag)
	obj.Data = id
	s.space.Add(obj)
	s.objects[id] = obj
}

// RemoveBody убирает сущность из пространства коллизий.
func (s *PhysicsSystem) RemoveBody(id types.EntityID) {
	if obj, ok := s.objects[id]; ok {
		s.space.Remove(obj)
		delete(s.objects, id)
	}
}

// Pause останавливает симуляцию навсегда: возобновления нет.
func (s *PhysicsSystem) Pause()       { s.paused = true }
func (s *PhysicsSystem) Paused() bool { return s.paused }

func (s *PhysicsSystem) Update(deltaTime float64) {
	if s.paused {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.Velocities) {
		vel, _ := s.ecs.Velocities.Get(id)
		pos, hasPos := s.ecs.Positions.Get(id)
		body, hasBody := s.ecs.Bodies.Get(id)
		if !hasPos || !hasBody {
			continue
		}
		s.sync(id, pos, body)

		dx := vel.X * deltaTime
		dy := vel.Y * deltaTime
		if body.CollideWalls {
			// по осям отдельно, как аркадная физика: упор по X не гасит движение по Y
			if blocked := s.moveAxis(id, pos, body, dx, 0); blocked {
				vel.X = 0
			}
			if blocked := s.moveAxis(id, pos, body, 0, dy); blocked {
				vel.Y = 0
			}
		} else {
			pos.X += dx
			pos.Y += dy
		}

		if body.CollideWorldBounds {
			s.clampToViewport(pos, body, vel)
		}
		s.sync(id, pos, body)
	}
}

// moveAxis сдвигает тело на (dx, dy) вдоль одной оси. Стены, которые уже
// перекрывают тело, не мешают ему выбраться, но не пускают глубже.
// Возвращает true при упоре.
func (s *PhysicsSystem) moveAxis(id types.EntityID, pos *component.Position, body *component.Body, dx, dy float64) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	obj, ok := s.objects[id]
	if !ok {
		pos.X += dx
		pos.Y += dy
		return false
	}

	from := utils.RectFromCenter(pos.X, pos.Y, body.W, body.H)
	to := utils.RectFromCenter(pos.X+dx, pos.Y+dy, body.W, body.H)
	allowedX, allowedY := dx, dy
	blocked := false

	if collision := obj.Check(dx, dy, TagWall); collision != nil {
		for _, other := range collision.Objects {
			wall := utils.Rect{X: other.X, Y: other.Y, W: other.W, H: other.H}
			if wall.Overlaps(from) {
				// тело уже в стене (выросло или стартовало в ней): выходить
				// можно, глубже заходить нельзя
				if penetration(to, wall) > penetration(from, wall) {
					blocked = true
					if dx != 0 {
						allowedX = 0
					} else {
						allowedY = 0
					}
				}
				continue
			}
			if !wall.Overlaps(to) {
				continue
			}
			blocked = true
			switch {
			case dx > 0:
				allowedX = min(allowedX, wall.X-from.Right())
			case dx < 0:
				allowedX = max(allowedX, wall.Right()-from.X)
			case dy > 0:
				allowedY = min(allowedY, wall.Y-from.Bottom())
			case dy < 0:
				allowedY = max(allowedY, wall.Bottom()-from.Y)
			}
		}
	}

	pos.X += allowedX
	pos.Y += allowedY
	obj.X = pos.X - body.W/2
	obj.Y = pos.Y - body.H/2
	obj.Update()
	return blocked
}

// penetration — на сколько тело нужно вытолкнуть из стены по кратчайшей оси.
// Ноль, если перекрытия нет.
func penetration(body, wall utils.Rect) float64 {
	if !body.Overlaps(wall) {
		return 0
	}
	px := min(body.Right()-wall.X, wall.Right()-body.X)
	py := min(body.Bottom()-wall.Y, wall.Bottom()-body.Y)
	return min(px, py)
}

func (s *PhysicsSystem) clampToViewport(pos *component.Position, body *component.Body, vel *component.Velocity) {
	vw, vh := s.ecs.Viewport.W, s.ecs.Viewport.H
	halfW, halfH := body.W/2, body.H/2

	if pos.X-halfW < 0 {
		pos.X = halfW
		vel.X = 0
	} else if pos.X+halfW > vw {
		pos.X = max(vw-halfW, halfW)
		vel.X = 0
	}
	if pos.Y-halfH < 0 {
		pos.Y = halfH
		vel.Y = 0
	} else if pos.Y+halfH > vh {
		pos.Y = max(vh-halfH, halfH)
		vel.Y = 0
	}
}

// sync переносит позицию и размер тела в объект resolv.
func (s *PhysicsSystem) sync(id types.EntityID, pos *component.Position, body *component.Body) {
	obj, ok := s.objects[id]
	if !ok {
		return
	}
	obj.X = pos.X - body.W/2
	obj.Y = pos.Y - body.H/2
	obj.W = body.W
	obj.H = body.H
	obj.Update()
}

// Overlapping возвращает id сущностей с тегом tag, чьи тела перекрываются
// с телом id. Касание краями не считается. Порядок — по возрастанию id.
func (s *PhysicsSystem) Overlapping(id types.EntityID, tag string) []types.EntityID {
	obj, ok := s.objects[id]
	if !ok {
		return nil
	}
	rect, ok := s.ecs.RectOf(id)
	if !ok {
		return nil
	}
	if pos, hasPos := s.ecs.Positions.Get(id); hasPos {
		if body, hasBody := s.ecs.Bodies.Get(id); hasBody {
			s.sync(id, pos, body)
		}
	}

	collision := obj.Check(0, 0, tag)
	if collision == nil {
		return nil
	}
	var hits []types.EntityID
	for _, other := range collision.Objects {
		otherID, ok := other.Data.(types.EntityID)
		if !ok {
			continue
		}
		otherRect, ok := s.ecs.RectOf(otherID)
		if !ok || !rect.Overlaps(otherRect) {
			continue
		}
		hits = append(hits, otherID)
	}
	slices.Sort(hits)
	return slices.Compact(hits)
}

// BodyCount — число объектов в пространстве коллизий
func (s *PhysicsSystem) BodyCount() int { return len(s.objects) }
