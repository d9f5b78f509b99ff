// pkg/render/world_renderer.go
package render

import (
	"slices"

	"go-maze-absorb/internal/component"
	"go-maze-absorb/internal/entity"
	"go-maze-absorb/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует фон по размеру видимой области и все сущности
// с Renderable, слой за слоем.
type WorldRenderer struct {
	colors WorldColors
	order  []types.EntityID
}

func NewWorldRenderer(colors WorldColors) *WorldRenderer {
	return &WorldRenderer{colors: colors}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	vw, vh := float32(ecs.Viewport.W), float32(ecs.Viewport.H)
	screen.Fill(DarkenColor(r.colors.BackgroundColor))
	vector.DrawFilledRect(screen, 0, 0, vw, vh, r.colors.BackgroundColor, false)

	r.order = r.order[:0]
	ecs.Renderables.ForEach(func(id types.EntityID, _ *component.Renderable) bool {
		r.order = append(r.order, id)
		return true
	})
	slices.SortFunc(r.order, func(a, b types.EntityID) int {
		ra, _ := ecs.Renderables.Get(a)
		rb, _ := ecs.Renderables.Get(b)
		if ra.Layer != rb.Layer {
			return ra.Layer - rb.Layer
		}
		return int(a) - int(b)
	})

	for _, id := range r.order {
		rd, _ := ecs.Renderables.Get(id)
		pos, hasPos := ecs.Positions.Get(id)
		if !hasPos {
			continue
		}
		switch rd.Shape {
		case component.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rd.Radius, rd.Color, true)
		default:
			rect, ok := ecs.RectOf(id)
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), rd.Color, false)
		}
	}

	if ecs.GameState.Phase == component.GameOver {
		vector.DrawFilledRect(screen, 0, 0, vw, vh, r.colors.GameOverTint, false)
	}
}
