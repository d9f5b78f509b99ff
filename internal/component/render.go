// component/render.go
package component

import "image/color"

// Shape — форма, которой рисуется сущность
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Renderable — компонент для отрисовки. Размер берётся из Body,
// для кругов — из Radius.
type Renderable struct {
	Color  color.RGBA
	Shape  Shape
	Radius float32
	Layer  int // больше — выше
}
