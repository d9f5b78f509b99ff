// internal/component/movement.go
package component

// Position — центр тела
type Position struct {
	X, Y float64
}

// Velocity — скорость в пикселях в секунду
type Velocity struct {
	X, Y float64
}

// Body — прямоугольное тело для физики и проверок перекрытия.
type Body struct {
	W, H               float64
	CollideWorldBounds bool
	CollideWalls       bool // только игрок упирается в стены лабиринта
}
