// internal/component/player.go
package component

// Player — состояние игрока. Размер дробный: поглощение добавляет
// половину размера врага.
type Player struct {
	Size float64
}

// Input — дискретное состояние четырёх клавиш направления за кадр.
// Заполняется фронтендом (Ebiten или терминал).
type Input struct {
	Left, Right, Up, Down bool
}
