// internal/component/enemy.go
package component

// Enemy — враг. Размер задаётся при появлении и больше не меняется.
type Enemy struct {
	Size      int
	FireTimer TimerHandle // таймер стрельбы, отменяется при удалении врага
}
