// internal/component/projectile.go
package component

import "go-maze-absorb/internal/types"

// Bullet — вражеская пуля. Двигается на Dir*Speed пикселей за кадр,
// физика её не трогает.
type Bullet struct {
	DirX, DirY int // каждая компонента из {-1, 0, 1}
	Speed      float64
	Owner      types.EntityID // враг-стрелок; к моменту попадания может уже не существовать
}
