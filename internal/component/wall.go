// internal/component/wall.go
package component

// Wall — статический блок лабиринта
type Wall struct {
	Row, Col int
}
