// pkg/maze/maze.go
package maze

// Block — стена лабиринта в пикселях, X/Y — центр блока.
type Block struct {
	Row, Col   int
	X, Y, W, H float64
}

// Layout описывает сетку лабиринта.
type Layout struct {
	Rows, Cols int
	Inset      float64 // блок меньше клетки на столько пикселей
}

// IsWall — стена в клетках с чётными строкой и столбцом (шахматный узор)
// и по всему периметру, кроме входа (0,1) и выхода (rows-1, cols-2).
func (l Layout) IsWall(row, col int) bool {
	if row == 0 && col == 1 {
		return false
	}
	if row == l.Rows-1 && col == l.Cols-2 {
		return false
	}
	if row%2 == 0 && col%2 == 0 {
		return true
	}
	return row == 0 || row == l.Rows-1 || col == 0 || col == l.Cols-1
}

// Blocks раскладывает стены по области width x height.
func (l Layout) Blocks(width, height float64) []Block {
	if l.Rows <= 0 || l.Cols <= 0 {
		return nil
	}
	cellW := width / float64(l.Cols)
	cellH := height / float64(l.Rows)
	var blocks []Block
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			if !l.IsWall(row, col) {
				continue
			}
			blocks = append(blocks, Block{
				Row: row,
				Col: col,
				X:   float64(col)*cellW + cellW/2,
				Y:   float64(row)*cellH + cellH/2,
				W:   cellW - l.Inset,
				H:   cellH - l.Inset,
			})
		}
	}
	return blocks
}
