// internal/component/game_state.go
package component

// Phase — фаза игры. Переход только Playing -> GameOver.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// GameState — глобальные флаги игры
type GameState struct {
	Phase       Phase
	FireEnabled bool // разрешена ли стрельба врагов
}

// Viewport — текущий размер видимой области
type Viewport struct {
	W, H float64
}
