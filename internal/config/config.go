// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// Размер пространства коллизий; окно больше этого не растягивается.
	WorldMaxWidth  = 4096
	WorldMaxHeight = 4096
	CollisionCell  = 32

	PlayerStartSize = 50.0
	PlayerMinSize   = 10.0
	PlayerBaseSpeed = 600.0 // делится на размер игрока
	EnemyBaseSpeed  = 200.0 // делится на размер врага
	MinSpeed        = 300.0
	MaxSpeed        = 900.0

	EnemyTargetCount  = 10
	EnemyMinSize      = 10
	EnemyMaxSize      = 40
	EnemyDisplayScale = 10 // сторона спрайта врага = size * 10
	EnemySpawnInset   = 50

	EnemyFireRate = 1000 // мс
	BulletSpeed   = 5.0  // пикселей за кадр
	BulletRadius  = 5.0
	BulletDamage  = 5.0

	MazeRows      = 9
	MazeCols      = 9
	MazeWallInset = 5 // блок меньше клетки на столько пикселей

	HUDMarginX       = 10
	SizeReadoutY     = 10
	ToggleButtonY    = 40
	ToggleButtonPadX = 10
	ToggleButtonPadY = 5
	ClickCooldown    = 150 // мс

	GameOverText = "Game Over!"
)

var (
	BackgroundColor   = color.RGBA{24, 28, 40, 255}
	WallColor         = color.RGBA{136, 136, 136, 204} // 0x888888, alpha 0.8
	PlayerColor       = color.RGBA{80, 200, 120, 255}
	EnemyColor        = color.RGBA{220, 60, 60, 200}
	BulletColor       = color.RGBA{255, 255, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	ButtonColor       = color.RGBA{0, 0, 255, 255}
	ButtonOffColor    = color.RGBA{70, 70, 110, 255}
	GameOverTintColor = color.RGBA{0, 0, 0, 120}
)
