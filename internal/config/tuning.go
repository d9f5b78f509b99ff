// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Tuning — параметры, которые можно переопределить без пересборки
// через .env файл или переменные окружения MAZE_*.
type Tuning struct {
	PlayerStartSize float64
	EnemyTarget     int
	FireRateMs      int
	BulletSpeed     float64
	Seed            int64 // 0 — сид от текущего времени
	WindowWidth     int
	WindowHeight    int
	Audio           bool
	PprofAddr       string // пусто — pprof не поднимается
}

// DefaultTuning возвращает значения из констант пакета.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerStartSize: PlayerStartSize,
		EnemyTarget:     EnemyTargetCount,
		FireRateMs:      EnemyFireRate,
		BulletSpeed:     BulletSpeed,
		Seed:            0,
		WindowWidth:     ScreenWidth,
		WindowHeight:    ScreenHeight,
		Audio:           true,
	}
}

// LoadTuning читает необязательный .env файл по пути path, затем
// переменные окружения. Отсутствующий файл не ошибка.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return t, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	var err error
	if t.PlayerStartSize, err = envFloat("MAZE_PLAYER_START_SIZE", t.PlayerStartSize); err != nil {
		return t, err
	}
	if t.EnemyTarget, err = envInt("MAZE_ENEMY_TARGET", t.EnemyTarget); err != nil {
		return t, err
	}
	if t.FireRateMs, err = envInt("MAZE_FIRE_RATE_MS", t.FireRateMs); err != nil {
		return t, err
	}
	if t.BulletSpeed, err = envFloat("MAZE_BULLET_SPEED", t.BulletSpeed); err != nil {
		return t, err
	}
	if t.WindowWidth, err = envInt("MAZE_WINDOW_WIDTH", t.WindowWidth); err != nil {
		return t, err
	}
	if t.WindowHeight, err = envInt("MAZE_WINDOW_HEIGHT", t.WindowHeight); err != nil {
		return t, err
	}
	if t.Audio, err = envBool("MAZE_AUDIO", t.Audio); err != nil {
		return t, err
	}
	if addr, ok := os.LookupEnv("MAZE_PPROF_ADDR"); ok {
		t.PprofAddr = addr
	}
	seed, err := envInt("MAZE_SEED", int(t.Seed))
	if err != nil {
		return t, err
	}
	t.Seed = int64(seed)

	return t, t.Validate()
}

// Validate отбрасывает значения, при которых игра теряет смысл.
func (t Tuning) Validate() error {
	switch {
	case t.PlayerStartSize < PlayerMinSize:
		return fmt.Errorf("player start size %v is below %v", t.PlayerStartSize, PlayerMinSize)
	case t.EnemyTarget < 0:
		return fmt.Errorf("enemy target %d is negative", t.EnemyTarget)
	case t.FireRateMs <= 0:
		return fmt.Errorf("fire rate %dms must be positive", t.FireRateMs)
	case t.WindowWidth <= 2*EnemySpawnInset || t.WindowHeight <= 2*EnemySpawnInset:
		return fmt.Errorf("window %dx%d is too small", t.WindowWidth, t.WindowHeight)
	case t.WindowWidth > WorldMaxWidth || t.WindowHeight > WorldMaxHeight:
		return fmt.Errorf("window %dx%d is larger than %dx%d", t.WindowWidth, t.WindowHeight, WorldMaxWidth, WorldMaxHeight)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func envFloat(key string, def float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return v, nil
}
