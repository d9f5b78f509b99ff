// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-maze-absorb/internal/audio"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/event"
	"go-maze-absorb/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout: логический размер совпадает с окном, мир следует за ним.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	tuning, err := config.LoadTuning(".env")
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("tuning: %+v", tuning)

	if tuning.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(tuning.PprofAddr, nil))
		}()
	}

	var hooks []func(*event.Dispatcher)
	if tuning.Audio {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sounds.Cleanup()
			hooks = append(hooks, sounds.Subscribe)
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, tuning, hooks...)) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, tuning, hooks...)) // Устанавливаем состояние меню
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(tuning.WindowWidth, tuning.WindowHeight)
	ebiten.SetWindowTitle("Maze Absorb")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
