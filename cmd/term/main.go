// cmd/term/main.go
package main

import (
	"log"
	"time"

	"go-maze-absorb/internal/app"
	"go-maze-absorb/internal/config"
	"go-maze-absorb/internal/term"

	"github.com/gdamore/tcell/v2"
)

const frameTime = 16 * time.Millisecond // ~60 FPS

func main() {
	tuning, err := config.LoadTuning(".env")
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Мир живёт в пикселях окна по умолчанию, терминал только масштабирует.
	game := app.NewGame(tuning, float64(tuning.WindowWidth), float64(tuning.WindowHeight))
	keys := term.NewKeyHold(term.HoldWindow)
	cols, rows := screen.Size()
	view := &term.View{Proj: term.Projection{Cols: cols, Rows: rows}}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	last := time.Now()
	// tcell шлёт события, пока кнопка мыши зажата; переключаем по фронту.
	mouseDown := false

	for {
		select {
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok && keys.Press(key.Key(), time.Now()) {
				continue
			}
			if mouse, ok := ev.(*tcell.EventMouse); ok {
				x, y := mouse.Position()
				pressed := mouse.Buttons()&tcell.Button1 != 0
				if pressed && !mouseDown && term.ButtonHit(x, y, game.FireButtonText()) {
					game.ToggleFire()
				}
				mouseDown = pressed
				continue
			}
			switch term.Classify(ev) {
			case term.ActionQuit:
				return
			case term.ActionToggleFire:
				game.ToggleFire()
			case term.ActionResize:
				screen.Sync()
				view.Proj.Cols, view.Proj.Rows = screen.Size()
			}
		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			last = now
			game.SetInput(keys.Input(now))
			game.Update(deltaTime)
			view.Draw(screen, game.ECS, game.Readout(), game.FireButtonText())
			screen.Show()
		}
	}
}
