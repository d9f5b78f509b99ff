// internal/term/input.go
package term

import (
	"time"

	"go-maze-absorb/internal/component"

	"github.com/gdamore/tcell/v2"
)

// HoldWindow — сколько стрелка считается зажатой после последнего
// события. Терминал не присылает отпускание клавиши, только автоповтор.
const HoldWindow = 180 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// KeyHold превращает поток нажатий в состояние "зажато".
type KeyHold struct {
	window time.Duration
	last   [dirCount]time.Time
}

func NewKeyHold(window time.Duration) *KeyHold {
	return &KeyHold{window: window}
}

// Press отмечает стрелку. false — клавиша не стрелка.
func (k *KeyHold) Press(key tcell.Key, now time.Time) bool {
	var d direction
	switch key {
	case tcell.KeyLeft:
		d = dirLeft
	case tcell.KeyRight:
		d = dirRight
	case tcell.KeyUp:
		d = dirUp
	case tcell.KeyDown:
		d = dirDown
	default:
		return false
	}
	k.last[d] = now
	return true
}

// Input — состояние стрелок на момент now.
func (k *KeyHold) Input(now time.Time) component.Input {
	held := func(d direction) bool {
		t := k.last[d]
		return !t.IsZero() && now.Sub(t) <= k.window
	}
	return component.Input{
		Left:  held(dirLeft),
		Right: held(dirRight),
		Up:    held(dirUp),
		Down:  held(dirDown),
	}
}

// Action — что сделать с событием терминала.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleFire
	ActionResize
)

// Classify разбирает клавиши, не относящиеся к движению.
func Classify(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return ActionQuit
			case 'f', 'F':
				return ActionToggleFire
			}
		}
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}
