// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"go-maze-absorb/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager проигрывает короткие синтезированные эффекты на игровые
// события. Без Initialize все вызовы молча ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize поднимает устройство вывода. Ошибка возвращается как есть,
// вызывающий решает, играть ли без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит всё, что играет.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted включает и выключает эффекты без закрытия устройства.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Subscribe подписывает менеджер на события, у которых есть звук.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	for _, et := range []event.EventType{event.EnemyAbsorbed, event.PlayerHit, event.GameOver, event.FireToggled} {
		d.Subscribe(et, sm)
	}
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if s := EffectFor(e); s != nil {
		sm.play(s)
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// EffectFor подбирает эффект к событию; nil — событие беззвучное.
func EffectFor(e event.Event) beep.Streamer {
	switch e.Type {
	case event.EnemyAbsorbed:
		// чем крупнее добыча, тем ниже тон
		freq := 880.0
		if data, ok := e.Data.(event.AbsorbData); ok && data.EnemySize > 0 {
			freq = 440 + 4400/float64(data.EnemySize)
		}
		return beep.Take(sampleRate.N(120*time.Millisecond), NewChirpGenerator(sampleRate, freq, freq*1.5))
	case event.PlayerHit:
		return beep.Take(sampleRate.N(150*time.Millisecond), NewBuzzGenerator(sampleRate, 120))
	case event.GameOver:
		return beep.Take(sampleRate.N(900*time.Millisecond), NewChirpGenerator(sampleRate, 440, 55))
	case event.FireToggled:
		return beep.Take(sampleRate.N(40*time.Millisecond), NewChirpGenerator(sampleRate, 1200, 1200))
	}
	return nil
}
