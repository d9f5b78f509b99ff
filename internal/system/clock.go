// internal/system/clock.go
package system

import (
	"slices"

	"go-maze-absorb/internal/component"
)

type timedEvent struct {
	delay    float64 // мс
	elapsed  float64
	loop     bool
	callback func()
}

// Clock — планировщик отложенных и повторяющихся событий, тикается
// из того же кадра, что и остальные системы. Потоков не создаёт.
type Clock struct {
	next   component.TimerHandle
	events map[component.TimerHandle]*timedEvent
	paused bool
}

func NewClock() *Clock {
	return &Clock{
		next:   1,
		events: make(map[component.TimerHandle]*timedEvent),
	}
}

// AddEvent регистрирует событие через delayMs миллисекунд. При loop=true
// событие повторяется каждые delayMs, пока его не отменят.
func (c *Clock) AddEvent(delayMs float64, loop bool, callback func()) component.TimerHandle {
	if delayMs <= 0 {
		delayMs = 1
	}
	h := c.next
	c.next++
	c.events[h] = &timedEvent{delay: delayMs, loop: loop, callback: callback}
	return h
}

// Cancel снимает событие. Возвращает false, если такого нет.
func (c *Clock) Cancel(h component.TimerHandle) bool {
	if _, ok := c.events[h]; !ok {
		return false
	}
	delete(c.events, h)
	return true
}

// Len — число живых событий
func (c *Clock) Len() int { return len(c.events) }

func (c *Clock) Pause()       { c.paused = true }
func (c *Clock) Paused() bool { return c.paused }

// Tick продвигает время на dtMs и вызывает созревшие события, каждое
// не больше одного раза. Колбэк может отменять и добавлять события,
// в том числе себя.
func (c *Clock) Tick(dtMs float64) {
	if c.paused || dtMs <= 0 {
		return
	}
	handles := make([]component.TimerHandle, 0, len(c.events))
	for h := range c.events {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	for _, h := range handles {
		ev, ok := c.events[h]
		if !ok {
			continue
		}
		ev.elapsed += dtMs
		if ev.elapsed < ev.delay {
			continue
		}
		// не больше одного срабатывания за тик, остаток переносится на следующий
		ev.elapsed -= ev.delay
		if !ev.loop {
			delete(c.events, h)
		}
		ev.callback()
		if c.paused {
			return
		}
	}
}
