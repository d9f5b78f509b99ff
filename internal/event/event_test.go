package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(GameOver, ListenerFunc(func(Event) { order = append(order, "a") }))
	d.Subscribe(GameOver, ListenerFunc(func(Event) { order = append(order, "b") }))
	d.Subscribe(PlayerHit, ListenerFunc(func(Event) { order = append(order, "other") }))

	d.Dispatch(Event{Type: GameOver})
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	first, second := &recorder{}, &recorder{}
	d.Subscribe(FireToggled, first)
	d.Subscribe(FireToggled, second)
	d.Unsubscribe(FireToggled, first)

	d.Dispatch(Event{Type: FireToggled, Data: false})
	assert.Empty(t, first.got)
	assert.Len(t, second.got, 1)
	assert.Equal(t, false, second.got[0].Data)
}

func TestUnsubscribeIgnoresFuncs(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	f := ListenerFunc(func(Event) { calls++ })
	d.Subscribe(PlayerHit, f)
	d.Unsubscribe(PlayerHit, f)
	d.Dispatch(Event{Type: PlayerHit})
	assert.Equal(t, 1, calls)
}
