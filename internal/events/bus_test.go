package events_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/character-core/internal/domain/shared"
	"github.com/KirkDiggler/character-core/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListener(id string, priority int, fn func(events.Event) error) *events.ListenerFunc {
	return &events.ListenerFunc{ListenerID: id, ListenerOrder: priority, Fn: fn}
}

func TestEventBus_DeliversTypedEvent(t *testing.T) {
	bus := events.NewBus()

	var received *events.AttributeChangedEvent
	bus.Subscribe(events.EventTypeAttributeChanged, newListener("capture", events.PriorityDefault, func(e events.Event) error {
		ev, ok := e.(*events.AttributeChangedEvent)
		require.True(t, ok)
		received = ev
		return nil
	}))

	err := bus.Emit(&events.AttributeChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAttributeChanged, CharacterID: "char-1"},
		Attribute: shared.AttributeVitality,
		Old:       10,
		New:       5,
		Current:   5,
		Cap:       10,
	})
	require.NoError(t, err)

	require.NotNil(t, received)
	assert.Equal(t, "char-1", received.GetCharacterID())
	assert.Equal(t, 5, received.New)
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	bus.Subscribe(events.EventTypeItemAdded, newListener("ui", events.PriorityPresentation, record("ui")))
	bus.Subscribe(events.EventTypeItemAdded, newListener("rules", events.PriorityRules, record("rules")))
	bus.Subscribe(events.EventTypeItemAdded, newListener("default", events.PriorityDefault, record("default")))

	err := bus.Emit(&events.InventoryChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeItemAdded},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"rules", "default", "ui"}, executionOrder)
}

func TestEventBus_CancelStopsPropagation(t *testing.T) {
	bus := events.NewBus()

	secondCalled := false
	bus.Subscribe(events.EventTypeCharacterDied, newListener("first", 0, func(e events.Event) error {
		e.Cancel()
		return nil
	}))
	bus.Subscribe(events.EventTypeCharacterDied, newListener("second", 1, func(events.Event) error {
		secondCalled = true
		return nil
	}))

	ev := &events.LivenessChangedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeCharacterDied}}
	require.NoError(t, bus.Emit(ev))

	assert.True(t, ev.IsCancelled())
	assert.False(t, secondCalled)
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus()
	boom := errors.New("boom")

	bus.Subscribe(events.EventTypeItemRemoved, newListener("broken", 0, func(events.Event) error {
		return boom
	}))

	err := bus.Emit(&events.InventoryChangedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeItemRemoved}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "listener broken failed")
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()
	noop := func(events.Event) error { return nil }

	bus.Subscribe(events.EventTypeItemAdded, newListener("a", 0, noop))
	bus.Subscribe(events.EventTypeItemAdded, newListener("b", 1, noop))
	bus.Subscribe(events.EventTypeItemRemoved, newListener("c", 0, noop))
	require.Equal(t, 2, bus.ListenerCount(events.EventTypeItemAdded))

	bus.Unsubscribe(events.EventTypeItemAdded, "a")
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeItemAdded))

	bus.Unsubscribe(events.EventTypeItemAdded, "missing")
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeItemAdded))

	bus.Clear()
	assert.Equal(t, 0, bus.ListenerCount(events.EventTypeItemAdded))
	assert.Equal(t, 0, bus.ListenerCount(events.EventTypeItemRemoved))
}

func TestEventBus_EmitWithoutListeners(t *testing.T) {
	bus := events.NewBus()
	assert.NoError(t, bus.Emit(&events.LivenessChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeCharacterRevived},
	}))
}
