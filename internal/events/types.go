package events

import "github.com/KirkDiggler/character-core/internal/domain/shared"

// EventType names a kind of character state change
type EventType string

// Event is the base interface for all character events
type Event interface {
	GetType() EventType
	GetCharacterID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides the common fields of every event
type BaseEvent struct {
	Type        EventType
	CharacterID string
	Cancelled   bool
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetCharacterID() string { return e.CharacterID }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// AttributeChangedEvent is emitted after a current value or a cap changes.
// Old and New refer to the value named by Type: the current value for
// EventTypeAttributeChanged, the cap for EventTypeInitialAttributeChanged.
type AttributeChangedEvent struct {
	BaseEvent
	Attribute shared.Attribute
	Old       int
	New       int
	Current   int
	Cap       int
}

// LivenessChangedEvent is emitted only when alive flips
type LivenessChangedEvent struct {
	BaseEvent
	Alive bool
}

// InventoryChangedEvent is emitted after a stack is added, merged, reduced or removed
type InventoryChangedEvent struct {
	BaseEvent
	ItemName        string
	ItemDescription string
	Delta           int
	Remaining       int
	// Removed is set when the stack reached zero and left the inventory
	Removed bool
}
