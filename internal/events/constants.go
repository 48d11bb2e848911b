package events

const (
	// Attribute events
	EventTypeAttributeChanged        EventType = "attribute_changed"
	EventTypeInitialAttributeChanged EventType = "initial_attribute_changed"

	// Liveness events
	EventTypeCharacterDied    EventType = "character_died"
	EventTypeCharacterRevived EventType = "character_revived"

	// Inventory events
	EventTypeItemAdded   EventType = "item_added"
	EventTypeItemRemoved EventType = "item_removed"
)

// Priority levels for listener ordering
const (
	PriorityRules        = 0   // game rules reacting to the change
	PriorityDefault      = 100 // general subscribers
	PriorityPresentation = 300 // UI refresh, logging
)
