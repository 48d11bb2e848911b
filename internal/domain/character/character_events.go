package character

import (
	"log"

	"github.com/KirkDiggler/character-core/internal/events"
)

// emit publishes event when a publisher is configured. Character operations
// always succeed, so listener failures are only logged.
func (c *Character) emit(event events.Event) {
	if c.publisher == nil {
		return
	}

	if err := c.publisher.Emit(event); err != nil {
		log.Printf("Character %s (%s): failed to publish %s: %v", c.Name, c.id, event.GetType(), err)
	}
}
