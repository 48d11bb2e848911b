package character

import (
	"log"
	"math"

	"github.com/KirkDiggler/character-core/internal/domain/shared"
	rpgerr "github.com/KirkDiggler/character-core/internal/errors"
	"github.com/KirkDiggler/character-core/internal/events"
)

// MaxAttributeValue is the largest cap a character accepts. Caps saturate here
// so float arithmetic always converts back to int.
const MaxAttributeValue = math.MaxInt32

// Attribute returns the current value of a
func (c *Character) Attribute(a shared.Attribute) int {
	c.mustHaveAttribute(a)
	return c.attributes[a]
}

// InitialAttribute returns the cap of a
func (c *Character) InitialAttribute(a shared.Attribute) int {
	c.mustHaveAttribute(a)
	return c.initialAttributes[a]
}

// ModifyAttribute adds value, floored, to the current value of a and clamps
// the result to [0, cap]. It returns the new current value.
// It panics if a is not a member of shared.Attribute.
func (c *Character) ModifyAttribute(a shared.Attribute, value float64) int {
	c.mustHaveAttribute(a)

	wasAlive := c.alive
	old := c.attributes[a]
	c.attributes[a] = clampAdd(old, value, 0, c.initialAttributes[a])
	c.CheckAlive()

	if c.attributes[a] != old {
		c.emit(&events.AttributeChangedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeAttributeChanged, CharacterID: c.id},
			Attribute: a,
			Old:       old,
			New:       c.attributes[a],
			Current:   c.attributes[a],
			Cap:       c.initialAttributes[a],
		})
	}
	c.emitLiveness(wasAlive)

	return c.attributes[a]
}

// ModifyInitialAttribute adds value, floored, to the cap of a. The cap never
// drops below zero. The current value is left as it is, even when it now
// exceeds the cap. It returns the current value of a, not the cap.
// It panics if a is not a member of shared.Attribute.
func (c *Character) ModifyInitialAttribute(a shared.Attribute, value float64) int {
	c.mustHaveAttribute(a)

	wasAlive := c.alive
	old := c.initialAttributes[a]
	c.initialAttributes[a] = clampAdd(old, value, 0, MaxAttributeValue)
	c.CheckAlive()

	if c.initialAttributes[a] != old {
		c.emit(&events.AttributeChangedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeInitialAttributeChanged, CharacterID: c.id},
			Attribute: a,
			Old:       old,
			New:       c.initialAttributes[a],
			Current:   c.attributes[a],
			Cap:       c.initialAttributes[a],
		})
	}
	c.emitLiveness(wasAlive)

	return c.attributes[a]
}

// CheckAlive re-derives liveness from Vitality and returns it
func (c *Character) CheckAlive() bool {
	c.alive = c.attributes[shared.AttributeVitality] > 0
	return c.alive
}

func (c *Character) emitLiveness(wasAlive bool) {
	if wasAlive == c.alive {
		return
	}

	eventType := events.EventTypeCharacterRevived
	if !c.alive {
		eventType = events.EventTypeCharacterDied
		log.Printf("Character %s (%s) died", c.Name, c.id)
	} else {
		log.Printf("Character %s (%s) revived", c.Name, c.id)
	}

	c.emit(&events.LivenessChangedEvent{
		BaseEvent: events.BaseEvent{Type: eventType, CharacterID: c.id},
		Alive:     c.alive,
	})
}

func (c *Character) mustHaveAttribute(a shared.Attribute) {
	if !a.IsValid() || int(a) >= len(c.attributes) {
		panic(rpgerr.InvalidArgumentf("attribute index %d out of range", int(a)).
			WithMeta("character_id", c.id))
	}
}

// clampAdd floors delta, adds it to base and clamps into [lo, hi]. The sum
// is taken in float64 so huge or infinite deltas saturate instead of
// overflowing. NaN counts as no change.
func clampAdd(base int, delta float64, lo, hi int) int {
	if math.IsNaN(delta) {
		delta = 0
	}

	sum := float64(base) + math.Floor(delta)
	sum = math.Min(sum, float64(hi))
	sum = math.Max(sum, float64(lo))

	return int(sum)
}
