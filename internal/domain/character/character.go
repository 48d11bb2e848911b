package character

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/character-core/internal/domain/item"
	"github.com/KirkDiggler/character-core/internal/domain/shared"
	rpgerr "github.com/KirkDiggler/character-core/internal/errors"
	"github.com/KirkDiggler/character-core/internal/events"
	"github.com/KirkDiggler/character-core/internal/uuid"
)

// EventPublisher receives character state changes. *events.Bus satisfies it.
type EventPublisher interface {
	Emit(event events.Event) error
}

// Character is a playable entity with capped attributes and an inventory of
// item stacks. A Character is not safe for concurrent mutation.
type Character struct {
	id   string
	Name string

	// initialAttributes are the caps, attributes the current values; both
	// are indexed by shared.Attribute
	initialAttributes []int
	attributes        []int

	inventory []*item.Item
	alive     bool

	uuidGenerator uuid.Generator
	publisher     EventPublisher
}

// Config holds everything needed to build a character
type Config struct {
	Name string

	// InitialAttributes holds one starting value per shared.Attribute in
	// index order. The character starts at full, current equal to cap.
	InitialAttributes []int

	// Inventory is taken as-is; the character owns the slice and its items
	// from here on.
	Inventory []*item.Item

	UUIDGenerator uuid.Generator // Optional, google uuid if nil
	EventBus      EventPublisher // Optional, no events if nil
}

// New creates a character from cfg
func New(cfg *Config) (*Character, error) {
	if cfg == nil {
		return nil, rpgerr.InvalidArgument("character config is required")
	}

	if len(cfg.InitialAttributes) != shared.AttributeCount {
		return nil, rpgerr.InvalidArgumentf("expected %d initial attributes, got %d",
			shared.AttributeCount, len(cfg.InitialAttributes)).
			WithMeta("character_name", cfg.Name)
	}

	for i, value := range cfg.InitialAttributes {
		if value < 0 || value > MaxAttributeValue {
			return nil, rpgerr.InvalidArgumentf("initial %s must be between 0 and %d: %d",
				shared.Attribute(i), MaxAttributeValue, value).
				WithMeta("character_name", cfg.Name).
				WithMeta("attribute", shared.Attribute(i).String())
		}
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return newCharacter(cfg.Name, cfg.InitialAttributes, cfg.Inventory, generator, cfg.EventBus), nil
}

func newCharacter(name string, initialAttributes []int, inventory []*item.Item, generator uuid.Generator, publisher EventPublisher) *Character {
	if inventory == nil {
		inventory = []*item.Item{}
	}

	c := &Character{
		id:                generator.New(),
		Name:              name,
		initialAttributes: make([]int, 0, len(initialAttributes)),
		attributes:        make([]int, 0, len(initialAttributes)),
		inventory:         inventory,
		uuidGenerator:     generator,
		publisher:         publisher,
	}

	for _, value := range initialAttributes {
		c.initialAttributes = append(c.initialAttributes, value)
		c.attributes = append(c.attributes, value)
	}

	c.CheckAlive()
	return c
}

// ID returns the identifier assigned at construction
func (c *Character) ID() string {
	return c.id
}

// Alive reports the liveness derived at the last mutation
func (c *Character) Alive() bool {
	return c.alive
}

// Attributes returns a copy of the current attribute values
func (c *Character) Attributes() []int {
	return slices.Clone(c.attributes)
}

// InitialAttributes returns a copy of the attribute caps
func (c *Character) InitialAttributes() []int {
	return slices.Clone(c.initialAttributes)
}

// Inventory returns the character's inventory slice. Callers must not
// modify it; use AddItemToInventory and RemoveItem.
func (c *Character) Inventory() []*item.Item {
	return c.inventory
}

// Copy returns a new character with a fresh ID, the same caps, the same
// current values and a deep copy of the inventory.
func (c *Character) Copy() *Character {
	inventory := make([]*item.Item, 0, len(c.inventory))
	for _, it := range c.inventory {
		inventory = append(inventory, it.Copy())
	}

	copied := newCharacter(c.Name, slices.Clone(c.initialAttributes), inventory, c.uuidGenerator, c.publisher)
	copy(copied.attributes, c.attributes)
	copied.CheckAlive()

	return copied
}

func (c *Character) String() string {
	return fmt.Sprintf("%s [%s] alive=%t attributes=%v/%v items=%d",
		c.Name, c.id, c.alive, c.attributes, c.initialAttributes, len(c.inventory))
}
