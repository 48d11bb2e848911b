package testutils

import (
	"github.com/KirkDiggler/character-core/internal/domain/character"
	"github.com/KirkDiggler/character-core/internal/domain/item"
	"github.com/KirkDiggler/character-core/internal/domain/shared"
)

// CreateTestInventory returns three distinct stacks with quantities 1, 5 and 10
func CreateTestInventory() []*item.Item {
	return []*item.Item{
		item.New("Test Item 1", "Test Item 1 Desc", 1),
		item.New("Test Item 2", "Test Item 2 Desc", 5),
		item.New("Test Item 3", "Test Item 3 Desc", 10),
	}
}

// CreateTestAttributes returns a full attribute set with every cap at value
func CreateTestAttributes(value int) []int {
	attributes := make([]int, shared.AttributeCount)
	for i := range attributes {
		attributes[i] = value
	}
	return attributes
}

// CreateTestCharacter builds a character from explicit parts and panics on
// invalid input
func CreateTestCharacter(name string, attributes []int, inventory []*item.Item) *character.Character {
	c, err := character.New(&character.Config{
		Name:              name,
		InitialAttributes: attributes,
		Inventory:         inventory,
	})
	if err != nil {
		panic(err)
	}
	return c
}

// CreateTestPlayer returns "player" with every attribute at 10 and the test inventory
func CreateTestPlayer() *character.Character {
	return CreateTestCharacter("player", CreateTestAttributes(10), CreateTestInventory())
}
