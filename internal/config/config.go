package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/character-core/internal/domain/character"
	"github.com/KirkDiggler/character-core/internal/domain/item"
	"github.com/KirkDiggler/character-core/internal/domain/shared"
	rpgerr "github.com/KirkDiggler/character-core/internal/errors"
)

// Config holds all configuration for the sandbox
type Config struct {
	Character CharacterConfig
}

// CharacterConfig describes the character the sandbox seeds
type CharacterConfig struct {
	Name       string
	Attributes []int // indexed by shared.Attribute
	Inventory  []ItemConfig
}

// ItemConfig is one starting inventory stack
type ItemConfig struct {
	Name        string
	Description string
	Quantity    int
}

// Item builds the stack described by the config
func (c ItemConfig) Item() *item.Item {
	return item.New(c.Name, c.Description, c.Quantity)
}

// Items builds every configured stack
func (c CharacterConfig) Items() []*item.Item {
	items := make([]*item.Item, 0, len(c.Inventory))
	for _, ic := range c.Inventory {
		items = append(items, ic.Item())
	}
	return items
}

const defaultAttributeValue = 10

// Load loads configuration from environment variables
func Load() (*Config, error) {
	attributes := make([]int, shared.AttributeCount)
	for _, a := range shared.Attributes {
		key := attributeEnvKey(a)
		value, err := getEnvAsIntOrDefault(key, defaultAttributeValue)
		if err != nil {
			return nil, err
		}
		if value < 0 || value > character.MaxAttributeValue {
			return nil, rpgerr.Validationf("%s must be between 0 and %d", key, character.MaxAttributeValue).
				WithMeta("value", value)
		}
		attributes[a] = value
	}

	inventory, err := parseInventory(os.Getenv("CHARACTER_INVENTORY"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Character: CharacterConfig{
			Name:       getEnvOrDefault("CHARACTER_NAME", "player"),
			Attributes: attributes,
			Inventory:  inventory,
		},
	}

	return cfg, nil
}

// attributeEnvKey maps an attribute to its variable, e.g. CHARACTER_VITALITY
func attributeEnvKey(a shared.Attribute) string {
	return "CHARACTER_" + strings.ToUpper(a.String())
}

// parseInventory reads "name:description:quantity" entries separated by ';'.
// The quantity is optional and defaults to 1.
func parseInventory(raw string) ([]ItemConfig, error) {
	var items []ItemConfig

	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, rpgerr.Validationf("invalid inventory entry %q, expected name:description[:quantity]", entry)
		}

		ic := ItemConfig{
			Name:        strings.TrimSpace(parts[0]),
			Description: strings.TrimSpace(parts[1]),
			Quantity:    1,
		}
		if ic.Name == "" {
			return nil, rpgerr.Validationf("inventory entry %q has no name", entry)
		}

		if len(parts) == 3 {
			qty, err := strconv.Atoi(strings.TrimSpace(parts[2]))
			if err != nil {
				return nil, rpgerr.WrapWithCode(err, rpgerr.CodeValidation,
					"invalid quantity in inventory entry "+strconv.Quote(entry))
			}
			ic.Quantity = qty
		}

		items = append(items, ic)
	}

	return items, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, rpgerr.WrapWithCode(err, rpgerr.CodeValidation, key+" must be an integer").
			WithMeta("value", value)
	}
	return intValue, nil
}
