package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/character-core/internal/config"
	"github.com/KirkDiggler/character-core/internal/domain/character"
	"github.com/KirkDiggler/character-core/internal/events"
)

var defaultScript = []string{
	"damage:Vitality:4",
	"add:Potion:Restores vitality:2",
	"remove:Potion:Restores vitality:1",
	"heal:Vitality:3",
	"cap:Strength:2",
	"heal:Strength:5",
	"damage:Vitality:100",
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bus := events.NewBus()
	for _, eventType := range []events.EventType{
		events.EventTypeCharacterDied,
		events.EventTypeCharacterRevived,
		events.EventTypeItemAdded,
		events.EventTypeItemRemoved,
	} {
		bus.Subscribe(eventType, &events.ListenerFunc{
			ListenerID:    "sandbox-log",
			ListenerOrder: events.PriorityPresentation,
			Fn: func(e events.Event) error {
				log.Printf("Event %s for %s", e.GetType(), e.GetCharacterID())
				return nil
			},
		})
	}

	player, err := character.New(&character.Config{
		Name:              cfg.Character.Name,
		InitialAttributes: cfg.Character.Attributes,
		Inventory:         cfg.Character.Items(),
		EventBus:          bus,
	})
	if err != nil {
		log.Fatalf("Failed to create character: %v", err)
	}
	log.Printf("Created %s", player)

	script := defaultScript
	if len(os.Args) > 1 {
		script = os.Args[1:]
	}

	steps, err := parseSteps(script)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}

	for _, result := range runSteps(player, steps) {
		log.Println(result)
	}

	snapshot := player.Copy()
	log.Printf("Final state  %s", player)
	log.Printf("Snapshot     %s", snapshot)
}
