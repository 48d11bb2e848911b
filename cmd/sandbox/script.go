package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/character-core/internal/domain/character"
	"github.com/KirkDiggler/character-core/internal/domain/item"
	"github.com/KirkDiggler/character-core/internal/domain/shared"
	rpgerr "github.com/KirkDiggler/character-core/internal/errors"
)

type action string

const (
	actionDamage action = "damage"
	actionHeal   action = "heal"
	actionCap    action = "cap"
	actionAdd    action = "add"
	actionRemove action = "remove"
)

// step is one scripted call into the character, e.g. "damage:Vitality:4"
// or "add:Potion:Restores vitality:2"
type step struct {
	action    action
	attribute shared.Attribute
	amount    float64
	item      *item.Item
}

func parseSteps(raw []string) ([]step, error) {
	steps := make([]step, 0, len(raw))
	for _, r := range raw {
		s, err := parseStep(r)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseStep(raw string) (step, error) {
	parts := strings.Split(raw, ":")
	act := action(strings.ToLower(strings.TrimSpace(parts[0])))

	switch act {
	case actionDamage, actionHeal, actionCap:
		if len(parts) != 3 {
			return step{}, rpgerr.Validationf("step %q: expected %s:attribute:amount", raw, act)
		}
		attribute, ok := shared.ParseAttribute(parts[1])
		if !ok {
			return step{}, rpgerr.Validationf("step %q: unknown attribute %q", raw, parts[1])
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return step{}, rpgerr.WrapWithCode(err, rpgerr.CodeValidation, "step "+strconv.Quote(raw))
		}
		if act == actionDamage {
			amount = -amount
		}
		return step{action: act, attribute: attribute, amount: amount}, nil

	case actionAdd, actionRemove:
		if len(parts) != 4 {
			return step{}, rpgerr.Validationf("step %q: expected %s:name:description:quantity", raw, act)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			return step{}, rpgerr.WrapWithCode(err, rpgerr.CodeValidation, "step "+strconv.Quote(raw))
		}
		return step{action: act, item: item.New(parts[1], parts[2], qty)}, nil
	}

	return step{}, rpgerr.Validationf("step %q: unknown action %q", raw, act)
}

// runSteps applies each step in order and describes the outcome
func runSteps(c *character.Character, steps []step) []string {
	results := make([]string, 0, len(steps))

	for _, s := range steps {
		switch s.action {
		case actionDamage, actionHeal:
			value := c.ModifyAttribute(s.attribute, s.amount)
			results = append(results, fmt.Sprintf("%s %s %v -> %d (alive=%t)",
				s.action, s.attribute, s.amount, value, c.Alive()))
		case actionCap:
			current := c.ModifyInitialAttribute(s.attribute, s.amount)
			results = append(results, fmt.Sprintf("cap %s %v -> cap %d, current %d",
				s.attribute, s.amount, c.InitialAttribute(s.attribute), current))
		case actionAdd:
			inventory := c.AddItemToInventory(s.item)
			results = append(results, fmt.Sprintf("add %s -> %d stacks", s.item, len(inventory)))
		case actionRemove:
			inventory, err := c.RemoveItem(s.item)
			if err != nil {
				results = append(results, describeFailedRemoval(s.item, err))
				continue
			}
			results = append(results, fmt.Sprintf("remove %s -> %d stacks", s.item, len(inventory)))
		}
	}

	return results
}

func describeFailedRemoval(query *item.Item, err error) string {
	line := fmt.Sprintf("remove %s failed (%s): %v", query, rpgerr.GetCode(err), err)
	if held, ok := rpgerr.GetMeta(err)["held"]; ok {
		line += fmt.Sprintf(" [held=%v]", held)
	}
	return line
}
