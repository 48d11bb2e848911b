// Package item models a stack of a fungible game item.
package item

import (
	"fmt"
	"math"
)

// Item is one inventory stack. Two items are the same item when their name
// and description match exactly; quantity plays no part in identity.
type Item struct {
	Name        string
	Description string

	quantity int
}

// New creates a stack. Quantities below 1 are raised to 1.
func New(name, description string, quantity int) *Item {
	return &Item{
		Name:        name,
		Description: description,
		quantity:    max(quantity, 1),
	}
}

// NewSingle creates a stack of one
func NewSingle(name, description string) *Item {
	return New(name, description, 1)
}

// Quantity returns the number of units in the stack
func (i *Item) Quantity() int {
	return i.quantity
}

// IsSameItem compares name and description, ignoring quantity
func (i *Item) IsSameItem(other *Item) bool {
	if i == nil || other == nil {
		return false
	}
	return i.Name == other.Name && i.Description == other.Description
}

// ModifyQuantity adds delta to the stack. A delta that would take the
// quantity below zero is rejected and nothing changes. Zero is allowed.
// Increases saturate at math.MaxInt.
func (i *Item) ModifyQuantity(delta int) bool {
	if delta > 0 && i.quantity > math.MaxInt-delta {
		i.quantity = math.MaxInt
		return true
	}
	if i.quantity+delta < 0 {
		return false
	}
	i.quantity += delta
	return true
}

// Copy returns an independent stack with the same fields
func (i *Item) Copy() *Item {
	return &Item{
		Name:        i.Name,
		Description: i.Description,
		quantity:    i.quantity,
	}
}

func (i *Item) String() string {
	return fmt.Sprintf("%s x%d", i.Name, i.quantity)
}
