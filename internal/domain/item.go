package domain

import (
	"errors"
	"time"
)

// Common validation errors for Item
var (
	ErrEmptyItemName = errors.New("item name cannot be empty")
)

// Item is the managed catalog entity. The ID and CreatedAt fields are
// assigned by the store on insert and never change afterwards; only
// Name is mutable.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewItem creates an Item with the given name, ready to be persisted.
// ID and CreatedAt are left zero for the store to assign.
// Returns an error if validation fails.
func NewItem(name string) (*Item, error) {
	item := &Item{
		Name: name,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error if any field fails validation.
func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrEmptyItemName
	}

	return nil
}
