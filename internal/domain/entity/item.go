package entity

import "fmt"

// ItemType represents the kind of pickup
type ItemType int

const (
	ItemRupee ItemType = iota
	ItemHeart
)

func (t ItemType) String() string {
	switch t {
	case ItemRupee:
		return "rupee"
	case ItemHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// Item represents a pickup lying on the map.
// A collected item is inert.
type Item struct {
	ID        string
	Type      ItemType
	Position  Position
	Collected bool
}

// ItemID returns the stable id for the item generated in slot i
func ItemID(i int) string {
	return fmt.Sprintf("item-%d", i)
}

// NewItem creates an uncollected item
func NewItem(id string, itemType ItemType, pos Position) Item {
	return Item{ID: id, Type: itemType, Position: pos}
}
