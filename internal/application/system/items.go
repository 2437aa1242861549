package system

import "github.com/younwookim/overworld/internal/domain/entity"

// CheckItemCollection collects every uncollected item on the player's tile and applies its effect.
// Hearts heal one point up to maxHealth; rupees are uncapped.
func CheckItemCollection(p entity.Player, items []entity.Item, maxHealth int) (entity.Player, []entity.Item) {
	updated := make([]entity.Item, len(items))
	for i, item := range items {
		if !item.Collected && item.Position == p.Position {
			switch item.Type {
			case entity.ItemHeart:
				p.Health = min(p.Health+1, maxHealth)
			case entity.ItemRupee:
				p.Rupees++
			}
			item.Collected = true
		}
		updated[i] = item
	}
	return p, updated
}

// PruneCollected drops collected items
func PruneCollected(items []entity.Item) []entity.Item {
	kept := make([]entity.Item, 0, len(items))
	for _, item := range items {
		if !item.Collected {
			kept = append(kept, item)
		}
	}
	return kept
}
