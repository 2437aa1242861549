package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/overworld/internal/domain/entity"
)

func TestCheckItemCollection(t *testing.T) {
	pos := entity.Position{X: 2, Y: 2}

	tests := []struct {
		name       string
		health     int
		items      []entity.Item
		wantHealth int
		wantRupees int
	}{
		{
			name:       "heart heals one",
			health:     3,
			items:      []entity.Item{entity.NewItem("h", entity.ItemHeart, pos)},
			wantHealth: 4,
		},
		{
			name:       "heart capped at max",
			health:     5,
			items:      []entity.Item{entity.NewItem("h", entity.ItemHeart, pos)},
			wantHealth: 5,
		},
		{
			name:   "stacked hearts respect the running cap",
			health: 4,
			items: []entity.Item{
				entity.NewItem("h1", entity.ItemHeart, pos),
				entity.NewItem("h2", entity.ItemHeart, pos),
			},
			wantHealth: 5,
		},
		{
			name:   "rupees are uncapped",
			health: 3,
			items: []entity.Item{
				entity.NewItem("r1", entity.ItemRupee, pos),
				entity.NewItem("r2", entity.ItemRupee, pos),
				entity.NewItem("r3", entity.ItemRupee, pos),
			},
			wantHealth: 3,
			wantRupees: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entity.NewPlayer(pos, tt.health)

			p, items := CheckItemCollection(p, tt.items, 5)

			assert.Equal(t, tt.wantHealth, p.Health)
			assert.Equal(t, tt.wantRupees, p.Rupees)
			for _, item := range items {
				assert.True(t, item.Collected, item.ID)
			}
		})
	}
}

func TestCheckItemCollection_IgnoresOtherCellsAndCollected(t *testing.T) {
	p := entity.NewPlayer(entity.Position{X: 2, Y: 2}, 3)

	taken := entity.NewItem("taken", entity.ItemRupee, entity.Position{X: 2, Y: 2})
	taken.Collected = true
	items := []entity.Item{
		taken,
		entity.NewItem("far", entity.ItemRupee, entity.Position{X: 3, Y: 2}),
	}

	p, updated := CheckItemCollection(p, items, 5)

	assert.Equal(t, 0, p.Rupees)
	assert.True(t, updated[0].Collected)
	assert.False(t, updated[1].Collected)
}

func TestPruneCollected(t *testing.T) {
	kept := entity.NewItem("kept", entity.ItemHeart, entity.Position{})
	gone := entity.NewItem("gone", entity.ItemHeart, entity.Position{})
	gone.Collected = true

	assert.Equal(t, []entity.Item{kept}, PruneCollected([]entity.Item{kept, gone}))
}
