package config

import (
	"fmt"
	"math"
)

// Default values: a 20x15 map with 5 enemies and 10 items.
const (
	DefaultWidth                = 20
	DefaultHeight               = 15
	DefaultEnemyCount           = 5
	DefaultItemCount            = 10
	DefaultMaxPlacementAttempts = 100
	DefaultMaxMapAttempts       = 10
	DefaultRupeeChance          = 0.7
	DefaultFollowChance         = 0.5

	DefaultPlayerStartHealth = 3
	DefaultPlayerMaxHealth   = 5
	DefaultEnemyHealth       = 1
	DefaultEnemyMoveInterval = 20
	DefaultAttackCooldown    = 20
	DefaultAttackWindowEnd   = 10
	DefaultTickRate          = 60

	DefaultTileSize = 32
)

// DefaultTerrain is the interior terrain distribution
var DefaultTerrain = TerrainConfig{
	Grass:    0.70,
	Tree:     0.10,
	Sand:     0.05,
	Water:    0.10,
	Mountain: 0.05,
}

// Default returns a fully populated configuration
func Default() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Width:                DefaultWidth,
			Height:               DefaultHeight,
			EnemyCount:           DefaultEnemyCount,
			ItemCount:            DefaultItemCount,
			MaxPlacementAttempts: DefaultMaxPlacementAttempts,
			Terrain:              DefaultTerrain,
			RupeeChance:          DefaultRupeeChance,
			FollowChance:         DefaultFollowChance,
			MaxMapAttempts:       DefaultMaxMapAttempts,
		},
		Rules: RulesConfig{
			PlayerStartHealth: DefaultPlayerStartHealth,
			PlayerMaxHealth:   DefaultPlayerMaxHealth,
			EnemyHealth:       DefaultEnemyHealth,
			EnemyMoveInterval: DefaultEnemyMoveInterval,
			AttackCooldown:    DefaultAttackCooldown,
			AttackWindowEnd:   DefaultAttackWindowEnd,
			TickRate:          DefaultTickRate,
		},
		Display: DisplayConfig{
			TileSize: DefaultTileSize,
			Scale:    1,
			Title:    "Overworld",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate rejects configurations the simulation cannot run with
func (c *GameConfig) Validate() error {
	w := c.World
	if w.Width < 3 || w.Height < 3 {
		return fmt.Errorf("world size %dx%d too small: need at least 3x3", w.Width, w.Height)
	}
	if w.EnemyCount < 0 || w.ItemCount < 0 {
		return fmt.Errorf("negative entity count: enemies=%d items=%d", w.EnemyCount, w.ItemCount)
	}
	if w.MaxPlacementAttempts < 1 {
		return fmt.Errorf("maxPlacementAttempts must be positive, got %d", w.MaxPlacementAttempts)
	}
	if w.MaxMapAttempts < 1 {
		return fmt.Errorf("maxMapAttempts must be positive, got %d", w.MaxMapAttempts)
	}
	if sum := w.Terrain.Sum(); math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("terrain weights sum to %.4f, want 1", sum)
	}
	if w.RupeeChance < 0 || w.RupeeChance > 1 {
		return fmt.Errorf("rupeeChance %.2f out of [0,1]", w.RupeeChance)
	}
	if w.FollowChance < 0 || w.FollowChance > 1 {
		return fmt.Errorf("followChance %.2f out of [0,1]", w.FollowChance)
	}

	r := c.Rules
	if r.PlayerMaxHealth < 1 || r.PlayerStartHealth < 1 || r.PlayerStartHealth > r.PlayerMaxHealth {
		return fmt.Errorf("invalid player health: start=%d max=%d", r.PlayerStartHealth, r.PlayerMaxHealth)
	}
	if r.EnemyHealth < 1 {
		return fmt.Errorf("enemyHealth must be positive, got %d", r.EnemyHealth)
	}
	if r.EnemyMoveInterval < 1 {
		return fmt.Errorf("enemyMoveInterval must be positive, got %d", r.EnemyMoveInterval)
	}
	if r.AttackWindowEnd < 0 || r.AttackWindowEnd >= r.AttackCooldown {
		return fmt.Errorf("attackWindowEnd %d must be in [0,%d)", r.AttackWindowEnd, r.AttackCooldown)
	}
	if r.TickRate < 1 {
		return fmt.Errorf("tickRate must be positive, got %d", r.TickRate)
	}

	if c.Layout != nil {
		if len(c.Layout.Rows) != w.Height {
			return fmt.Errorf("layout %s has %d rows, world height is %d", c.Layout.ID, len(c.Layout.Rows), w.Height)
		}
		for y, row := range c.Layout.Rows {
			if n := len([]rune(row)); n != w.Width {
				return fmt.Errorf("layout %s row %d has %d tiles, world width is %d", c.Layout.ID, y, n, w.Width)
			}
		}
	}

	return nil
}
