package config

// GameConfig is the root config for game.json
type GameConfig struct {
	World   WorldConfig   `json:"world"`
	Rules   RulesConfig   `json:"rules"`
	Display DisplayConfig `json:"display"`
	Log     LogConfig     `json:"log"`

	// Layout is resolved from World.Layout by the loader, nil for generated terrain
	Layout *LayoutConfig `json:"-"`
}

// WorldConfig controls procedural world generation
type WorldConfig struct {
	Width                int           `json:"width"`
	Height               int           `json:"height"`
	EnemyCount           int           `json:"enemyCount"`
	ItemCount            int           `json:"itemCount"`
	MaxPlacementAttempts int           `json:"maxPlacementAttempts"` // per enemy / item slot
	Terrain              TerrainConfig `json:"terrain"`
	RupeeChance          float64       `json:"rupeeChance"`  // remaining items are hearts
	FollowChance         float64       `json:"followChance"` // remaining enemies move randomly

	// RequireConnected regenerates maps until every walkable tile is reachable from the spawn
	RequireConnected bool `json:"requireConnected,omitempty"`
	MaxMapAttempts   int  `json:"maxMapAttempts"`

	// Layout names a hand-authored map in layouts/<name>.json; empty = generated terrain
	Layout string `json:"layout,omitempty"`

	// Seed for the random source; 0 picks a time-based seed
	Seed int64 `json:"seed,omitempty"`
}

// TerrainConfig holds interior terrain probabilities.
// Sampling is cumulative in field order: grass, tree, sand, water, mountain.
type TerrainConfig struct {
	Grass    float64 `json:"grass"`
	Tree     float64 `json:"tree"`
	Sand     float64 `json:"sand"`
	Water    float64 `json:"water"`
	Mountain float64 `json:"mountain"`
}

// Sum returns the total probability mass
func (t TerrainConfig) Sum() float64 {
	return t.Grass + t.Tree + t.Sand + t.Water + t.Mountain
}

// RulesConfig holds the per-tick game rules
type RulesConfig struct {
	PlayerStartHealth int `json:"playerStartHealth"`
	PlayerMaxHealth   int `json:"playerMaxHealth"`
	EnemyHealth       int `json:"enemyHealth"`
	EnemyMoveInterval int `json:"enemyMoveInterval"` // ticks between enemy steps
	AttackCooldown    int `json:"attackCooldown"`    // ticks from trigger until the next attack
	AttackWindowEnd   int `json:"attackWindowEnd"`   // attacking clears once cooldown <= this
	TickRate          int `json:"tickRate"`          // logical ticks per second

	// PruneCollectedItems drops collected items from the state instead of keeping them flagged
	PruneCollectedItems bool `json:"pruneCollectedItems,omitempty"`
}

// DisplayConfig is used by the window and terminal hosts only
type DisplayConfig struct {
	TileSize int    `json:"tileSize"`
	Scale    int    `json:"scale"`
	Title    string `json:"title"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // "text" or "json"
}
