package system

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/logger"
)

// Report describes how closely a generated world matched the request.
// Shortfalls are diagnostics only; generation never fails.
type Report struct {
	MapAttempts      int
	SpawnFallback    bool // no walkable tile found, player placed at the center
	Disconnected     bool // RequireConnected gave up after MaxMapAttempts
	EnemiesRequested int
	EnemiesPlaced    int
	ItemsRequested   int
	ItemsPlaced      int
}

// Shortfall reports whether any requested entity could not be placed
func (r Report) Shortfall() bool {
	return r.EnemiesPlaced < r.EnemiesRequested || r.ItemsPlaced < r.ItemsRequested
}

// Generator builds maps, spawns, enemies and items
type Generator struct {
	world  config.WorldConfig
	rules  config.RulesConfig
	layout *entity.Map
	rng    Rand
	log    *logrus.Entry
}

// NewGenerator creates a generator. It fails only when cfg names an unusable layout.
func NewGenerator(cfg *config.GameConfig, rng Rand) (*Generator, error) {
	g := &Generator{
		world: cfg.World,
		rules: cfg.Rules,
		rng:   rng,
		log:   logger.For("generator"),
	}

	if cfg.Layout != nil {
		m, err := LoadMap(cfg.Layout.Rows)
		if err != nil {
			return nil, fmt.Errorf("failed to load layout %s: %w", cfg.Layout.ID, err)
		}
		g.layout = &m
	}

	return g, nil
}

// GenerateMap creates a width x height map sealed by a water border.
// Interior tiles are drawn independently from the terrain distribution.
func (g *Generator) GenerateMap(width, height int) entity.Map {
	m := entity.Map{
		Width:  width,
		Height: height,
		Tiles:  make([]entity.Tile, 0, width*height),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := entity.Position{X: x, Y: y}
			tileType := entity.TileWater
			if !m.IsBorder(pos) {
				tileType = g.sampleTerrain()
			}
			m.Tiles = append(m.Tiles, entity.NewTile(tileType, pos))
		}
	}

	return m
}

func (g *Generator) sampleTerrain() entity.TileType {
	t := g.world.Terrain
	r := g.rng.Float64()

	switch {
	case r < t.Grass:
		return entity.TileGrass
	case r < t.Grass+t.Tree:
		return entity.TileTree
	case r < t.Grass+t.Tree+t.Sand:
		return entity.TileSand
	case r < t.Grass+t.Tree+t.Sand+t.Water:
		return entity.TileWater
	default:
		return entity.TileMountain
	}
}

// FindSpawn scans square shells of growing radius around the map center
// and returns the first walkable tile.
func FindSpawn(m entity.Map) (entity.Position, bool) {
	center := m.Center()
	layers := max(m.Width, m.Height)

	for layer := 0; layer < layers; layer++ {
		for x := center.X - layer; x <= center.X+layer; x++ {
			for y := center.Y - layer; y <= center.Y+layer; y++ {
				// interior of the shell was scanned by a previous layer
				if x > center.X-layer && x < center.X+layer && y > center.Y-layer && y < center.Y+layer {
					continue
				}
				pos := entity.Position{X: x, Y: y}
				if m.CanEnter(pos) {
					return pos, true
				}
			}
		}
	}

	return center, false
}

// PlaceSpawn returns the spawn cell, falling back to the center on degenerate maps
func PlaceSpawn(m entity.Map) entity.Position {
	pos, _ := FindSpawn(m)
	return pos
}

// ReachableFrom returns every walkable tile connected to start by 4-way steps
func ReachableFrom(m entity.Map, start entity.Position) mapset.Set[entity.Position] {
	reachable := mapset.New[entity.Position]()
	if !m.CanEnter(start) {
		return reachable
	}

	queue := []entity.Position{start}
	reachable.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range entity.Directions {
			next := current.Step(dir)
			if m.CanEnter(next) && !reachable.Has(next) {
				reachable.Put(next)
				queue = append(queue, next)
			}
		}
	}

	return reachable
}

// GenerateEnemies places up to count enemies on walkable tiles other than avoid
func (g *Generator) GenerateEnemies(m entity.Map, avoid entity.Position, count int) []entity.Enemy {
	return g.generateEnemies(m, avoid, count, nil)
}

func (g *Generator) generateEnemies(m entity.Map, avoid entity.Position, count int, allowed *mapset.Set[entity.Position]) []entity.Enemy {
	enemies := make([]entity.Enemy, 0, count)

	for i := 0; i < count; i++ {
		pos, ok := g.samplePosition(m, allowed, func(p entity.Position) bool {
			return p == avoid
		})
		if !ok {
			continue
		}

		pattern := entity.PatternRandom
		if g.rng.Float64() <= g.world.FollowChance {
			pattern = entity.PatternFollow
		}
		moveTimer := g.rng.Intn(g.rules.EnemyMoveInterval)

		enemies = append(enemies, entity.NewEnemy(entity.EnemyID(i), pos, g.rules.EnemyHealth, pattern, moveTimer))
	}

	return enemies
}

// GenerateItems places up to count items on walkable tiles other than avoid and avoidSet
func (g *Generator) GenerateItems(m entity.Map, avoid entity.Position, avoidSet []entity.Position, count int) []entity.Item {
	return g.generateItems(m, avoid, avoidSet, count, nil)
}

func (g *Generator) generateItems(m entity.Map, avoid entity.Position, avoidSet []entity.Position, count int, allowed *mapset.Set[entity.Position]) []entity.Item {
	occupied := mapset.New[entity.Position]()
	occupied.Put(avoid)
	for _, pos := range avoidSet {
		occupied.Put(pos)
	}

	items := make([]entity.Item, 0, count)
	for i := 0; i < count; i++ {
		pos, ok := g.samplePosition(m, allowed, occupied.Has)
		if !ok {
			continue
		}

		itemType := entity.ItemHeart
		if g.rng.Float64() < g.world.RupeeChance {
			itemType = entity.ItemRupee
		}

		items = append(items, entity.NewItem(entity.ItemID(i), itemType, pos))
	}

	return items
}

// samplePosition draws uniform in-bounds cells until one is walkable, allowed and not rejected
func (g *Generator) samplePosition(m entity.Map, allowed *mapset.Set[entity.Position], reject func(entity.Position) bool) (entity.Position, bool) {
	for attempt := 0; attempt < g.world.MaxPlacementAttempts; attempt++ {
		pos := entity.Position{X: g.rng.Intn(m.Width), Y: g.rng.Intn(m.Height)}
		if !m.IsWalkable(pos) || reject(pos) {
			continue
		}
		if allowed != nil && !allowed.Has(pos) {
			continue
		}
		return pos, true
	}
	return entity.Position{}, false
}

// buildMap returns the configured layout or a freshly generated map
func (g *Generator) buildMap() entity.Map {
	if g.layout != nil {
		return *g.layout
	}
	return g.GenerateMap(g.world.Width, g.world.Height)
}

// NewGame generates a complete initial state
func (g *Generator) NewGame() (state.GameState, Report) {
	report := Report{
		EnemiesRequested: g.world.EnemyCount,
		ItemsRequested:   g.world.ItemCount,
	}

	var (
		m       entity.Map
		spawn   entity.Position
		allowed *mapset.Set[entity.Position]
	)
	for {
		report.MapAttempts++
		m = g.buildMap()

		var found bool
		spawn, found = FindSpawn(m)
		report.SpawnFallback = !found

		if !g.world.RequireConnected || !found {
			break
		}

		reachable := ReachableFrom(m, spawn)
		allowed = &reachable
		if reachable.Size() == m.WalkableCount() {
			break
		}
		if g.layout != nil || report.MapAttempts >= g.world.MaxMapAttempts {
			report.Disconnected = true
			break
		}
	}

	player := entity.NewPlayer(spawn, g.rules.PlayerStartHealth)
	enemies := g.generateEnemies(m, spawn, g.world.EnemyCount, allowed)

	enemyPositions := make([]entity.Position, len(enemies))
	for i, e := range enemies {
		enemyPositions[i] = e.Position
	}
	items := g.generateItems(m, spawn, enemyPositions, g.world.ItemCount, allowed)

	report.EnemiesPlaced = len(enemies)
	report.ItemsPlaced = len(items)
	g.logReport(report, spawn)

	return state.GameState{
		Map:     m,
		Player:  player,
		Enemies: enemies,
		Items:   items,
		Status:  state.StatusPlaying,
	}, report
}

func (g *Generator) logReport(report Report, spawn entity.Position) {
	log := g.log.WithFields(logrus.Fields{
		"spawn":       spawn.String(),
		"mapAttempts": report.MapAttempts,
		"enemies":     report.EnemiesPlaced,
		"items":       report.ItemsPlaced,
	})

	if report.SpawnFallback {
		log.Warn("no walkable spawn tile, using map center")
	}
	if report.Disconnected {
		log.Warn("walkable region is not connected, placement limited to the spawn region")
	}
	if report.Shortfall() {
		log.WithFields(logrus.Fields{
			"enemiesRequested": report.EnemiesRequested,
			"itemsRequested":   report.ItemsRequested,
		}).Warn("placement attempts exhausted, world has fewer entities than requested")
		return
	}
	log.Debug("world generated")
}
