package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// scriptedRand replays fixed sequences. Exhausted sequences return zero.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// openRows is a 9x7 grass field with a water border and a tree at (6,3)
var openRows = []string{
	"~~~~~~~~~",
	"~.......~",
	"~.......~",
	"~.....T.~",
	"~.......~",
	"~.......~",
	"~~~~~~~~~",
}

func mustMap(t *testing.T, rows []string) entity.Map {
	t.Helper()
	m, err := LoadMap(rows)
	require.NoError(t, err)
	return m
}

func testRules() config.RulesConfig {
	return config.Default().Rules
}

func newTestSimulation(rng Rand) *Simulation {
	return NewSimulation(testRules(), rng)
}

// newTestState places the player at pos on openRows with the given enemies
func newTestState(t *testing.T, pos entity.Position, enemies ...entity.Enemy) state.GameState {
	t.Helper()
	return state.GameState{
		Map:     mustMap(t, openRows),
		Player:  entity.NewPlayer(pos, config.DefaultPlayerStartHealth),
		Enemies: enemies,
		Status:  state.StatusPlaying,
	}
}

// idleEnemy never moves during short tests
func idleEnemy(id string, pos entity.Position) entity.Enemy {
	return entity.NewEnemy(id, pos, 1, entity.PatternRandom, 1000)
}
