package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// ErrMismatch is returned by Verify when a replay does not reproduce its recorded result
var ErrMismatch = errors.New("replay result mismatch")

// Run re-simulates a recorded game headlessly and returns the final state.
// cfg supplies the rules; world size and entity counts come from the replay.
func Run(data ReplayData, cfg *config.GameConfig) (state.GameState, error) {
	if data.Seed == 0 {
		return state.GameState{}, fmt.Errorf("replay %s has no seed", data.ID)
	}
	if data.World.Layout != "" && (cfg.Layout == nil || cfg.Layout.ID != data.World.Layout) {
		return state.GameState{}, fmt.Errorf("replay %s needs layout %q", data.ID, data.World.Layout)
	}

	replayCfg := *cfg
	replayCfg.World.Width = data.World.Width
	replayCfg.World.Height = data.World.Height
	replayCfg.World.EnemyCount = data.World.Enemies
	replayCfg.World.ItemCount = data.World.Items
	replayCfg.World.Layout = data.World.Layout
	if data.World.Layout == "" {
		replayCfg.Layout = nil
	}

	session, err := system.NewSession(&replayCfg, data.Seed)
	if err != nil {
		return state.GameState{}, fmt.Errorf("failed to start replay %s: %w", data.ID, err)
	}

	replayer := NewReplayer(data)
	for !session.State().Status.Ended() {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		session.Step(in)
	}

	return session.State(), nil
}

// Verify runs the replay and checks it against the recorded result, if any
func Verify(data ReplayData, cfg *config.GameConfig) (state.GameState, error) {
	gs, err := Run(data, cfg)
	if err != nil {
		return gs, err
	}
	if data.Result == nil {
		return gs, nil
	}

	if got := NewResult(gs); *got != *data.Result {
		return gs, fmt.Errorf("%w: recorded %+v, replayed %+v", ErrMismatch, *data.Result, *got)
	}
	return gs, nil
}
