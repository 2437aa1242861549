package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// scriptedInputs cycles through a fixed input pattern
func scriptedInputs(n int) []system.Input {
	pattern := []system.Input{
		{Move: entity.DirLeft},
		{Move: entity.DirLeft, Attack: true},
		{},
		{Move: entity.DirUp},
		{Move: entity.DirRight},
		{Attack: true},
		{Move: entity.DirDown},
	}
	inputs := make([]system.Input, n)
	for i := range inputs {
		inputs[i] = pattern[(i/3)%len(pattern)]
	}
	return inputs
}

// record plays inputs through a fresh session while recording them
func record(t *testing.T, cfg *config.GameConfig, seed int64, inputs []system.Input) (*Recorder, state.GameState) {
	t.Helper()
	session, err := system.NewSession(cfg, seed)
	require.NoError(t, err)

	rec := NewRecorder(session.Seed(), cfg.World)
	for _, in := range inputs {
		if session.State().Status.Ended() {
			break
		}
		rec.RecordFrame(in)
		session.Step(in)
	}
	rec.Finish(session.State())
	return rec, session.State()
}

func TestFrameInput_Input(t *testing.T) {
	assert.Equal(t, system.Input{Move: entity.DirRight, Attack: true}, FrameInput{M: "right", A: true}.Input())
	assert.Equal(t, system.Input{}, FrameInput{}.Input())
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(7, config.Default().World)

	rec.RecordFrame(system.Input{Move: entity.DirUp})
	rec.RecordFrame(system.Input{Attack: true})
	rec.Stop()
	rec.RecordFrame(system.Input{Move: entity.DirDown})

	data := rec.Data()
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())
	assert.Equal(t, []FrameInput{{F: 0, M: "up"}, {F: 1, A: true}}, data.Frames)
	assert.Equal(t, Version, data.Version)
	assert.NotEqual(t, uuid.Nil, data.ID)
	assert.Equal(t, WorldInfo{Width: 20, Height: 15, Enemies: 5, Items: 10}, data.World)
}

func TestRecorder_SaveRequiresFrames(t *testing.T) {
	rec := NewRecorder(7, config.Default().World)
	assert.Error(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec, _ := record(t, config.Default(), 77, scriptedInputs(120))
	path := filepath.Join(t.TempDir(), "game.json")

	require.NoError(t, rec.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().ID, loaded.ID)
	assert.Equal(t, int64(77), loaded.Seed)
	assert.Equal(t, rec.Data().Frames, loaded.Frames)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("{not json"), 0o644))
	_, err = LoadReplay(garbage)
	assert.Error(t, err)

	future := filepath.Join(dir, "future.json")
	raw, err := json.Marshal(ReplayData{Version: "9.0", Seed: 1})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(future, raw, 0o644))
	_, err = LoadReplay(future)
	assert.Error(t, err)
}

func TestReplayer_GetInput(t *testing.T) {
	replayer := NewReplayer(ReplayData{
		Seed:   42,
		Frames: []FrameInput{{F: 0, M: "left"}, {F: 1, A: true}},
	})

	assert.Equal(t, int64(42), replayer.Seed())
	assert.Equal(t, 2, replayer.TotalFrames())

	in, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, entity.DirLeft, in.Move)

	in, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, in.Attack)
	assert.Equal(t, 2, replayer.CurrentFrame())

	_, ok = replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestRun_ReproducesRecordedGame(t *testing.T) {
	cfg := config.Default()

	for _, seed := range []int64{3, 19, 2024} {
		rec, final := record(t, cfg, seed, scriptedInputs(900))

		replayed, err := Run(rec.Data(), cfg)
		require.NoError(t, err)
		assert.Equal(t, final, replayed, "seed %d", seed)
	}
}

func TestRun_UsesRecordedWorld(t *testing.T) {
	small := config.Default()
	small.World.Width, small.World.Height = 10, 8
	small.World.EnemyCount = 2
	rec, final := record(t, small, 11, scriptedInputs(60))

	// rules come from the caller, world size from the replay
	replayed, err := Run(rec.Data(), config.Default())
	require.NoError(t, err)
	assert.Equal(t, 10, replayed.Map.Width)
	assert.Equal(t, final, replayed)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(ReplayData{}, config.Default())
	assert.Error(t, err, "missing seed")

	_, err = Run(ReplayData{Seed: 1, World: WorldInfo{Width: 20, Height: 15, Layout: "lake"}}, config.Default())
	assert.Error(t, err, "missing layout")
}

func TestVerify(t *testing.T) {
	cfg := config.Default()
	cfg.World.EnemyCount = 0
	rec, _ := record(t, cfg, 5, scriptedInputs(10))
	data := rec.Data()
	require.NotNil(t, data.Result)
	assert.Equal(t, state.StatusVictorious.String(), data.Result.Status)

	_, err := Verify(data, cfg)
	require.NoError(t, err)

	data.Result = &Result{Tick: data.Result.Tick, Status: data.Result.Status, Score: data.Result.Score + 1}
	_, err = Verify(data, cfg)
	assert.ErrorIs(t, err, ErrMismatch)
}
