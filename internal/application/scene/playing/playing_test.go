package playing

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/overworld/internal/application/replay"
	"github.com/younwookim/overworld/internal/application/scene"
	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// scriptedControls returns queued controls, then idle ones
type scriptedControls struct {
	queue []Controls
}

func (s *scriptedControls) Poll() Controls {
	if len(s.queue) == 0 {
		return Controls{}
	}
	c := s.queue[0]
	s.queue = s.queue[1:]
	return c
}

func newTestScene(t *testing.T, cfg *config.GameConfig, recordPath string, queue ...Controls) *Playing {
	t.Helper()
	session, err := system.NewSession(cfg, 21)
	require.NoError(t, err)
	return New(cfg, session, &scriptedControls{queue: queue}, recordPath)
}

// frames returns wall clock times one tick apart
func frames(n int) []time.Time {
	start := time.Unix(5000, 0)
	times := make([]time.Time, n)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * 20 * time.Millisecond)
	}
	return times
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestScreenSize(t *testing.T) {
	cfg := config.Default()
	session, err := system.NewSession(cfg, 1)
	require.NoError(t, err)

	w, h := ScreenSize(cfg, session.State())
	assert.Equal(t, 20*32, w)
	assert.Equal(t, 15*32+hudHeight, h)
}

func TestPlaying_UpdateAdvancesSession(t *testing.T) {
	p := newTestScene(t, config.Default(), "")

	for _, now := range frames(5) {
		next, err := p.Update(now)
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	assert.Equal(t, uint64(5), p.Session().State().Tick)
	assert.Nil(t, p.Recorder())
}

func TestPlaying_UpdateHonorsClock(t *testing.T) {
	p := newTestScene(t, config.Default(), "")
	now := time.Unix(5000, 0)

	_, _ = p.Update(now)
	_, _ = p.Update(now.Add(time.Millisecond))
	_, _ = p.Update(now.Add(2 * time.Millisecond))

	assert.Equal(t, uint64(1), p.Session().State().Tick)
}

func TestPlaying_Pause(t *testing.T) {
	p := newTestScene(t, config.Default(), "", Controls{Pause: true}, Controls{}, Controls{Pause: true})
	times := frames(4)

	_, _ = p.Update(times[0])
	assert.True(t, p.Session().Paused())
	_, _ = p.Update(times[1])
	assert.Equal(t, uint64(0), p.Session().State().Tick)

	_, _ = p.Update(times[2])
	_, _ = p.Update(times[3])
	assert.False(t, p.Session().Paused())
	assert.Equal(t, uint64(2), p.Session().State().Tick)
}

func TestPlaying_RecordsAndSavesOnEnd(t *testing.T) {
	cfg := config.Default()
	cfg.World.EnemyCount = 0
	path := filepath.Join(t.TempDir(), "run.json")

	p := newTestScene(t, cfg, path, Controls{Input: system.Input{Move: entity.DirUp}})
	_, err := p.Update(frames(1)[0])
	require.NoError(t, err)

	assert.Equal(t, state.StatusVictorious, p.Session().Outcome().Status)
	assert.False(t, p.Recorder().IsRecording())

	saved, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, []replay.FrameInput{{F: 0, M: "up"}}, saved.Frames)
	require.NotNil(t, saved.Result)
	assert.Equal(t, "Victorious", saved.Result.Status)
}

func TestPlaying_RestartAfterEnd(t *testing.T) {
	cfg := config.Default()
	cfg.World.EnemyCount = 0
	times := frames(3)

	p := newTestScene(t, cfg, "", Controls{}, Controls{Restart: true})
	_, _ = p.Update(times[0])
	require.True(t, p.Session().State().Status.Ended())

	_, err := p.Update(times[1])
	require.NoError(t, err)
	assert.Equal(t, state.StatusPlaying, p.Session().State().Status)
	assert.Equal(t, uint64(0), p.Session().State().Tick)
}

func TestPlaying_RestartIgnoredWhilePlaying(t *testing.T) {
	p := newTestScene(t, config.Default(), "", Controls{}, Controls{Restart: true})
	times := frames(2)

	_, _ = p.Update(times[0])
	_, _ = p.Update(times[1])

	assert.Equal(t, uint64(2), p.Session().State().Tick)
}

func TestPlaying_OnExitSavesPartialRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	p := newTestScene(t, config.Default(), path)

	for _, now := range frames(3) {
		_, _ = p.Update(now)
	}
	p.OnExit()

	saved, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, saved.Frames, 3)
	assert.Nil(t, saved.Result)
}

func TestPlayback_MatchesRecording(t *testing.T) {
	cfg := config.Default()
	moves := []Controls{
		{Input: system.Input{Move: entity.DirLeft}},
		{Input: system.Input{Attack: true}},
		{Input: system.Input{Move: entity.DirUp}},
		{Input: system.Input{Move: entity.DirRight, Attack: true}},
	}
	times := frames(len(moves))

	recording := newTestScene(t, cfg, filepath.Join(t.TempDir(), "r.json"), moves...)
	for _, now := range times {
		_, _ = recording.Update(now)
	}

	session, err := system.NewSession(cfg, recording.Session().Seed())
	require.NoError(t, err)
	// live controls are ignored during playback
	playback := NewPlayback(cfg, session, &scriptedControls{queue: []Controls{{Input: system.Input{Move: entity.DirDown}}}}, recording.Recorder().Data())
	for _, now := range times {
		_, _ = playback.Update(now)
	}

	assert.Equal(t, recording.Session().State(), playback.Session().State())
}

func TestEndText(t *testing.T) {
	won := endText(state.Outcome{Status: state.StatusVictorious, Score: 3}, false)
	assert.Contains(t, won, "VICTORY")
	assert.Contains(t, won, "Rupees collected: 3")
	assert.Contains(t, won, "play again")

	lost := endText(state.Outcome{Status: state.StatusDefeated, Score: 0}, true)
	assert.Contains(t, lost, "GAME OVER")
	assert.NotContains(t, lost, "play again")
}

func TestTileColor(t *testing.T) {
	assert.Equal(t, colorWater, tileColor(entity.TileWater))
	assert.Equal(t, colorGrass, tileColor(entity.TileGrass))
	assert.NotEqual(t, tileColor(entity.TileTree), tileColor(entity.TileMountain))
}
