package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/overworld/internal/application/replay"
	"github.com/younwookim/overworld/internal/application/scene/playing"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/logger"
)

// replayConfig returns a copy of cfg describing the world a replay was recorded in
func replayConfig(data *replay.ReplayData, loader *config.Loader, cfg *config.GameConfig) (*config.GameConfig, error) {
	rc := *cfg
	if err := loader.ApplyLayout(&rc, data.World.Layout); err != nil {
		return nil, fmt.Errorf("failed to load replay layout: %w", err)
	}
	rc.World.Width = data.World.Width
	rc.World.Height = data.World.Height
	rc.World.EnemyCount = data.World.Enemies
	rc.World.ItemCount = data.World.Items
	return &rc, nil
}

// verifyReplay re-simulates a replay without a window and compares it against its recorded result
func verifyReplay(path string, loader *config.Loader, cfg *config.GameConfig) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	rc, err := replayConfig(data, loader, cfg)
	if err != nil {
		return err
	}

	gs, err := replay.Verify(*data, rc)
	log := logger.Log.WithFields(logrus.Fields{
		"id":     data.ID,
		"seed":   data.Seed,
		"frames": len(data.Frames),
		"tick":   gs.Tick,
		"status": gs.Status.String(),
		"score":  gs.Score,
	})
	if err != nil {
		return err
	}

	if data.Result == nil {
		log.Warn("replay has no recorded result, nothing to compare")
		return nil
	}
	log.Info("replay verified")
	return nil
}

// newPlaybackScene loads a replay and prepares a window scene that plays it back
func newPlaybackScene(path string, loader *config.Loader, cfg *config.GameConfig) (*playing.Playing, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, err
	}
	rc, err := replayConfig(data, loader, cfg)
	if err != nil {
		return nil, err
	}

	session, err := system.NewSession(rc, data.Seed)
	if err != nil {
		return nil, err
	}
	return playing.NewPlayback(rc, session, playing.Keyboard{}, *data), nil
}
