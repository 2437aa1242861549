package main

import (
	"flag"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/overworld/internal/application/game"
	"github.com/younwookim/overworld/internal/application/scene/playing"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/logger"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded replay in the window")
	verifyFlag := flag.String("verify", "", "Re-simulate a replay headlessly and check its recorded result")
	seedFlag := flag.Int64("seed", 0, "Fixed world seed (0 = config seed or time based)")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	layoutFlag := flag.String("layout", "", "Hand-authored layout name from layouts/")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		logger.Log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loadConfig(loader, *layoutFlag)
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	if *verifyFlag != "" {
		if err := verifyReplay(*verifyFlag, loader, cfg); err != nil {
			logger.Log.Fatalf("Replay verification failed: %v", err)
		}
		return
	}

	var current *playing.Playing
	if *replayFlag != "" {
		current, err = newPlaybackScene(*replayFlag, loader, cfg)
	} else {
		current, err = newPlayingScene(cfg, *seedFlag, *recordFlag)
	}
	if err != nil {
		logger.Log.Fatalf("Failed to start game: %v", err)
	}

	screenW, screenH := playing.ScreenSize(cfg, current.Session().State())
	g := game.New(current, screenW, screenH)

	ebiten.SetWindowSize(screenW*cfg.Display.Scale, screenH*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Rules.TickRate)

	logger.Log.WithFields(logrus.Fields{
		"width":  screenW,
		"height": screenH,
		"seed":   current.Session().Seed(),
	}).Info("starting window")

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		logger.Log.Fatal(err)
	}
}

// newLoader returns a loader over dir, or over the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadConfig loads and validates the game config, optionally switching to a named layout
func loadConfig(loader *config.Loader, layout string) (*config.GameConfig, error) {
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if layout == "" {
		return cfg, nil
	}

	if err := loader.ApplyLayout(cfg, layout); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config with layout %s: %w", layout, err)
	}
	return cfg, nil
}

func newPlayingScene(cfg *config.GameConfig, seed int64, recordPath string) (*playing.Playing, error) {
	session, err := system.NewSession(cfg, seed)
	if err != nil {
		return nil, err
	}
	return playing.New(cfg, session, playing.Keyboard{}, recordPath), nil
}
