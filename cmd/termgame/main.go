// Command termgame plays the overworld game in a terminal.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/logger"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "Fixed world seed (0 = config seed or time based)")
	configFlag := flag.String("config", "", "Config directory (default: built-in defaults)")
	logFlag := flag.String("log", "", "Write logs to this file (the terminal is used for the game)")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	logOut, err := openLog(*logFlag)
	if err != nil {
		logger.Log.Fatalf("Failed to open log file: %v", err)
	}
	defer func() { _ = logOut.Close() }()
	logger.SetOutput(logOut)

	session, err := system.NewSession(cfg, *seedFlag)
	if err != nil {
		logger.Log.Fatalf("Failed to start game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		logger.Log.Fatalf("Failed to init screen: %v", err)
	}

	newHost(screen, session).run()
	screen.Fini()
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir == "" {
		return config.Default(), nil
	}
	return config.NewLoader(dir).LoadAll()
}

// openLog returns the log destination; without a path logs are discarded
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
