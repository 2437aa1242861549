// Package playing provides the main gameplay scene.
package playing

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/overworld/internal/application/replay"
	"github.com/younwookim/overworld/internal/application/scene"
	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/logger"
)

// hudHeight is the strip below the map used for health, rupees and help text
const hudHeight = 32

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	session  *system.Session
	controls Controller
	screenW  int
	screenH  int
	tileSize int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Playback; nil when the player is in control
	replayer *replay.Replayer

	log *logrus.Entry
}

// New creates a new Playing scene driving session.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, session *system.Session, controls Controller, recordPath string) *Playing {
	w, h := ScreenSize(cfg, session.State())
	p := &Playing{
		config:         cfg,
		session:        session,
		controls:       controls,
		screenW:        w,
		screenH:        h,
		tileSize:       cfg.Display.TileSize,
		recordFilename: recordPath,
		log:            logger.For("playing"),
	}

	if recordPath != "" {
		p.recorder = replay.NewRecorder(session.Seed(), cfg.World)
		p.log.WithFields(logrus.Fields{"file": recordPath, "seed": session.Seed()}).Info("recording enabled")
	}
	session.OnEnd = p.onEnd

	return p
}

// NewPlayback creates a scene that replays recorded input on session.
// session must have been created with the replay's seed and world.
func NewPlayback(cfg *config.GameConfig, session *system.Session, controls Controller, data replay.ReplayData) *Playing {
	p := New(cfg, session, controls, "")
	p.replayer = replay.NewReplayer(data)
	p.log.WithFields(logrus.Fields{"id": data.ID, "frames": len(data.Frames)}).Info("playback started")
	return p
}

// ScreenSize returns the logical screen size needed to show gs
func ScreenSize(cfg *config.GameConfig, gs state.GameState) (int, int) {
	return gs.Map.Width * cfg.Display.TileSize, gs.Map.Height*cfg.Display.TileSize + hudHeight
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(now time.Time) (scene.Scene, error) {
	c := p.controls.Poll()

	if c.Save {
		p.saveRecording()
	}
	if c.Pause {
		p.session.TogglePause()
	}

	if p.session.State().Status.Ended() {
		if c.Restart && p.replayer == nil {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	if !p.session.Due(now) {
		return nil, nil
	}

	in := c.Input
	if p.replayer != nil {
		// an exhausted replay leaves the player idle
		in, _ = p.replayer.GetInput()
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.session.Step(in)

	return nil, nil // nil = stay on this scene
}

func (p *Playing) onEnd(_ state.Outcome) {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Finish(p.session.State())
	p.saveRecording()
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	log := p.log.WithFields(logrus.Fields{"file": filename, "frames": p.recorder.FrameCount()})
	if err := p.recorder.Save(filename); err != nil {
		log.WithError(err).Error("failed to save recording")
		return
	}
	log.Info("recording saved")
}

func (p *Playing) restart() error {
	if err := p.session.Restart(); err != nil {
		return err
	}

	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.session.Seed(), p.config.World)
		p.log.WithField("seed", p.session.Seed()).Info("recording restarted")
	}
	return nil
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.WithField("seed", p.session.Seed()).Debug("entered playing scene")
}

// OnExit saves an unfinished recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() && p.recorder.FrameCount() > 0 {
		p.recorder.Stop()
		p.saveRecording()
	}
}

// Session returns the session driven by this scene
func (p *Playing) Session() *system.Session {
	return p.session
}

// Recorder returns the active recorder, nil when not recording
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}
