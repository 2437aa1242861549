package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/config"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a game generated from seed and world
func NewRecorder(seed int64, world config.WorldConfig) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version: Version,
			ID:      uuid.New(),
			Seed:    seed,
			World: WorldInfo{
				Width:   world.Width,
				Height:  world.Height,
				Enemies: world.EnemyCount,
				Items:   world.ItemCount,
				Layout:  world.Layout,
			},
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 ticks per second
		},
		recording: true,
	}
}

// RecordFrame records a single tick's input
func (r *Recorder) RecordFrame(in system.Input) {
	if !r.recording {
		return
	}

	fi := FrameInput{F: r.frame, A: in.Attack}
	if in.Move != entity.DirNone {
		fi.M = in.Move.String()
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// Finish stops recording and stores the outcome of the recorded game
func (r *Recorder) Finish(gs state.GameState) {
	r.recording = false
	if gs.Status.Ended() {
		r.data.Result = NewResult(gs)
	}
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
