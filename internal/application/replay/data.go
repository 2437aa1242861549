package replay

import (
	"github.com/google/uuid"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
)

// Version of the replay file format
const Version = "1.0"

// FrameInput records the input of a single tick
type FrameInput struct {
	F int    `json:"f"`           // Frame number
	M string `json:"m,omitempty"` // Move direction name, empty when idle
	A bool   `json:"a,omitempty"` // Attack
}

// Input converts the frame back into a simulation input
func (f FrameInput) Input() system.Input {
	return system.Input{
		Move:   entity.ParseDirection(f.M),
		Attack: f.A,
	}
}

// WorldInfo is the generation request a replay was recorded with
type WorldInfo struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Enemies int    `json:"enemies"`
	Items   int    `json:"items"`
	Layout  string `json:"layout,omitempty"`
}

// Result is the outcome observed when the replay was recorded
type Result struct {
	Tick   uint64 `json:"tick"`
	Status string `json:"status"`
	Score  int    `json:"score"`
}

// NewResult captures the terminal outcome of gs
func NewResult(gs state.GameState) *Result {
	return &Result{
		Tick:   gs.Tick,
		Status: gs.Status.String(),
		Score:  gs.Score,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	ID        uuid.UUID    `json:"id"`
	Seed      int64        `json:"seed"`
	World     WorldInfo    `json:"world"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Result    *Result      `json:"result,omitempty"`
}
