package state

import "github.com/younwookim/overworld/internal/domain/entity"

// Status represents where the game is in its lifecycle
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusDefeated
	StatusVictorious
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusDefeated:
		return "Defeated"
	case StatusVictorious:
		return "Victorious"
	default:
		return "Unknown"
	}
}

// Ended reports whether the status is terminal
func (s Status) Ended() bool {
	return s == StatusDefeated || s == StatusVictorious
}

// Outcome is the terminal signal handed to the end-of-game UI
type Outcome struct {
	Status Status
	Score  int
}

// OutcomeNone is reported while the game is still running
var OutcomeNone = Outcome{Status: StatusPlaying}

// GameState is the complete snapshot passed between ticks.
// The Map is immutable and shared between snapshots; entity slices are owned.
type GameState struct {
	Map     entity.Map
	Player  entity.Player
	Enemies []entity.Enemy
	Items   []entity.Item
	Status  Status
	Score   int    // rupees at the moment the game ended
	Tick    uint64 // ticks simulated since generation
}

// Clone returns a copy whose entity slices can be modified freely
func (g GameState) Clone() GameState {
	next := g
	next.Enemies = append([]entity.Enemy(nil), g.Enemies...)
	next.Items = append([]entity.Item(nil), g.Items...)
	return next
}

// Outcome returns the terminal outcome, or OutcomeNone while playing
func (g GameState) Outcome() Outcome {
	if !g.Status.Ended() {
		return OutcomeNone
	}
	return Outcome{Status: g.Status, Score: g.Score}
}

// ActiveItems returns the items that have not been collected yet
func (g GameState) ActiveItems() []entity.Item {
	active := make([]entity.Item, 0, len(g.Items))
	for _, item := range g.Items {
		if !item.Collected {
			active = append(active, item)
		}
	}
	return active
}
