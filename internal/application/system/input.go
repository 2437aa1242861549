package system

import "github.com/younwookim/overworld/internal/domain/entity"

// Input is the per-tick input snapshot.
// Hosts sample their devices once per tick and hand the result to the simulation.
type Input struct {
	Move   entity.Direction // DirNone when no direction is held
	Attack bool
}

// ResolveMove reduces the held directions to the one effective move.
// The last direction in iteration order wins.
func ResolveMove(held ...entity.Direction) entity.Direction {
	move := entity.DirNone
	for _, d := range held {
		if d != entity.DirNone {
			move = d
		}
	}
	return move
}

// IsZero reports whether the snapshot carries no input
func (in Input) IsZero() bool {
	return in.Move == entity.DirNone && !in.Attack
}
