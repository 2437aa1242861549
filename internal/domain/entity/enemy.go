package entity

import "fmt"

// MovePattern defines how an enemy chooses its next step
type MovePattern int

const (
	// PatternRandom steps in a uniformly random direction
	PatternRandom MovePattern = iota
	// PatternFollow steps greedily toward the player
	PatternFollow
)

func (p MovePattern) String() string {
	switch p {
	case PatternRandom:
		return "random"
	case PatternFollow:
		return "follow"
	default:
		return "unknown"
	}
}

// Enemy represents an enemy entity
type Enemy struct {
	ID          string
	Position    Position
	Direction   Direction
	Health      int
	MovePattern MovePattern
	MoveTimer   int // ticks until the next step attempt
}

// EnemyID returns the stable id for the enemy generated in slot i
func EnemyID(i int) string {
	return fmt.Sprintf("enemy-%d", i)
}

// NewEnemy creates a living enemy facing down
func NewEnemy(id string, pos Position, health int, pattern MovePattern, moveTimer int) Enemy {
	return Enemy{
		ID:          id,
		Position:    pos,
		Direction:   DirDown,
		Health:      health,
		MovePattern: pattern,
		MoveTimer:   moveTimer,
	}
}

// IsAlive returns true if enemy still has health
func (e Enemy) IsAlive() bool {
	return e.Health > 0
}
