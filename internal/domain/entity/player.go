package entity

// PlayerID is the stable id of the singleton player
const PlayerID = "player"

// Player represents the player character
type Player struct {
	ID             string
	Position       Position
	Direction      Direction
	Health         int
	Rupees         int
	Attacking      bool
	AttackCooldown int // ticks until a new attack may be armed
}

// NewPlayer creates a player at pos facing down
func NewPlayer(pos Position, health int) Player {
	return Player{
		ID:        PlayerID,
		Position:  pos,
		Direction: DirDown,
		Health:    health,
	}
}

// AttackTarget returns the cell directly in front of the player
func (p Player) AttackTarget() Position {
	return p.Position.Step(p.Direction)
}

// CanAttack reports whether a new attack may be armed
func (p Player) CanAttack() bool {
	return !p.Attacking && p.AttackCooldown <= 0
}
