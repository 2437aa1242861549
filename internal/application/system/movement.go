package system

import "github.com/younwookim/overworld/internal/domain/entity"

// MovePlayer turns the player toward dir and steps one tile if the destination can be entered.
// Facing always updates; an attacking player does not move.
func MovePlayer(p entity.Player, dir entity.Direction, m entity.Map) entity.Player {
	if dir == entity.DirNone {
		return p
	}

	p.Direction = dir
	if p.Attacking {
		return p
	}

	if dest := p.Position.Step(dir); m.CanEnter(dest) {
		p.Position = dest
	}
	return p
}

// MoveEnemies advances every enemy's move timer and steps the ones whose timer ran out
func (s *Simulation) MoveEnemies(enemies []entity.Enemy, p entity.Player, m entity.Map) []entity.Enemy {
	moved := make([]entity.Enemy, len(enemies))
	for i, e := range enemies {
		moved[i] = s.moveEnemy(e, p, m)
	}
	return moved
}

func (s *Simulation) moveEnemy(e entity.Enemy, p entity.Player, m entity.Map) entity.Enemy {
	if e.MoveTimer > 0 {
		e.MoveTimer--
		return e
	}

	// the timer resets whether or not the step succeeds
	e.MoveTimer = s.rules.EnemyMoveInterval

	var dir entity.Direction
	switch e.MovePattern {
	case entity.PatternFollow:
		dir = FollowDirection(e.Position, p.Position)
	default:
		dir = entity.Directions[s.rng.Intn(len(entity.Directions))]
	}

	if dest := e.Position.Step(dir); m.CanEnter(dest) {
		e.Position = dest
		e.Direction = dir
	}
	return e
}

// FollowDirection picks the axis with the larger displacement toward target.
// Ties go to the vertical axis.
func FollowDirection(from, target entity.Position) entity.Direction {
	dx := target.X - from.X
	dy := target.Y - from.Y

	if abs(dx) > abs(dy) {
		if dx > 0 {
			return entity.DirRight
		}
		return entity.DirLeft
	}
	if dy > 0 {
		return entity.DirDown
	}
	return entity.DirUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
