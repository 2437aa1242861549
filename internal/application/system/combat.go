package system

import "github.com/younwookim/overworld/internal/domain/entity"

// TriggerAttack arms a new attack when the player is idle and the cooldown has run out
func (s *Simulation) TriggerAttack(p entity.Player) entity.Player {
	if !p.CanAttack() {
		return p
	}
	p.Attacking = true
	p.AttackCooldown = s.rules.AttackCooldown
	return p
}

// endAttackWindow stops hit-testing once the cooldown reaches the window end
func (s *Simulation) endAttackWindow(p entity.Player) entity.Player {
	if p.Attacking && p.AttackCooldown <= s.rules.AttackWindowEnd {
		p.Attacking = false
	}
	return p
}

// CheckAttacks damages every enemy standing on the tile in front of an attacking player
func CheckAttacks(p entity.Player, enemies []entity.Enemy) []entity.Enemy {
	if !p.Attacking {
		return enemies
	}

	target := p.AttackTarget()
	hit := make([]entity.Enemy, len(enemies))
	for i, e := range enemies {
		if e.Position == target {
			e.Health--
		}
		hit[i] = e
	}
	return hit
}

// CheckPlayerDamage takes one health point when any living enemy shares the player's tile.
// Attacking players are immune.
func CheckPlayerDamage(p entity.Player, enemies []entity.Enemy) entity.Player {
	if p.Attacking {
		return p
	}

	for _, e := range enemies {
		if e.IsAlive() && e.Position == p.Position {
			p.Health = max(p.Health-1, 0)
			return p
		}
	}
	return p
}

// RemoveDead drops enemies whose health reached zero
func RemoveDead(enemies []entity.Enemy) []entity.Enemy {
	alive := make([]entity.Enemy, 0, len(enemies))
	for _, e := range enemies {
		if e.IsAlive() {
			alive = append(alive, e)
		}
	}
	return alive
}
