package system

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/logger"
)

// Simulation advances a GameState by one tick
type Simulation struct {
	rules config.RulesConfig
	rng   Rand
	log   *logrus.Entry
}

// NewSimulation creates a simulation. rng drives random enemy movement.
func NewSimulation(rules config.RulesConfig, rng Rand) *Simulation {
	return &Simulation{
		rules: rules,
		rng:   rng,
		log:   logger.For("simulation"),
	}
}

// Step computes the state after one tick of input.
// prev is never modified. Ended states are returned unchanged.
func (s *Simulation) Step(prev state.GameState, in Input) state.GameState {
	if prev.Status.Ended() {
		return prev
	}

	next := prev.Clone()
	p := next.Player

	p = MovePlayer(p, in.Move, next.Map)
	if in.Attack {
		p = s.TriggerAttack(p)
	}

	if p.Attacking {
		next.Enemies = CheckAttacks(p, next.Enemies)
		p = s.endAttackWindow(p)
	}

	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}

	next.Enemies = s.MoveEnemies(next.Enemies, p, next.Map)
	p, next.Items = CheckItemCollection(p, next.Items, s.rules.PlayerMaxHealth)
	p = CheckPlayerDamage(p, next.Enemies)
	next.Enemies = RemoveDead(next.Enemies)
	if s.rules.PruneCollectedItems {
		next.Items = PruneCollected(next.Items)
	}

	next.Player = p
	next.Tick++

	switch {
	case p.Health <= 0:
		next.Status = state.StatusDefeated
	case len(next.Enemies) == 0:
		next.Status = state.StatusVictorious
	}

	if next.Status.Ended() {
		next.Score = p.Rupees
		s.log.WithFields(logrus.Fields{
			"tick":   next.Tick,
			"status": next.Status.String(),
			"score":  next.Score,
		}).Debug("game ended")
	}

	return next
}
