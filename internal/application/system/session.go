package system

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/infrastructure/config"
	"github.com/younwookim/overworld/internal/infrastructure/logger"
)

// Session drives one game for a host: it owns the current state, the simulation and the tick clock.
// A Session is not safe for concurrent use.
type Session struct {
	cfg       *config.GameConfig
	fixedSeed int64
	seed      int64

	gen    *Generator
	sim    *Simulation
	clock  *Clock
	state  state.GameState
	report Report
	paused bool

	// OnEnd is called once when a game reaches a terminal state
	OnEnd func(state.Outcome)

	log *logrus.Entry
}

// NewSession generates a new game.
// A non-zero seed (or cfg.World.Seed) makes every game of this session reproducible.
func NewSession(cfg *config.GameConfig, seed int64) (*Session, error) {
	if seed == 0 {
		seed = cfg.World.Seed
	}

	s := &Session{
		cfg:       cfg,
		fixedSeed: seed,
		clock:     NewClock(cfg.Rules.TickRate),
		log:       logger.For("session"),
	}
	if err := s.reset(NewSeed(seed)); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset(seed int64) error {
	rng := NewRand(seed)
	gen, err := NewGenerator(s.cfg, rng)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	s.seed = seed
	s.gen = gen
	s.sim = NewSimulation(s.cfg.Rules, rng)
	s.state, s.report = gen.NewGame()
	s.paused = false
	s.clock.Reset()

	s.log.WithFields(logrus.Fields{
		"seed":    seed,
		"enemies": len(s.state.Enemies),
		"items":   len(s.state.Items),
	}).Info("new game")
	return nil
}

// Update runs one tick with in if the clock allows it at now.
// It reports whether a tick was simulated.
func (s *Session) Update(now time.Time, in Input) bool {
	if !s.Due(now) {
		return false
	}
	s.Step(in)
	return true
}

// Due reports whether a tick should run at now and claims it from the clock.
// Hosts that produce input lazily call Due and then Step.
func (s *Session) Due(now time.Time) bool {
	if s.paused || s.state.Status.Ended() {
		return false
	}
	return s.clock.Advance(now)
}

// Step runs exactly one tick, ignoring the clock and pause flag
func (s *Session) Step(in Input) {
	wasEnded := s.state.Status.Ended()
	s.state = s.sim.Step(s.state, in)

	if !wasEnded && s.state.Status.Ended() {
		outcome := s.state.Outcome()
		s.log.WithFields(logrus.Fields{
			"seed":   s.seed,
			"tick":   s.state.Tick,
			"status": outcome.Status.String(),
			"score":  outcome.Score,
		}).Info("game over")
		if s.OnEnd != nil {
			s.OnEnd(outcome)
		}
	}
}

// Restart replaces the whole state with a freshly generated game.
// Sessions created with a fixed seed replay the same world.
func (s *Session) Restart() error {
	return s.reset(NewSeed(s.fixedSeed))
}

// TogglePause pauses or resumes a running game. Ended games cannot be paused.
func (s *Session) TogglePause() {
	if s.state.Status.Ended() {
		return
	}
	s.paused = !s.paused
	if !s.paused {
		s.clock.Reset()
	}
}

// Paused reports whether the session is paused
func (s *Session) Paused() bool { return s.paused }

// State returns the current snapshot
func (s *Session) State() state.GameState { return s.state }

// Outcome returns the terminal outcome, or state.OutcomeNone while running
func (s *Session) Outcome() state.Outcome { return s.state.Outcome() }

// Status returns the game status, reporting StatusPaused while a running game is paused
func (s *Session) Status() state.Status {
	if s.paused && !s.state.Status.Ended() {
		return state.StatusPaused
	}
	return s.state.Status
}

// Seed returns the seed of the current game
func (s *Session) Seed() int64 { return s.seed }

// Report returns the generation diagnostics of the current game
func (s *Session) Report() Report { return s.report }

// TickInterval returns the wall clock time between ticks
func (s *Session) TickInterval() time.Duration { return s.clock.Interval() }
