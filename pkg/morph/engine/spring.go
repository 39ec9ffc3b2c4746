package engine

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning for glide runs: critically damped, settling in well under a
// second at typical update rates.
const (
	springFrequency = 4.0
	springDamping   = 1.0
	springSettleEps = 1e-3
)

// Spring advances a morph position toward a moving target with spring
// dynamics instead of a fixed-duration ramp. Used to smooth manual position
// moves, e.g. a UI slider the user drags around.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSpring creates a spring stepped at the given update rate.
func NewSpring(rateHz float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(int(rateHz)), springFrequency, springDamping),
	}
}

// Reset places the spring at pos with zero velocity.
func (s *Spring) Reset(pos float64) {
	s.pos = clampUnit(pos)
	s.vel = 0
}

// Step advances one tick toward target and returns the new position,
// clamped to [0,1].
func (s *Spring) Step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, clampUnit(target))
	s.pos = clampUnit(s.pos)
	return s.pos
}

// Settled reports whether the spring has come to rest at target.
func (s *Spring) Settled(target float64) bool {
	return math.Abs(s.pos-clampUnit(target)) < springSettleEps &&
		math.Abs(s.vel) < springSettleEps
}

// Glide morphs from the current position to target using spring dynamics
// rather than the eased fixed-duration ramp: the position overshoots
// nothing, decelerates into the target and stops when settled. A no-op while
// a run is already in progress.
func (s *Session) Glide(target float64) {
	target = clampUnit(target)

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.emitter.Reset()

	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop, s.done = stop, done

	spr := NewSpring(s.rateHz)
	spr.Reset(s.pos)
	ticker := s.clock.NewTicker(s.interval())
	s.mu.Unlock()

	go s.glide(ticker, spr, target, stop, done)
}

func (s *Session) glide(ticker Ticker, spr *Spring, target float64, stop, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			s.mu.Lock()
			if !s.running {
				s.mu.Unlock()
				return
			}
			if spr.Step(target); spr.Settled(target) {
				s.raw, s.pos = target, target
				s.emitLocked()
				s.running = false
				s.mu.Unlock()
				return
			}
			s.raw, s.pos = spr.pos, spr.pos
			s.emitLocked()
			s.mu.Unlock()
		}
	}
}
