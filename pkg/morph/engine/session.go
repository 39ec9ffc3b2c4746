package engine

import (
	"sync"
	"time"

	"github.com/analogue/morph/pkg/morph/catalog"
	"github.com/analogue/morph/pkg/morph/snapshot"
)

// Morph timing bounds. Values outside the documented ranges are clamped,
// never rejected.
const (
	DefaultDuration = 2 * time.Second
	MinDuration     = 500 * time.Millisecond
	MaxDuration     = 10 * time.Second

	DefaultUpdateRate = 30.0
	MinUpdateRate     = 10.0
	MaxUpdateRate     = 60.0
)

// Session owns one morph: a source and destination snapshot, the current
// position and the scheduler that advances it. Sessions are independent;
// several may run concurrently without shared state.
//
// A session is either idle or running. While running, a single goroutine
// ticks at the update rate and is the only writer of position; control
// methods called while running either no-op (Start, SetPosition) or stop the
// run first (Swap, ResetToSource, JumpToDestination, snapshot replacement).
type Session struct {
	mu sync.Mutex

	cat     *catalog.Catalog
	src     *snapshot.Snapshot
	dst     *snapshot.Snapshot
	cfg     Config
	set     *ChangeSet
	emitter *Emitter
	clock   Clock

	// pos is the morph position in [0,1]; raw is the same position without
	// easing, which snap strategies compare against their threshold.
	pos float64
	raw float64

	duration time.Duration
	rateHz   float64

	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSession builds a session over a snapshot pair. It fails with a
// *ConfigError when the snapshots cover different parameter sets.
func NewSession(cat *catalog.Catalog, source, destination *snapshot.Snapshot, cfg Config, sink Sink) (*Session, error) {
	set, err := Build(source, destination, cfg, cat)
	if err != nil {
		return nil, err
	}
	return &Session{
		cat:      cat,
		src:      source,
		dst:      destination,
		cfg:      cfg,
		set:      set,
		emitter:  NewEmitter(sink),
		clock:    SystemClock(),
		duration: DefaultDuration,
		rateHz:   DefaultUpdateRate,
	}, nil
}

// SetClock replaces the scheduler clock. Intended for tests; call it before
// the first run.
func (s *Session) SetClock(c Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = c
}

// SetDuration sets the morph time span, clamped to [MinDuration, MaxDuration].
func (s *Session) SetDuration(d time.Duration) {
	if d < MinDuration {
		d = MinDuration
	}
	if d > MaxDuration {
		d = MaxDuration
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duration = d
}

// Duration returns the configured morph time span.
func (s *Session) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// SetUpdateRate sets the tick rate in Hz, clamped to [MinUpdateRate, MaxUpdateRate].
func (s *Session) SetUpdateRate(hz float64) {
	if hz < MinUpdateRate {
		hz = MinUpdateRate
	}
	if hz > MaxUpdateRate {
		hz = MaxUpdateRate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rateHz = hz
}

// UpdateRate returns the tick rate in Hz.
func (s *Session) UpdateRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rateHz
}

// Position returns the current morph position.
func (s *Session) Position() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Running reports whether a morph run is in progress.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Source returns the current source snapshot.
func (s *Session) Source() *snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src
}

// Destination returns the current destination snapshot.
func (s *Session) Destination() *snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dst
}

// Config returns the active filter configuration.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig replaces the filter configuration and rebuilds the change set.
// A running morph is stopped first.
func (s *Session) SetConfig(cfg Config) error {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := Build(s.src, s.dst, cfg, s.cat)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.set = set
	return nil
}

// SetSource replaces the source snapshot. The change set is rebuilt and the
// emission baseline cleared; a running morph is stopped first.
func (s *Session) SetSource(src *snapshot.Snapshot) error {
	return s.replace(src, nil)
}

// SetDestination replaces the destination snapshot, with the same rebuild
// semantics as SetSource.
func (s *Session) SetDestination(dst *snapshot.Snapshot) error {
	return s.replace(nil, dst)
}

func (s *Session) replace(src, dst *snapshot.Snapshot) error {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()

	newSrc, newDst := s.src, s.dst
	if src != nil {
		newSrc = src
	}
	if dst != nil {
		newDst = dst
	}
	set, err := Build(newSrc, newDst, s.cfg, s.cat)
	if err != nil {
		return err
	}
	s.src, s.dst = newSrc, newDst
	s.set = set
	s.emitter.Reset()
	return nil
}

// Stats returns a snapshot of the session's counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	sent, saved := s.emitter.Counters()
	return Stats{
		TotalParameters: s.set.Total,
		ContinuousCount: len(s.set.Continuous),
		DiscreteCount:   len(s.set.Discrete),
		UnchangedCount:  s.set.Unchanged,
		MessagesSent:    sent,
		MessagesSaved:   saved,
	}
}

// ResetStats zeroes the message counters.
func (s *Session) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emitter.ResetCounters()
}

// Morphing returns the ids of the continuous parameters being interpolated.
// For UI display only.
func (s *Session) Morphing() []catalog.ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]catalog.ID, len(s.set.Continuous))
	for i, r := range s.set.Continuous {
		ids[i] = r.ID
	}
	return ids
}

// Changing returns the ids of the discrete parameters that will change value
// during the morph. For UI display only.
func (s *Session) Changing() []catalog.ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]catalog.ID, len(s.set.Discrete))
	for i, r := range s.set.Discrete {
		ids[i] = r.ID
	}
	return ids
}

// Start morphs from the current position to 1.
func (s *Session) Start() {
	s.StartTo(1)
}

// StartTo morphs from the current position to target over the configured
// duration, ticking at the configured update rate. A no-op while a run is
// already in progress. The emission baseline is cleared so the first tick
// emits fresh values for every record.
func (s *Session) StartTo(target float64) {
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

	startPos := s.pos
	delta := target - startPos
	dur := s.duration
	interval := s.interval()
	ticker := s.clock.NewTicker(interval)
	s.mu.Unlock()

	start := s.clock.Now()
	go s.run(ticker, start, interval, startPos, delta, target, dur, stop, done)
}

func (s *Session) interval() time.Duration {
	return time.Duration(float64(time.Second) / s.rateHz)
}

func (s *Session) run(ticker Ticker, start time.Time, interval time.Duration, startPos, delta, target float64, dur time.Duration, stop, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C():
			s.mu.Lock()
			if !s.running {
				s.mu.Unlock()
				return
			}
			elapsed := now.Sub(start)
			progress := clampUnit(elapsed.Seconds() / dur.Seconds())
			// The target is reached once it lies within half a tick, which
			// absorbs interval truncation (60 ticks at 30 Hz sum to a hair
			// under 2 s).
			if elapsed+interval/2 >= dur {
				// Land on the target exactly; no 0.999... endpoints.
				s.raw, s.pos = target, target
				s.emitLocked()
				s.running = false
				s.mu.Unlock()
				return
			}
			s.raw = startPos + delta*progress
			s.pos = startPos + delta*Ease(progress)
			s.emitLocked()
			s.mu.Unlock()
		}
	}
}

// Stop cancels a running morph. When Stop returns, no further tick will
// execute; position is left wherever the last tick put it.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
}

// Wait blocks until the current run finishes, by completion or by Stop.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

// SetPosition moves the morph position while idle, clamped to [0,1], and
// optionally performs one emission pass. Calls during a run are ignored: the
// position slider is disabled while an automatic morph is in progress.
func (s *Session) SetPosition(p float64, emit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.pos = clampUnit(p)
	s.raw = s.pos
	if emit {
		s.emitLocked()
	}
}

// Swap exchanges the source and destination programs, mirrors the position
// so the audible state is preserved, rebuilds the change set and emits once.
// A running morph is stopped first.
func (s *Session) Swap() {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.src, s.dst = s.dst, s.src
	s.pos = 1 - s.pos
	s.raw = s.pos
	if set, err := Build(s.src, s.dst, s.cfg, s.cat); err == nil {
		s.set = set
	}
	s.emitter.Reset()
	s.emitLocked()
}

// ResetToSource stops any run, forces position to 0 and emits once.
func (s *Session) ResetToSource() {
	s.forcePosition(0)
}

// JumpToDestination stops any run, forces position to 1 and emits once.
func (s *Session) JumpToDestination() {
	s.forcePosition(1)
}

func (s *Session) forcePosition(p float64) {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pos, s.raw = p, p
	s.emitter.Reset()
	s.emitLocked()
}

// emitLocked walks the active change set at the current position: continuous
// records at the eased position, discrete records resolved against the raw
// position. At most one event per parameter per pass; repeats are absorbed
// by the emitter cache. Caller holds s.mu.
func (s *Session) emitLocked() {
	for _, r := range s.set.Continuous {
		s.emitter.Send(r.ID, r.ValueAt(s.pos))
	}
	threshold := s.cfg.snapThreshold()
	for _, r := range s.set.Discrete {
		s.emitter.Send(r.ID, discreteValue(r, s.raw, s.cfg.Strategy, threshold))
	}
}
