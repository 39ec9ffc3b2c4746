package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/analogue/morph/pkg/morph/catalog"
)

func TestSpringSettlesWithoutOvershoot(t *testing.T) {
	spr := NewSpring(30)
	spr.Reset(0)

	prev := 0.0
	steps := 0
	for ; steps < 300; steps++ {
		pos := spr.Step(1)
		assert.GreaterOrEqual(t, pos, prev, "critically damped spring must not overshoot")
		assert.LessOrEqual(t, pos, 1.0)
		prev = pos
		if spr.Settled(1) {
			break
		}
	}

	assert.Less(t, steps, 300, "spring did not settle")
	assert.InDelta(t, 1.0, prev, 2e-3)
}

func TestSpringResetClamps(t *testing.T) {
	spr := NewSpring(30)

	spr.Reset(-0.5)
	assert.Equal(t, 0.0, spr.Step(0))

	spr.Reset(2)
	assert.Equal(t, 1.0, spr.pos)
}

func TestGlideReachesTarget(t *testing.T) {
	s, sink, clk := newTestSession(t,
		map[catalog.ID]byte{74: 40}, map[catalog.ID]byte{74: 120}, DefaultConfig())

	s.Glide(1)
	assert.True(t, s.Running())

	// Keep feeding ticks until the spring settles and the session goes idle.
	quit := make(chan struct{})
	go func() {
		for {
			clk.mu.Lock()
			clk.now = clk.now.Add(clk.interval)
			now := clk.now
			tk := clk.ticker
			clk.mu.Unlock()
			select {
			case tk.ch <- now:
			case <-quit:
				return
			}
		}
	}()
	waitIdle(t, s)
	close(quit)

	assert.False(t, s.Running())
	assert.Equal(t, 1.0, s.Position(), "glide lands on the target exactly")

	v, ok := sink.lastFor(74)
	assert.True(t, ok)
	assert.Equal(t, byte(120), v)
}

func TestGlideWhileRunningIsNoop(t *testing.T) {
	s, _, _ := newTestSession(t,
		map[catalog.ID]byte{74: 40}, map[catalog.ID]byte{74: 120}, DefaultConfig())

	s.Start()
	s.Glide(0.5)
	s.Stop()
	assert.False(t, s.Running())
}
