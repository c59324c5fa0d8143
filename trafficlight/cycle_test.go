package trafficlight

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintans/go-trafficlight/trigger"
)

func TestCycleTogglesAfterLimit(t *testing.T) {
	l := New(
		WithTrigger(trigger.NewSimpleTrigger(5*time.Second)),
		WithLogger(zerolog.Nop()),
	)
	c := newCycle(l.trigger)
	t0 := time.Unix(1577836800, 0)

	drive := func(now time.Time) step {
		s := c.advance(now)
		if s.toggle {
			l.toggle(s)
		}
		return s
	}

	s := drive(t0)
	require.True(t, s.drawn)
	require.False(t, s.toggle)
	require.Equal(t, 5*time.Second, s.limit)
	require.Equal(t, Red, l.CurrentPhase())

	s = drive(t0.Add(4999 * time.Millisecond))
	require.False(t, s.toggle)
	require.Equal(t, Red, l.CurrentPhase())

	s = drive(t0.Add(5000 * time.Millisecond))
	require.True(t, s.toggle)
	require.Equal(t, 5*time.Second, s.elapsed)
	require.Equal(t, Green, l.CurrentPhase())

	// a new cycle starts on the iteration after a toggle
	t1 := t0.Add(5001 * time.Millisecond)
	s = drive(t1)
	require.True(t, s.drawn)
	require.False(t, s.toggle)
	require.Equal(t, Green, l.CurrentPhase())

	s = drive(t1.Add(4 * time.Second))
	require.False(t, s.toggle)
	require.Equal(t, Green, l.CurrentPhase())

	s = drive(t1.Add(5 * time.Second))
	require.True(t, s.toggle)
	require.Equal(t, Red, l.CurrentPhase())
}

func TestCycleIntervalsStayWithinBounds(t *testing.T) {
	const cycles = 1000

	ut, err := trigger.NewUniformTrigger(
		trigger.DefaultMinInterval,
		trigger.DefaultMaxInterval,
		trigger.UniformTriggerSeedOption(2024),
	)
	require.NoError(t, err)

	c := newCycle(ut)
	now := time.Unix(1577836800, 0)

	var (
		intervals []time.Duration
		sum       time.Duration
	)
	for len(intervals) < cycles {
		s := c.advance(now)
		if s.toggle {
			require.Equal(t, s.limit, s.elapsed)
			intervals = append(intervals, s.elapsed)
			sum += s.elapsed
		}
		now = now.Add(time.Millisecond)
	}

	for _, d := range intervals {
		require.GreaterOrEqual(t, d, 4000*time.Millisecond)
		require.LessOrEqual(t, d, 6000*time.Millisecond)
	}

	mean := sum / cycles
	assert.InDelta(t, float64(5000*time.Millisecond), float64(mean), float64(100*time.Millisecond))
}

func TestCycleDrawsEveryLimitIndependently(t *testing.T) {
	seq := trigger.NewSequenceTrigger(10*time.Millisecond, 30*time.Millisecond, 20*time.Millisecond)
	c := newCycle(seq)
	now := time.Unix(0, 0)

	var limits []time.Duration
	for len(limits) < 6 {
		s := c.advance(now)
		if s.drawn {
			limits = append(limits, s.limit)
		}
		now = now.Add(time.Millisecond)
	}

	assert.Equal(t, []time.Duration{
		10 * time.Millisecond, 30 * time.Millisecond, 20 * time.Millisecond,
		10 * time.Millisecond, 30 * time.Millisecond, 20 * time.Millisecond,
	}, limits)
}

func TestPhaseToggle(t *testing.T) {
	assert.Equal(t, Green, Red.Toggle())
	assert.Equal(t, Red, Green.Toggle())
	assert.Equal(t, "red", Red.String())
	assert.Equal(t, "green", Green.String())
	assert.Equal(t, "unknown", Phase(7).String())
}
