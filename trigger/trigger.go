package trigger

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

var ErrInvalidBounds = errors.New("invalid trigger bounds")

const (
	DefaultMinInterval = 4000 * time.Millisecond
	DefaultMaxInterval = 6000 * time.Millisecond
)

// Trigger is the Triggers interface.
// Triggers decide how long a traffic light phase lasts before it is toggled.
type Trigger interface {
	// Next returns the duration of the next phase.
	Next() time.Duration

	// Description returns a Trigger description.
	Description() string
}

// UniformTrigger implements the trigger.Trigger interface.
// Every call to Next draws a whole number of milliseconds, uniformly distributed in [min, max].
type UniformTrigger struct {
	min time.Duration
	max time.Duration

	mu   sync.Mutex
	rand *rand.Rand
}

type UniformTriggerOption func(*UniformTrigger)

// UniformTriggerSeedOption makes the drawn intervals reproducible.
func UniformTriggerSeedOption(seed uint64) UniformTriggerOption {
	return func(t *UniformTrigger) {
		t.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// NewUniformTrigger returns a new UniformTrigger.
func NewUniformTrigger(min, max time.Duration, options ...UniformTriggerOption) (*UniformTrigger, error) {
	if min < 0 || max < min {
		return nil, fmt.Errorf("uniform trigger [%s, %s]: %w", min, max, ErrInvalidBounds)
	}

	t := &UniformTrigger{
		min: min.Truncate(time.Millisecond),
		max: max.Truncate(time.Millisecond),
	}
	for _, o := range options {
		o(t)
	}

	return t, nil
}

// DefaultTrigger returns the UniformTrigger used by a traffic light unless told otherwise:
// a phase lasts between 4 and 6 seconds.
func DefaultTrigger() *UniformTrigger {
	t, err := NewUniformTrigger(DefaultMinInterval, DefaultMaxInterval)
	if err != nil {
		panic(err)
	}
	return t
}

// Next returns a random duration in [min, max].
func (t *UniformTrigger) Next() time.Duration {
	span := int64((t.max - t.min) / time.Millisecond)

	var n int64
	if t.rand == nil {
		n = rand.Int64N(span + 1)
	} else {
		t.mu.Lock()
		n = t.rand.Int64N(span + 1)
		t.mu.Unlock()
	}

	return t.min + time.Duration(n)*time.Millisecond
}

// Description returns a UniformTrigger description.
func (t *UniformTrigger) Description() string {
	return fmt.Sprintf("UniformTrigger between %s and %s.", t.min, t.max)
}

// SimpleTrigger implements the trigger.Trigger interface; every phase lasts the same Interval.
type SimpleTrigger struct {
	Interval time.Duration
}

// NewSimpleTrigger returns a new SimpleTrigger.
func NewSimpleTrigger(interval time.Duration) *SimpleTrigger {
	return &SimpleTrigger{interval}
}

// Next returns the fixed interval.
func (st *SimpleTrigger) Next() time.Duration {
	return st.Interval
}

// Description returns a SimpleTrigger description.
func (st *SimpleTrigger) Description() string {
	return fmt.Sprintf("SimpleTrigger with the interval %s.", st.Interval)
}

// SequenceTrigger implements the trigger.Trigger interface.
// It replays the given intervals in order and starts over when they run out.
type SequenceTrigger struct {
	mu        sync.Mutex
	intervals []time.Duration
	next      int
}

// NewSequenceTrigger returns a new SequenceTrigger.
func NewSequenceTrigger(intervals ...time.Duration) *SequenceTrigger {
	return &SequenceTrigger{intervals: intervals}
}

// Next returns the next interval of the sequence, or zero for an empty sequence.
func (st *SequenceTrigger) Next() time.Duration {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.intervals) == 0 {
		return 0
	}
	d := st.intervals[st.next]
	st.next = (st.next + 1) % len(st.intervals)

	return d
}

// Description returns a SequenceTrigger description.
func (st *SequenceTrigger) Description() string {
	return fmt.Sprintf("SequenceTrigger cycling through %v.", st.intervals)
}
