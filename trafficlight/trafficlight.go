package trafficlight

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/quintans/go-trafficlight/channel"
	"github.com/quintans/go-trafficlight/trigger"
)

// TrafficLight is a single intersection signal that toggles between Red and Green.
//
// Once simulated, a background goroutine publishes the current phase to the light's
// message channel on every loop iteration, so observers see a continuous stream of
// snapshots rather than only the changes.
type TrafficLight struct {
	phase    atomic.Int32
	messages *channel.Blocking[Phase]

	trigger trigger.Trigger
	tick    time.Duration
	pause   time.Duration
	logger  zerolog.Logger
	metrics *Metrics
}

// New returns a new TrafficLight showing Red.
func New(options ...Option) *TrafficLight {
	l := &TrafficLight{
		messages: channel.New[Phase](),
		trigger:  trigger.DefaultTrigger(),
		tick:     time.Millisecond,
		pause:    time.Millisecond,
		logger:   defaultLogger(),
	}
	for _, f := range options {
		f(l)
	}
	l.phase.Store(int32(Red))

	return l
}

// CurrentPhase returns the phase the light is showing right now.
// It is not synchronized with the message channel: the change may be seen here
// before or after it is published.
func (l *TrafficLight) CurrentPhase() Phase {
	return Phase(l.phase.Load())
}

// Messages gives access to the stream of published phases.
func (l *TrafficLight) Messages() channel.Receiver[Phase] {
	return l.messages
}

// WaitForGreen blocks until a Green phase is received from the message channel.
// It only returns an error if ctx is done first.
func (l *TrafficLight) WaitForGreen(ctx context.Context) error {
	pause := time.NewTimer(l.pause)
	defer pause.Stop()

	for {
		phase, err := l.messages.ReceiveContext(ctx)
		if err != nil {
			return err
		}
		if phase == Green {
			return nil
		}

		pause.Reset(l.pause)
		select {
		case <-pause.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Simulate starts cycling through the phases in the background and returns immediately.
// The cycling stops when ctx is done.
//
// Every call starts another cycling loop over the same light.
func (l *TrafficLight) Simulate(ctx context.Context) {
	go l.cycleThroughPhases(ctx)
}

func (l *TrafficLight) cycleThroughPhases(ctx context.Context) {
	l.logger.Info().Str("trigger", l.trigger.Description()).Msg("Cycling through phases.")

	c := newCycle(l.trigger)
	tick := time.NewTimer(l.tick)
	defer tick.Stop()

	for {
		s := c.advance(time.Now())
		if s.drawn {
			l.metrics.observeLimit(s.limit)
		}
		if s.toggle {
			l.toggle(s)
		}

		l.messages.Send(l.CurrentPhase())
		l.metrics.published()

		tick.Reset(l.tick)
		select {
		case <-tick.C:
		case <-ctx.Done():
			l.logger.Info().Msg("Exit the cycling loop.")
			return
		}
	}
}

func (l *TrafficLight) toggle(s step) {
	next := l.CurrentPhase().Toggle()
	l.phase.Store(int32(next))

	l.metrics.phaseChanged(next)
	l.logger.Debug().
		Stringer("phase", next).
		Dur("elapsed", s.elapsed).
		Dur("limit", s.limit).
		Msg("Phase changed.")
}
