package trafficlight

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/quintans/go-trafficlight/trigger"
)

type Option func(*TrafficLight)

// WithTrigger sets how long each phase lasts.
func WithTrigger(t trigger.Trigger) Option {
	return func(l *TrafficLight) {
		l.trigger = t
	}
}

// WithTick sets the sleep between two iterations of the cycling loop.
func WithTick(tick time.Duration) Option {
	return func(l *TrafficLight) {
		l.tick = tick
	}
}

// WithPause sets the sleep of WaitForGreen after receiving a phase other than Green.
func WithPause(pause time.Duration) Option {
	return func(l *TrafficLight) {
		l.pause = pause
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *TrafficLight) {
		l.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(l *TrafficLight) {
		l.metrics = m
	}
}
