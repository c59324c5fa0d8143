package trafficlight

import (
	"os"

	"github.com/rs/zerolog"
)

func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("component", "trafficlight").
		Logger()
}
