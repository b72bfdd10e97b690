package machine

import (
	"log/slog"

	"github.com/rshepherd549/enigma/internal/logging"
)

// Option customises a Machine at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: logging.NewNop()}
}

// WithLogger sends configuration and per-message debug records to l.
// Plaintext and ciphertext are never logged. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) {
		o.logger = l
	}
}
