package entitykit

import "log/slog"

// Option configures a World at construction time.
type Option func(*World)

// WithLogger sets the logger used for tick and system tracing.
// Nil loggers are ignored; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}
