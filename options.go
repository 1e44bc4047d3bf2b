package colorfilter

import "log/slog"

// RegistryOption configures a Registry during creation.
//
// Example:
//
//	reg := colorfilter.NewRegistry(software.New(),
//	    colorfilter.WithInitialCapacity(256),
//	    colorfilter.WithLogger(slog.Default()))
type RegistryOption func(*registryOptions)

type registryOptions struct {
	logger   *slog.Logger
	capacity int
}

func defaultRegistryOptions() registryOptions {
	return registryOptions{
		logger:   nil, // falls back to the package Logger
		capacity: 64,
	}
}

// WithLogger sets a logger for this registry instead of the package logger.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(o *registryOptions) {
		o.logger = l
	}
}

// WithInitialCapacity sizes the handle table. Values <= 0 are ignored.
func WithInitialCapacity(n int) RegistryOption {
	return func(o *registryOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}
