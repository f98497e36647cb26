package option

import "log/slog"

const (
	// DefaultInitialCapacity is the buffer capacity of a new list.
	DefaultInitialCapacity = 10
)

// Option for sorted lists.
type Option struct {
	InitialCapacity int

	// Logger receives growth diagnostics, slog.Default() if nil.
	Logger *slog.Logger
}

// DefaultOption
var DefaultOption = &Option{
	InitialCapacity: DefaultInitialCapacity,
}

// Capacity returns the usable initial capacity.
func (o *Option) Capacity() int {
	if o == nil || o.InitialCapacity < 1 {
		return DefaultInitialCapacity
	}
	return o.InitialCapacity
}

// GetLogger
func (o *Option) GetLogger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
