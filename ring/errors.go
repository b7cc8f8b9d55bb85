package ring

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("ring: invalid configuration")

// A ConfigurationError reports a parameter that makes a run impossible. It is
// returned before any state is created or mutated.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ring: invalid %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configErrorf(field string, value any, format string, args ...any) error {
	return &ConfigurationError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}
