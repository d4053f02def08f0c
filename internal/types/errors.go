package types

import "fmt"

// ConfigError represents a fatal construction-time error: malformed taxonomy,
// weight vectors that do not sum to 1.0, invalid tier thresholds. It is never
// produced by a scoring call.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// InputError represents a recoverable per-call error in caller-supplied data,
// such as negative experience years or an unknown education level. One bad
// candidate in a batch fails independently of the others.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}
