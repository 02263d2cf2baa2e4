package errors

import (
	"fmt"
)

var (
	ErrInvalidShape        = fmt.Errorf("memoryclient: config must be a key-value mapping")
	ErrUnknownField        = fmt.Errorf("memoryclient: unknown config field")
	ErrInvalidEnum         = fmt.Errorf("memoryclient: invalid enum value")
	ErrMissingCustomPrompt = fmt.Errorf("memoryclient: custom prompt is required")
	ErrMissingEnvVar       = fmt.Errorf("memoryclient: missing environment variable")
	ErrInvalidConfig       = fmt.Errorf("memoryclient: invalid config")
)
