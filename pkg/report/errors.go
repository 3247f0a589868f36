package report

import (
	"errors"
	"fmt"
)

// ErrValidation marks a submission missing a required value.
var ErrValidation = errors.New("missing required field")

// Required reports which field was missing.
func Required(field string) error { return fmt.Errorf("%w: %s", ErrValidation, field) }
