package form

import (
	"errors"
	"fmt"
)

// ErrSubmitInFlight is returned by Submit while a previous submission is still running.
var ErrSubmitInFlight = errors.New("submission already in flight")

// MissingElementError reports a required page element that was not provided.
type MissingElementError struct {
	Element string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("form: required element %q is missing", e.Element)
}
