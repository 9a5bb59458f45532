package flow

import (
	"errors"
	"fmt"
)

// ErrAborted is returned when the user cancels any prompt. It is not a
// failure: callers should exit cleanly without downloading.
var ErrAborted = errors.New("selection aborted")

// SelectionError reports a selection that cannot be completed from the
// catalog, such as an empty picker.
type SelectionError struct {
	State  State
	Reason string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.State, e.Reason)
}
