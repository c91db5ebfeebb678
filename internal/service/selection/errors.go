package selection

import (
	"errors"
	"fmt"
)

// ErrInvalidCount is returned when a selection is requested for fewer than
// one question.
var ErrInvalidCount = errors.New("selection count must be at least 1")

// InsufficientQuestionsError reports that the filtered pool cannot satisfy
// the requested session size. It is recoverable: the caller surfaces it so
// the user can relax filters, rather than silently running a short session.
type InsufficientQuestionsError struct {
	Available int
	Requested int
}

// Error implements the error interface.
func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("insufficient questions: %d available, %d requested", e.Available, e.Requested)
}
