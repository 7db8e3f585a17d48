package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTurnInProgress is returned when Converse is called while another turn
// is still in flight. Turns are strictly one at a time per session.
var ErrTurnInProgress = errors.New("session: a turn is already in progress")

// TimeoutError reports a turn that produced no reply within its deadline.
// The session itself remains usable for the next turn.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("session: no reply within %s", e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// FaultError reports an unrecoverable model-endpoint failure.
type FaultError struct {
	Err error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("session: endpoint fault: %v", e.Err)
}

func (e *FaultError) Unwrap() error { return e.Err }
