// Package fault holds the errors that terminate the process.
//
// None of them are meant to be recovered: they signal either a caller defect
// (InvariantViolation) or an external resource that the game cannot run
// without (ResourceUnavailable).
package fault

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/tickwheel/pkg/log"
)

// InvariantViolation is raised when an arena or scheduler contract is broken,
// e.g. acquiring a slot that is already borrowed or deleted.
type InvariantViolation struct {
	Op     string
	Index  int
	Reason string
}

func (e *InvariantViolation) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invariant violation: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("invariant violation: %s slot %d: %s", e.Op, e.Index, e.Reason)
}

// ResourceUnavailable is raised when an asynchronous load fails.
type ResourceUnavailable struct {
	Path string
	Err  error
}

func (e *ResourceUnavailable) Error() string {
	return fmt.Sprintf("resource unavailable: %s: %v", e.Path, e.Err)
}

func (e *ResourceUnavailable) Unwrap() error {
	return e.Err
}

// Raise logs err and panics with it.
func Raise(err error) {
	log.Error("fatal: %v", err)
	panic(err)
}

// Violation raises an InvariantViolation.
func Violation(op string, index int, format string, args ...interface{}) {
	Raise(&InvariantViolation{
		Op:     op,
		Index:  index,
		Reason: fmt.Sprintf(format, args...),
	})
}

// IsInvariantViolation reports whether v, typically a recovered panic value,
// is an InvariantViolation.
func IsInvariantViolation(v interface{}) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var target *InvariantViolation
	return errors.As(err, &target)
}
