package jsonedit

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a path does not resolve to a value in the
// document. Returned (wrapped) by Get; Update never produces it because it
// creates every missing intermediate.
var ErrNotFound = errors.New("not found")

// ParseError reports that document or value text is not syntactically valid
// JSON. Callers can show it as a validation message distinct from other
// failures.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsonedit: invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UpdateError reports a failure while applying an edit that is not a syntax
// problem with the input text.
type UpdateError struct {
	Op  string
	Err error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("jsonedit: %s: %v", e.Op, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }
