package persist

import "github.com/pkg/errors"

// ErrNotFound is returned by a Backend when no value is stored under the
// requested Identifier. Callers compare against it with errors.Is.
var ErrNotFound = errors.New("persist: identifier not found")

// PersistError wraps a Backend failure with the operation and Identifier
// that triggered it, preserving the underlying cause for errors.Cause and
// errors.Is.
type PersistError struct {
	Op    string
	ID    Identifier
	cause error
}

func (e *PersistError) Error() string {
	return "persist: " + e.Op + " " + e.ID.String() + ": " + e.cause.Error()
}

func (e *PersistError) Unwrap() error { return e.cause }

func (e *PersistError) Cause() error { return e.cause }

func wrapErr(op string, id Identifier, cause error) error {
	if cause == nil {
		return nil
	}
	return &PersistError{Op: op, ID: id, cause: cause}
}
