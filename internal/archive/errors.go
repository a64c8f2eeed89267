package archive

import "errors"

// Common errors returned by archive and undo operations
var (
	// ErrBatchNotFound is returned when no movements exist for a batch ID
	ErrBatchNotFound = errors.New("no movements found for batch ID")

	// ErrAlreadyUndone is returned when a batch has already been fully restored
	ErrAlreadyUndone = errors.New("batch ID has already been undone")

	// ErrNoBatches is returned when undo is requested but no active batches remain
	ErrNoBatches = errors.New("no batches available to undo")
)

// Error wraps an error with additional context about the archive operation
type Error struct {
	// Op is the operation that failed (e.g., "archive", "undo", "resolve")
	Op string

	// Path is the path of the file that caused the error
	Path string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error
func NewError(op, path string, err error) error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsBatchNotFound returns true if the error is ErrBatchNotFound
func IsBatchNotFound(err error) bool {
	return errors.Is(err, ErrBatchNotFound)
}

// IsAlreadyUndone returns true if the error is ErrAlreadyUndone
func IsAlreadyUndone(err error) bool {
	return errors.Is(err, ErrAlreadyUndone)
}

// IsNoBatches returns true if the error is ErrNoBatches
func IsNoBatches(err error) bool {
	return errors.Is(err, ErrNoBatches)
}
