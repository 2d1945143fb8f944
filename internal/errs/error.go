package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("entity has active relations")
	ErrOutOfStock  = errors.New("out of stock")
	ErrNotBorrowed = errors.New("book is not borrowed by user")
	ErrValidation  = errors.New("validation failed")
)

// DuplicateRatingError is returned when a (user, book) pair already has a
// rating. Score carries the existing score, which stays unchanged.
type DuplicateRatingError struct {
	Score int
}

func (e *DuplicateRatingError) Error() string {
	return fmt.Sprintf("already rated with score=%d", e.Score)
}

// StoreError wraps an error coming out of the storage backend. The native
// message is preserved and surfaced to the caller as is.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err into a StoreError unless it is nil or already one of the
// engine's own error kinds.
func Store(err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Err: err}
}

// IsStore reports whether err originated in the storage backend.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
