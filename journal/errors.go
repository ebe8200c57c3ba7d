package journal

import (
	"errors"
	"fmt"
)

var (
	// ErrJournalLocked is returned by RecordTrade once the loss limit has been hit.
	ErrJournalLocked = errors.New("journal locked")

	// ErrInvalidField is wrapped by every FieldError.
	ErrInvalidField = errors.New("invalid field")
)

// FieldError reports a form value outside its closed set of choices.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

// User facing messages for the lock.
const (
	LockNotice = "Trading locked for today. Discipline first."
	LockBanner = "Daily loss limit hit. Trading locked."
)
