package repository

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrFailedValidation = errors.New("failed validation")
	ErrEditConflict     = errors.New("edit conflict")
	ErrDuplicateRecord  = errors.New("duplicate record")

	// ErrLockConflict is returned when a transaction could not acquire its
	// row lock within the bounded wait, or was aborted by the database due
	// to contention. The operation left no partial state and is safe to
	// retry.
	ErrLockConflict = errors.New("lock conflict")
)
