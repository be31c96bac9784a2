package service

import (
	"errors"
	"fmt"
)

var (
	ErrFailedValidation     = errors.New("failed validation")
	ErrRecordNotFound       = errors.New("record not found")
	ErrEditConflict         = errors.New("edit conflict")
	ErrLockConflict         = errors.New("lock conflict")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrContentTooLarge      = errors.New("content too large")
	ErrBadRequest           = errors.New("bad request")
	ErrDuplicateRecord      = errors.New("duplicate record")
	ErrNotPermitted         = errors.New("not permitted")
)

// detailError pairs one of the sentinel errors above with a human-readable
// message built from a validation error map. errors.Is matches the sentinel
// through Unwrap, so the sentinels themselves are never reassigned and stay
// safe to compare against under concurrent requests.
type detailError struct {
	sentinel error
	msg      string
}

func (e *detailError) Error() string { return e.msg }

func (e *detailError) Unwrap() error { return e.sentinel }

func withDetail(sentinel error, errorMap map[string]string) error {
	msg := sentinel.Error()
	for k, v := range errorMap {
		msg = fmt.Sprintf("%q %s", k, v)
	}
	return &detailError{sentinel: sentinel, msg: msg}
}

// failedValidation loops through a validation error map and returns an error
// wrapping ErrFailedValidation with the key and value of the map.
func (s *service) failedValidation(errorMap map[string]string) error {
	return withDetail(ErrFailedValidation, errorMap)
}

// duplicateRecord does the same for ErrDuplicateRecord.
func (s *service) duplicateRecord(errorMap map[string]string) error {
	return withDetail(ErrDuplicateRecord, errorMap)
}
