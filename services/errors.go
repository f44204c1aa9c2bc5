package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error taxonomy surfaced to controllers. Everything a service returns wraps
// one of these, so handlers can map with errors.Is without string matching.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrStorage      = errors.New("storage failure")
)

// storeErr classifies a persistence error: a missing row is NotFound,
// anything else is an opaque storage failure (details stay in the wrap for
// logs, handlers show a generic message).
func storeErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
