package service

import (
	"errors"
	"strings"
)

var (
	// ErrStore marks any failure while reading from or writing to the store.
	ErrStore         = errors.New("store operation failed")
	ErrOrderNotFound = errors.New("order not found")
)

// ValidationError is returned before any store access when required input is missing.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + " (missing: " + strings.Join(e.Fields, ", ") + ")"
}
