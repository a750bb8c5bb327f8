package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrAuthenticationRequired rejects a submission made without a session.
	ErrAuthenticationRequired = errors.New("needs login")

	// ErrNoItems rejects a submission whose item source is empty.
	ErrNoItems = errors.New("order has no items")
)

// ValidationError carries the field-level messages that rejected a
// submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "order validation failed: " + strings.Join(parts, "; ")
}

// PersistenceError means the order was not recorded and is not placed.
type PersistenceError struct {
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order could not be saved: %v", e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
