package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an author is not in a spammer list
	ErrNotFound = errors.New("not found")
	// ErrMissingColumn is returned when an input header lacks a required column
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformedRow marks a single input row that could not be used
	ErrMalformedRow = errors.New("malformed row")
	// ErrNoInput is returned when a sweep is started without an input location
	ErrNoInput = errors.New("no input location")
)

// NotFoundError is returned by Remove when the author is not listed.
// It is an operator mistake, not a fatal condition.
type NotFoundError struct {
	Author string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("author %q not in spammer list: %v", e.Author, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// MalformedRowError describes an input row that was skipped
type MalformedRowError struct {
	Line int
	Err  error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *MalformedRowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}
