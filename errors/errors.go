// Package errors accumulates several independent failures into one error value.
package errors

import (
	"errors"
	"fmt"
)

// Collection is a thread-unsafe accumulator of errors. The zero value keeps every error;
// NewCollection caps how many are retained and counts the rest.
type Collection struct {
	errors  []error
	limit   int
	dropped int
}

// NewCollection returns a Collection that retains at most limit errors.
// A limit of zero or less means no cap.
func NewCollection(limit int) *Collection {
	return &Collection{limit: limit}
}

// Add records err. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err == nil {
		return
	}

	if c.limit > 0 && len(c.errors) >= c.limit {
		c.dropped++

		return
	}

	c.errors = append(c.errors, err)
}

// Clear resets the collection.
func (c *Collection) Clear() {
	c.errors = nil
	c.dropped = 0
}

// HasError returns true if at least one error was added.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors added, including those dropped by the cap.
func (c *Collection) Len() int {
	return len(c.errors) + c.dropped
}

// Errors returns the retained errors.
func (c *Collection) Errors() []error {
	return c.errors
}

// GetError returns nil, the single error, or an errors.Join of all retained errors.
// When the cap dropped errors, a final line reports how many.
func (c *Collection) GetError() error {
	switch {
	case len(c.errors) == 0:
		return nil
	case len(c.errors) == 1 && c.dropped == 0:
		return c.errors[0]
	case c.dropped == 0:
		return errors.Join(c.errors...)
	default:
		all := append([]error{}, c.errors...)

		return errors.Join(append(all, fmt.Errorf("... and %d more", c.dropped))...) //nolint:err113
	}
}
