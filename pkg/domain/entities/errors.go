package entities

import (
	"errors"
	"fmt"
)

// ErrMissingCategory indicates a blank category cell. The row is skipped and
// processing continues.
var ErrMissingCategory = errors.New("category cell is blank")

// MalformedPositionError indicates a position cell that is not a dotted
// sequence of non-negative integers.
type MalformedPositionError struct {
	Raw string
}

func (e *MalformedPositionError) Error() string {
	return fmt.Sprintf("malformed position %q", e.Raw)
}

// UnknownCategoryError indicates a category cell that matches none of the
// known category names.
type UnknownCategoryError struct {
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Value)
}

// MalformedAmountError indicates an amount cell that does not parse as a
// number.
type MalformedAmountError struct {
	Raw string
}

func (e *MalformedAmountError) Error() string {
	return fmt.Sprintf("malformed amount %q", e.Raw)
}
