package address

import (
	"errors"
	"fmt"
)

var (
	ErrRange  = errors.New("coordinate out of range")
	ErrFormat = errors.New("malformed address")
)

// RangeError reports a coordinate (week, day, exercise, set, field) outside its domain.
type RangeError struct {
	Coordinate string
	Value      any
	Min        int
	Max        int
}

func NewRangeError(coordinate string, value any, min, max int) *RangeError {
	return &RangeError{
		Coordinate: coordinate,
		Value:      value,
		Min:        min,
		Max:        max,
	}
}

func (e *RangeError) Error() string {
	if e.Min == 0 && e.Max == 0 {
		return fmt.Sprintf("invalid %s: %v", e.Coordinate, e.Value)
	}
	return fmt.Sprintf("invalid %s: %v (must be between %d and %d)", e.Coordinate, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// FormatError reports an address string that does not match the expected shape.
type FormatError struct {
	Kind  string // "table" or "column"
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s address: %q", e.Kind, e.Input)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
