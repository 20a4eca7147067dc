// Package window models the detected and requested wall-clock windows and
// validates that a requested range fits inside the detected one.
package window

import "fmt"

// Window is a [Start, End) pair in total seconds since 00:00:00.
type Window struct {
	Start int
	End   int
}

// Duration returns End - Start.
func (w Window) Duration() int { return w.End - w.Start }

// Bound names the constraint a rejected range violated.
type Bound string

const (
	BoundLower Bound = "start"
	BoundUpper Bound = "end"
	BoundOrder Bound = "order"
)

// BoundError reports which bound a requested range violated. It is a
// user-facing, recoverable condition: the caller may retry with a corrected
// range without re-running earlier stages.
type BoundError struct {
	Bound    Bound
	Detected Window
	Message  string
}

func (e *BoundError) Error() string { return e.Message }

// Validate accepts requested iff
// detected.Start <= requested.Start < detected.End,
// detected.Start < requested.End <= detected.End, and
// requested.Start < requested.End. The upper bound is half-open on the
// start side: a range starting exactly at detected.End is rejected.
func Validate(detected, requested Window) error {
	if requested.Start < detected.Start || requested.Start >= detected.End {
		return &BoundError{
			Bound:    BoundLower,
			Detected: detected,
			Message: fmt.Sprintf("start time is outside the detected window: want %d <= start < %d, got %d",
				detected.Start, detected.End, requested.Start),
		}
	}
	if requested.End <= detected.Start || requested.End > detected.End {
		return &BoundError{
			Bound:    BoundUpper,
			Detected: detected,
			Message: fmt.Sprintf("end time is outside the detected window: want %d < end <= %d, got %d",
				detected.Start, detected.End, requested.End),
		}
	}
	if requested.Start >= requested.End {
		return &BoundError{
			Bound:    BoundOrder,
			Detected: detected,
			Message:  "start time must be before end time",
		}
	}
	return nil
}

// Relative converts the requested window to offsets from detected.Start.
// Call Validate first; Relative assumes the range fits.
func Relative(detected, requested Window) Window {
	return Window{
		Start: requested.Start - detected.Start,
		End:   requested.End - detected.Start,
	}
}
