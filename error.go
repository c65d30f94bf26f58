package slidecheck

import "fmt"

// ErrSlideIndex error type
type ErrSlideIndex struct {
	Index int
	Total int
}

// Error ...
func (e *ErrSlideIndex) Error() string {
	return fmt.Sprintf("[slidecheck] slide %d is out of range 1..%d", e.Index, e.Total)
}

// ErrActiveCount error type, exactly one slide must carry the active marker after activation
type ErrActiveCount struct {
	Index int
	Count int
}

// Error ...
func (e *ErrActiveCount) Error() string {
	return fmt.Sprintf("[slidecheck] activating slide %d left %d active slides, expect 1", e.Index, e.Count)
}

// ErrStep wraps the error of a step of the run with the slide it belongs to
type ErrStep struct {
	Step  string
	Index int // 0 when the step is not bound to a slide
	Err   error
}

// Error ...
func (e *ErrStep) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("[slidecheck] %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("[slidecheck] %s slide %d: %v", e.Step, e.Index, e.Err)
}

// Unwrap ...
func (e *ErrStep) Unwrap() error {
	return e.Err
}
