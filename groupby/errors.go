package groupby

import (
	"errors"
	"fmt"
)

// ErrSelector matches every error returned because a selector function
// failed. Use [errors.Is]:
//
//	_, err := groupby.Group(items, fn)
//	if errors.Is(err, groupby.ErrSelector) {
//	    // fn returned an error; errors.Unwrap(err) is fn's own error
//	}
var ErrSelector = errors.New("groupby: selector failed")

// SelectorError reports the element at which a selector function failed.
// It unwraps to the selector's own error.
type SelectorError struct {
	// Index is the element's position in the normalised collection.
	Index int
	// Element is the element the selector was evaluating.
	Element any
	// Err is the error returned by the selector.
	Err error
}

// Error implements error.
func (e *SelectorError) Error() string {
	return fmt.Sprintf("groupby: selector failed at index %d: %v", e.Index, e.Err)
}

// Unwrap returns the selector's error.
func (e *SelectorError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrSelector].
func (e *SelectorError) Is(target error) bool { return target == ErrSelector }
