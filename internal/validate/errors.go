// errors.go defines sentinel errors for validation failures.
//
// Design: Sentinel errors (not error types) because validation failures
// don't carry additional context beyond the category. Detailed messages
// are provided by wrapping these with fmt.Errorf in the validation functions.

package validate

import "errors"

var (
	ErrMissingPath     = errors.New("no input path provided")
	ErrInvalidPath     = errors.New("invalid path")
	ErrContentTooLarge = errors.New("content too large")
	ErrInvalidTag      = errors.New("invalid tag")
)
