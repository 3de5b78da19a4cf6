// errors.go defines the failure categories for creating and formatting
// documents.
//
// Design: Sentinels carry the category and are matched with errors.Is.
// UnsupportedFormatError is the one error type because the rejected format
// name is data the caller may want to report back.

package document

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned by Create when the input cannot form a document.
	ErrValidation = errors.New("validation failed")
	// ErrEmptyTitle is the validation failure for a blank title.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	// ErrEmptyContent is the validation failure for blank content.
	ErrEmptyContent = fmt.Errorf("%w: content cannot be empty", ErrValidation)

	// ErrInvalidDocument is returned by Format when the document lacks a
	// title or content.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrUnsupportedFormat is returned when a date format name is not recognised.
	ErrUnsupportedFormat = errors.New("unsupported date format")
)

// UnsupportedFormatError wraps ErrUnsupportedFormat with the rejected format name.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedFormat.Error(), e.Format)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
