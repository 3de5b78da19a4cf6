// content.go implements input size validation.
//
// Design: Only size is checked. Documents can hold any text; the limit only
// stops an accidental read of a huge file into memory.

package validate

import "fmt"

// Size checks a byte count against maxLen. A maxLen of 0 or less means no
// limit.
func Size(n, maxLen int64) error {
	if maxLen > 0 && n > maxLen {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrContentTooLarge, n, maxLen)
	}
	return nil
}
