// tag.go implements tag flag validation.
//
// Design: Tags are free-form labels. Only clearly broken input (blank,
// null bytes, embedded commas that would split on re-read) is rejected.

package validate

import (
	"fmt"
	"strings"
)

// Tag validates a tag supplied on the command line.
func Tag(t string) error {
	if strings.TrimSpace(t) == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	if strings.ContainsRune(t, 0) {
		return fmt.Errorf("%w: null byte in tag", ErrInvalidTag)
	}
	if strings.Contains(t, ",") {
		return fmt.Errorf("%w: %q contains a comma", ErrInvalidTag, t)
	}
	return nil
}

// Tags validates each tag in order and returns the first failure.
func Tags(tags []string) error {
	for _, t := range tags {
		if err := Tag(t); err != nil {
			return err
		}
	}
	return nil
}
