package validate

import (
	"fmt"
	"os"
	"strings"
)

// Stdin is the path argument that means "read standard input".
const Stdin = "-"

// Args checks that at least one input path was given and that each one is
// usable. Stdin is accepted without touching the filesystem.
func Args(args []string) error {
	if len(args) == 0 {
		return ErrMissingPath
	}
	for _, a := range args {
		if err := Path(a); err != nil {
			return err
		}
	}
	return nil
}

// Path validates a single input path.
//
// Validation rules:
//   - Blank paths rejected
//   - Null bytes rejected
//   - The path must exist
func Path(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidPath)
	}
	if p == Stdin {
		return nil
	}
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q does not exist", ErrInvalidPath, p)
		}
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	return nil
}
