// Package validate checks CLI input before it reaches the document package.
//
// The document package validates titles and content itself. This package
// covers what arrives from the command line: input paths, tag flags and the
// size of files read from disk. Each function returns nil on success or an
// error wrapping one of the sentinels in errors.go.
//
//	if errors.Is(err, validate.ErrInvalidPath) {
//	    // handle invalid path
//	}
package validate
