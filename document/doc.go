// Package document models small in-memory document records and the three
// operations callers perform on them: creating a record from raw input,
// filtering a collection of records, and projecting a record into a shape
// suitable for display or export.
//
// # Creating
//
// Create trims and validates the title and content, lowercases tags and
// stamps the record with a generated identifier and the current time:
//
//	doc, err := document.Create("  My Report  ", "Body text", "Important", "Q1")
//	if errors.Is(err, document.ErrValidation) {
//	    // blank title or content
//	}
//
// A Factory can be used instead of Create when the identifier strategy or
// the clock must be replaced (tests, bulk loading from files).
//
// # Searching
//
// Search is a pure filter. Every non-zero field of Criteria must match;
// the zero Criteria matches everything:
//
//	hits := document.Search(docs, document.Criteria{Tag: "important"})
//
// # Formatting
//
// Format copies the fields a caller asked for into a fresh Formatted value
// and renders the creation time with one of the DateFormat modes:
//
//	out, err := document.Format(doc, document.NewFormatOptions().WithID(true))
//
// # Errors
//
// All failures wrap one of the sentinel errors in errors.go. Use errors.Is
// for the category and errors.As with *UnsupportedFormatError to recover the
// rejected format name.
//
// The package keeps no state between calls and performs no I/O or logging,
// so every function is safe to call from multiple goroutines.
package document
