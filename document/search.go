package document

import (
	"strings"
	"time"
)

// Criteria selects documents. Each zero-valued field is absent and matches
// everything; the supplied fields are combined with AND.
type Criteria struct {
	Title string    // case-insensitive substring of the title
	Tag   string    // case-insensitive exact tag
	From  time.Time // inclusive lower bound on CreatedAt
	To    time.Time // inclusive upper bound on CreatedAt
}

// IsEmpty reports whether c matches every document.
func (c Criteria) IsEmpty() bool {
	return c.Title == "" && c.Tag == "" && c.From.IsZero() && c.To.IsZero()
}

// Matches reports whether doc satisfies every supplied criterion.
func (c Criteria) Matches(doc Document) bool {
	if c.Title != "" && !strings.Contains(strings.ToLower(doc.title), strings.ToLower(c.Title)) {
		return false
	}
	if c.Tag != "" && !doc.HasTag(c.Tag) {
		return false
	}
	if !c.From.IsZero() && doc.createdAt.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && doc.createdAt.After(c.To) {
		return false
	}
	return true
}

// Search returns the documents matching c in their input order. The result
// is a new slice and is never nil; docs is not modified.
func Search(docs []Document, c Criteria) []Document {
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if c.Matches(doc) {
			out = append(out, doc)
		}
	}
	return out
}
