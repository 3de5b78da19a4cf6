package document

import (
	"slices"
	"strings"
	"time"
)

// Document is an immutable record: a titled piece of content with tags and
// a creation timestamp. Construct one with Create or Factory.Create.
//
// The zero Document has no title or content and is rejected by Format.
type Document struct {
	id        string
	title     string
	content   string
	createdAt time.Time
	tags      []string
}

// ID returns the generated identifier.
func (d Document) ID() string { return d.id }

// Title returns the trimmed title.
func (d Document) Title() string { return d.title }

// Content returns the trimmed content.
func (d Document) Content() string { return d.content }

// CreatedAt returns the time the document was created.
func (d Document) CreatedAt() time.Time { return d.createdAt }

// Tags returns a copy of the lowercase tags in input order.
func (d Document) Tags() []string { return slices.Clone(d.tags) }

// HasTag reports whether the document carries tag, compared case-insensitively.
func (d Document) HasTag(tag string) bool {
	return slices.Contains(d.tags, strings.ToLower(tag))
}

// Factory creates documents with a replaceable identifier strategy and clock.
// The zero Factory uses TimeRandomID and time.Now.
type Factory struct {
	IDs   IDGenerator
	Clock func() time.Time
}

// Create validates and creates a Document using the default Factory.
func Create(title, content string, tags ...string) (Document, error) {
	return Factory{}.Create(title, content, tags...)
}

// Create validates and creates a Document.
//
// Title and content are trimmed and must not be blank; the title is checked
// first. Tags are lowercased, keeping order and duplicates.
func (f Factory) Create(title, content string, tags ...string) (Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Document{}, ErrEmptyTitle
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Document{}, ErrEmptyContent
	}

	lowered := make([]string, len(tags))
	for i, t := range tags {
		lowered[i] = strings.ToLower(t)
	}

	return Document{
		id:        f.ids().NewID(),
		title:     title,
		content:   content,
		createdAt: f.now(),
		tags:      lowered,
	}, nil
}

func (f Factory) ids() IDGenerator {
	if f.IDs == nil {
		return TimeRandomID{}
	}
	return f.IDs
}

func (f Factory) now() time.Time {
	if f.Clock == nil {
		return time.Now()
	}
	return f.Clock()
}
