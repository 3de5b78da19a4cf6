package document

import (
	"fmt"
	"slices"
)

// FormatOptions selects what Format includes. The zero value is the default:
// no id, tags included, ISO dates. Fields left out of a literal keep their
// default.
type FormatOptions struct {
	IncludeID  bool       // default false
	OmitTags   bool       // default false, tags are included
	DateFormat DateFormat // default DateISO
}

// NewFormatOptions returns the default options: no id, tags included, ISO dates.
func NewFormatOptions() FormatOptions {
	return FormatOptions{DateFormat: DateISO}
}

// WithID sets whether the id is included.
func (o FormatOptions) WithID(include bool) FormatOptions {
	o.IncludeID = include
	return o
}

// WithTags sets whether tags are included.
func (o FormatOptions) WithTags(include bool) FormatOptions {
	o.OmitTags = !include
	return o
}

// WithDateFormat sets the date rendering mode.
func (o FormatOptions) WithDateFormat(f DateFormat) FormatOptions {
	o.DateFormat = f
	return o
}

// Formatted is the display/export projection of a Document. It shares no
// memory with the source document.
type Formatted struct {
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Date    string   `json:"date" yaml:"date"`
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Tags    []string `json:"tags,omitzero" yaml:"tags,omitempty"`
}

// Formatter projects documents using a configured DateFormatter.
type Formatter struct {
	Dates DateFormatter
}

// Format projects doc with the default Formatter.
func Format(doc Document, opts FormatOptions) (Formatted, error) {
	return Formatter{}.Format(doc, opts)
}

// Format projects doc into a fresh Formatted value.
//
// A document without title or content is rejected with ErrInvalidDocument,
// independent of how it was built. An unknown opts.DateFormat yields an
// *UnsupportedFormatError. Tags, when included, are copied.
func (f Formatter) Format(doc Document, opts FormatOptions) (Formatted, error) {
	if doc.title == "" {
		return Formatted{}, fmt.Errorf("%w: missing title", ErrInvalidDocument)
	}
	if doc.content == "" {
		return Formatted{}, fmt.Errorf("%w: missing content", ErrInvalidDocument)
	}

	date, err := f.Dates.FormatDate(doc.createdAt, opts.DateFormat)
	if err != nil {
		return Formatted{}, err
	}

	out := Formatted{
		Title:   doc.title,
		Content: doc.content,
		Date:    date,
	}
	if opts.IncludeID {
		out.ID = doc.id
	}
	if !opts.OmitTags {
		out.Tags = slices.Clone(doc.tags)
		if out.Tags == nil {
			out.Tags = []string{}
		}
	}
	return out, nil
}

// FormatAll formats docs in order, stopping at the first error.
func (f Formatter) FormatAll(docs []Document, opts FormatOptions) ([]Formatted, error) {
	out := make([]Formatted, 0, len(docs))
	for i, doc := range docs {
		fd, err := f.Format(doc, opts)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out = append(out, fd)
	}
	return out, nil
}
