// directive.go extracts inline metadata directives from document text.
//
// A text file can carry its own title and tags on lines such as:
//
//	@title Quarterly Report
//	@tags finance, q1
//
// Only the first occurrence of each directive is used. "@title" may sit
// anywhere on its line (a comment marker in front of it is fine); "@tags"
// must open its line so prose that mentions it stays content.

package document

import (
	"strings"
)

// Directive markers recognised in document text.
const (
	TitleDirective = "@title"
	TagsDirective  = "@tags"
)

// ExtractTitle returns the text after the first "@title" marker, trimmed,
// and the 1-based line it was found on. ok is false when no line contains
// the marker. A marker with nothing after it yields an empty title with ok
// true.
func ExtractTitle(text string) (title string, line int, ok bool) {
	rest, line, ok := findDirective(text, TitleDirective)
	return strings.TrimSpace(rest), line, ok
}

// ExtractTags returns the tags listed on the first line that starts with
// "@tags". Tags may be separated by commas, spaces or both.
func ExtractTags(text string) []string {
	rest, _, ok := findTagsDirective(text)
	if !ok {
		return nil
	}
	return strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// StripDirectives removes the lines ExtractTitle and ExtractTags read from.
// Other lines, including repeated directives, are kept as content.
func StripDirectives(text string) string {
	_, titleLine, _ := findDirective(text, TitleDirective)
	_, tagsLine, _ := findTagsDirective(text)
	if titleLine == 0 && tagsLine == 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for i, l := range lines {
		if n := i + 1; n == titleLine || n == tagsLine {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}

func findDirective(text, marker string) (rest string, line int, ok bool) {
	for i, l := range strings.Split(text, "\n") {
		if _, after, found := strings.Cut(l, marker); found {
			return strings.TrimSuffix(after, "\r"), i + 1, true
		}
	}
	return "", 0, false
}

func findTagsDirective(text string) (rest string, line int, ok bool) {
	for i, l := range strings.Split(text, "\n") {
		after, found := strings.CutPrefix(strings.TrimLeft(l, " \t"), TagsDirective)
		if found && (after == "" || after[0] == ' ' || after[0] == '\t' || after[0] == '\r') {
			return strings.TrimSuffix(after, "\r"), i + 1, true
		}
	}
	return "", 0, false
}
