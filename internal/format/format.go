// Package format renders formatted documents for CLI display.
//
// Centralises presentation so that commands deal with loading and filtering
// while this package handles column alignment, text blocks, YAML and
// terminal markdown rendering. JSON output goes through cmd.PrintJSON so
// that every command shares one JSON path.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/jpl-au/docrec/document"
)

// Style is the glamour style used for terminal rendering.
const Style = "dark"

// Block prints one document as a header followed by its content.
//
//	Title: My Report
//	Date:  2025-02-03T04:05:06.789Z
//	ID:    m6o2x1p9k3
//	Tags:  finance, q1
//
//	Quarterly numbers
func Block(w io.Writer, f document.Formatted) error {
	fmt.Fprintf(w, "Title: %s\n", f.Title)
	fmt.Fprintf(w, "Date:  %s\n", f.Date)
	if f.ID != "" {
		fmt.Fprintf(w, "ID:    %s\n", f.ID)
	}
	if f.Tags != nil {
		fmt.Fprintf(w, "Tags:  %s\n", tagList(f.Tags))
	}
	_, err := fmt.Fprintf(w, "\n%s\n", f.Content)
	return err
}

// Blocks prints each document as a Block, separated by a rule.
func Blocks(w io.Writer, fs []document.Formatted) error {
	for i, f := range fs {
		if i > 0 {
			fmt.Fprintln(w, "---")
		}
		if err := Block(w, f); err != nil {
			return err
		}
	}
	return nil
}

// Table prints one line per document with aligned columns.
//
// Column order is DATE, SIZE, [ID,] TITLE, [TAGS]. The ID and TAGS columns
// appear only when the first document carries them, which holds for the
// whole slice since all entries share one set of format options.
func Table(w io.Writer, fs []document.Formatted) error {
	if len(fs) == 0 {
		return nil
	}
	withID := fs[0].ID != ""
	withTags := fs[0].Tags != nil

	maxDate, maxTitle, maxID := len("DATE"), len("TITLE"), len("ID")
	for _, f := range fs {
		maxDate = max(maxDate, len(f.Date))
		maxTitle = max(maxTitle, len(f.Title))
		maxID = max(maxID, len(f.ID))
	}

	row := func(date, size, id, title, tags string) {
		fmt.Fprintf(w, "%-*s  %7s  ", maxDate, date, size)
		if withID {
			fmt.Fprintf(w, "%-*s  ", maxID, id)
		}
		if withTags {
			fmt.Fprintf(w, "%-*s  %s", maxTitle, title, tags)
		} else {
			fmt.Fprint(w, title)
		}
		fmt.Fprintln(w)
	}

	row("DATE", "SIZE", "ID", "TITLE", "TAGS")
	for _, f := range fs {
		row(f.Date, Size(f.Content), f.ID, f.Title, tagList(f.Tags))
	}
	return nil
}

// Size formats the byte length of content as human-readable (e.g., "1.2 KiB").
func Size(content string) string {
	return humanize.IBytes(uint64(len(content)))
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}

// Markdown renders content for a terminal.
func Markdown(content string) (string, error) {
	return glamour.Render(content, Style)
}

func tagList(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
