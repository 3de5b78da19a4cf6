// Package progress reports loader progress on stderr. Output stays off stdout
// so formatted records can be piped, and nothing is drawn unless the writer
// is a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
// Loading a handful of files is quick enough that a counter is just noise.
const minItems = 5

// clearWidth is how many columns Done and Stop blank out.
const clearWidth = 60

// Progress tracks and displays how many files have been read.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
}

// New creates a progress reporter that writes to stderr.
// If total is less than minItems, progress updates are suppressed.
func New(label string, total int) *Progress {
	return NewWriter(os.Stderr, isTerminal(os.Stderr), label, total)
}

// NewWriter creates a progress reporter on w. tty decides whether lines are
// redrawn in place or suppressed.
func NewWriter(w io.Writer, tty bool, label string, total int) *Progress {
	return &Progress{w: w, label: label, total: total, isTTY: tty}
}

// Increment advances the counter by one and redraws the line.
func (p *Progress) Increment() {
	p.current++
	p.Print()
}

// Current returns the number of completed items.
func (p *Progress) Current() int { return p.current }

// Print writes the current progress. On a terminal it overwrites the line
// in place; otherwise it does nothing.
func (p *Progress) Print() {
	if p.total < minItems || !p.isTTY {
		return
	}

	pct := 0
	if p.total > 0 {
		pct = (p.current * 100) / p.total
	}
	fmt.Fprintf(p.w, "\r%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if p.total < minItems || !p.isTTY {
		return
	}
	clearLine(p.w)
}

// Spinner shows that a directory walk is underway before the file count is
// known.
type Spinner struct {
	w       io.Writer
	label   string
	frame   int
	isTTY   bool
	frames  []string
	running bool
}

// NewSpinner creates a spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return NewSpinnerWriter(os.Stderr, isTerminal(os.Stderr), label)
}

// NewSpinnerWriter creates a spinner on w.
func NewSpinnerWriter(w io.Writer, tty bool, label string) *Spinner {
	return &Spinner{
		w:      w,
		label:  label,
		isTTY:  tty,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start displays the spinner.
func (s *Spinner) Start() {
	if !s.isTTY {
		return
	}
	s.running = true
	fmt.Fprintf(s.w, "%s %s...", s.frames[0], s.label)
}

// Tick advances the spinner animation by one frame.
func (s *Spinner) Tick() {
	if !s.isTTY || !s.running {
		return
	}
	s.frame = (s.frame + 1) % len(s.frames)
	fmt.Fprintf(s.w, "\r%s %s...", s.frames[s.frame], s.label)
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if !s.isTTY || !s.running {
		return
	}
	s.running = false
	clearLine(s.w)
}

func clearLine(w io.Writer) {
	fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", clearWidth))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
