// show.go implements the "docrec show" command for reading one record.
//
// Separated from new.go to isolate terminal rendering. Terminal output gets
// glamour markdown rendering of the content; pipe/redirect gets raw text so
// the output stays greppable.

package records

import (
	"fmt"
	"os"

	"github.com/jpl-au/docrec/cmd"
	"github.com/jpl-au/docrec/extension"
	"github.com/jpl-au/docrec/internal/format"
	"github.com/jpl-au/docrec/internal/loader"
	"github.com/jpl-au/docrec/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// isTerminal reports whether stdout is a terminal. Tests replace it.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

// render draws markdown for the terminal. Tests replace it.
var render = format.Markdown

func (e *Extension) newShowCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "show <file|->",
		Short: "Show a record with rendered content",
		Long: `Show a record built from a file or stdin. On a terminal the content is
rendered as markdown; use --raw to print it unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runShow,
	}
	addLoadFlags(c)
	c.Flags().Bool(extension.FlagRaw, false, "Output raw content without rendering")
	return c
}

func (e *Extension) runShow(c *cobra.Command, args []string) error {
	p := args[0]
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	var err error

	defer func() {
		log.Event("records:show", "read").Path(p).Detail("raw", raw).Write(err)
	}()

	opts, err := e.recordOptions(c)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("show %q: %w", p, err))
	}
	src, err := loader.File(c.Context(), p, opts)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("show %q: %w", p, err))
	}

	f, err := e.formatOne(src)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if cmd.Structured() {
		return cmd.PrintData(f)
	}

	// Render with glamour if TTY and not --raw
	if !raw && isTerminal() {
		rendered, renderErr := render(f.Content)
		if renderErr == nil {
			f.Content = rendered
		} else {
			e.log.Warn("markdown render failed, showing raw content", zap.String("path", p), zap.Error(renderErr))
		}
	}
	return format.Block(cmd.Out(), f)
}
