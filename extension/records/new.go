// new.go implements the "docrec new" command for creating one record.
//
// Design: new reads exactly one input, a file or "-" for stdin, so a
// directory argument is an error rather than a silent multi-record load.
// Use search with no filters to print every record in a directory.

package records

import (
	"fmt"

	"github.com/jpl-au/docrec/cmd"
	"github.com/jpl-au/docrec/internal/loader"
	"github.com/jpl-au/docrec/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newNewCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "new <file|->",
		Short: "Create a record from a file",
		Long: `Create a record from a file or stdin and print it.

  docrec new notes/report.md
  echo "@title Idea" | docrec new - --tag draft

The title comes from --title, then an @title line, then the first markdown
heading, then the file name. Tags are --tag values followed by @tags values.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runNew,
	}
	addLoadFlags(c)
	return c
}

func (e *Extension) runNew(c *cobra.Command, args []string) error {
	p := args[0]
	var src loader.Source
	var err error

	defer func() {
		b := log.Event("records:new", "create").Path(p)
		if err == nil {
			b = b.Count(1).Detail("tags", len(src.Doc.Tags()))
		}
		b.Write(err)
	}()

	opts, err := e.recordOptions(c)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("new %q: %w", p, err))
	}
	src, err = loader.File(c.Context(), p, opts)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("new %q: %w", p, err))
	}

	f, err := e.formatOne(src)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return printOne(f)
}
