// guide.go implements the "docrec guide" command for documentation access.
//
// Design: Guides are embedded in the binary via the guide package, so
// documentation is always available without external files. Terminal output
// gets glamour rendering for readability; pipe/redirect gets raw markdown.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/docrec/cmd"
	"github.com/jpl-au/docrec/guide"
	"github.com/jpl-au/docrec/internal/format"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the docrec usage guide",
		Long: `Outputs the docrec guide.

  docrec guide             # main guide
  docrec guide search      # filters and directory loading
  docrec guide directives  # @title and @tags lines`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := format.Markdown(content)
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
				cmd.Logger().Warn("markdown render failed, showing raw guide", zap.Error(err))
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}
