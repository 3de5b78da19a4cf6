// Package records provides the document record extension.
// Registers commands: new, search, show.
//
// Each command loads its input through internal/loader, works on the
// resulting documents in memory and prints them through the shared
// formatter. Nothing is persisted; the audit log records what ran.

package records

import (
	"fmt"

	"github.com/jpl-au/docrec/cmd"
	"github.com/jpl-au/docrec/document"
	"github.com/jpl-au/docrec/extension"
	"github.com/jpl-au/docrec/internal/config"
	"github.com/jpl-au/docrec/internal/format"
	"github.com/jpl-au/docrec/internal/loader"
	"github.com/jpl-au/docrec/internal/validate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the records extension.
type Extension struct {
	cfg       *config.Config
	log       *zap.Logger
	formatter document.Formatter
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "records" - this extension builds, filters and prints records.
func (e *Extension) Name() string { return "records" }

// Init takes the shared config, logger and formatter.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	e.log = ctx.Logger()
	e.formatter = ctx.Formatter()
	return nil
}

// Commands returns the record commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newNewCmd(),
		e.newSearchCmd(),
		e.newShowCmd(),
	}
}

// addLoadFlags registers the flags that shape how a single input becomes a
// record.
func addLoadFlags(c *cobra.Command) {
	c.Flags().String(extension.FlagTitle, "", "Title to use instead of @title, heading or file name")
	c.Flags().StringArrayP(extension.FlagTag, "t", nil, "Tag to add (repeat the flag for more than one)")
}

// loadOptions builds loader options from config and the directory flags.
func (e *Extension) loadOptions(c *cobra.Command) loader.Options {
	opts := loader.Options{
		MaxContent: e.cfg.MaxContent(),
		IDs:        e.cfg.Generator(),
		Stdin:      c.InOrStdin(),
		Logger:     e.log,
	}
	opts.Hidden, _ = c.Flags().GetBool(extension.FlagIncludeHidden)
	opts.Strict, _ = c.Flags().GetBool(extension.FlagStrict)
	return opts
}

// recordOptions is loadOptions plus the --title and --tag values registered
// by addLoadFlags.
func (e *Extension) recordOptions(c *cobra.Command) (loader.Options, error) {
	opts := e.loadOptions(c)
	opts.Title, _ = c.Flags().GetString(extension.FlagTitle)
	opts.Tags, _ = c.Flags().GetStringArray(extension.FlagTag)
	if err := validate.Tags(opts.Tags); err != nil {
		return opts, err
	}
	return opts, nil
}

// formatOptions returns the config defaults with global flag overrides.
func (e *Extension) formatOptions() document.FormatOptions {
	return cmd.FormatOptions(e.cfg.FormatOptions())
}

// printOne writes a single formatted record as text, JSON or YAML.
func printOne(f document.Formatted) error {
	if cmd.Structured() {
		return cmd.PrintData(f)
	}
	return format.Block(cmd.Out(), f)
}

// formatOne formats doc, naming the source in any error.
func (e *Extension) formatOne(src loader.Source) (document.Formatted, error) {
	f, err := e.formatter.Format(src.Doc, e.formatOptions())
	if err != nil {
		return f, fmt.Errorf("format %q: %w", src.Path, err)
	}
	return f, nil
}
