/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. Format flags only override config when they were given on
// the command line, so "docrec config format.include_tags false" is not
// silently undone by a flag default.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/docrec/document"
	"github.com/jpl-au/docrec/internal/format"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validOutputFormats = []string{"json", "yaml"}

var (
	output     string
	dateFormat string
	includeID  bool
	noTags     bool
	verbose    bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// logger is the diagnostic logger, built in PersistentPreRunE.
var logger = zap.NewNop()

// Exported accessors for extensions.
// Extensions use these to access shared CLI state.

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Verbose returns the verbose flag value.
func Verbose() bool { return verbose }

// Logger returns the diagnostic logger.
func Logger() *zap.Logger { return logger }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// YAML returns true if YAML output is requested.
func YAML() bool { return output == "yaml" }

// Structured returns true if any machine-readable output is requested.
func Structured() bool { return JSON() || YAML() }

// FormatOptions applies the global format flags on top of base, which
// normally comes from config. Only flags set on the command line apply.
func FormatOptions(base document.FormatOptions) document.FormatOptions {
	flags := rootCmd.PersistentFlags()
	opts := base
	if flags.Changed("id") {
		opts = opts.WithID(includeID)
	}
	if flags.Changed("no-tags") {
		opts = opts.WithTags(!noTags)
	}
	if flags.Changed("date-format") {
		// Validated in PersistentPreRunE.
		f, _ := document.ParseDateFormat(dateFormat)
		opts = opts.WithDateFormat(f)
	}
	return opts
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintYAML writes v as YAML to the output writer.
// Returns nil if output format is not YAML.
func PrintYAML(v any) error {
	if output != "yaml" {
		return nil
	}
	return format.YAML(out, v)
}

// PrintData writes v in whichever structured format was requested.
func PrintData(v any) error {
	if YAML() {
		return PrintYAML(v)
	}
	return PrintJSON(v)
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// We ignore the error from PrintJSON here because if we can't print the error,
	// checking it is futile. We just return nil to suppress Cobra's duplicate printing.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json, yaml")
	rootCmd.PersistentFlags().StringVar(&dateFormat, "date-format", "", "Date format: ISO, local, relative")
	rootCmd.PersistentFlags().BoolVar(&includeID, "id", false, "Include document ids in output")
	rootCmd.PersistentFlags().BoolVar(&noTags, "no-tags", false, "Omit tags from output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug diagnostics on stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("date-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range document.DateFormats() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}
