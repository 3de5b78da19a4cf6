// Package core provides the core extension for docrec.
// It registers commands: config, guide, version.
package core

import (
	"github.com/jpl-au/docrec/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.Standalone = (*Extension)(nil)
)

// Name returns "core" - this extension provides the housekeeping commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// StandaloneCommands returns every core command: none of them needs the
// shared context.
// config: Loads the scope chosen by --local itself.
// guide: Prints embedded pages.
// version: Displays build info.
func (e *Extension) StandaloneCommands() []string {
	return []string{"config", "guide", "version"}
}
