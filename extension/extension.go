// Package extension provides the plugin architecture for docrec. Extensions
// encapsulate related commands and register at init time, so new commands
// can be added without touching the cmd package.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for docrec extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions receive the shared context before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// don't need the shared context. Commands returned by StandaloneCommands()
// will not trigger initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Commands that load config themselves (config --local)
// 2. Utility commands that need nothing (version)
type Standalone interface {
	StandaloneCommands() []string
}
