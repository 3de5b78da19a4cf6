/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before config is loaded. The context is created once
// and shared across all extensions.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/jpl-au/docrec/extension"
	"github.com/jpl-au/docrec/internal/config"
	"github.com/jpl-au/docrec/internal/log"
)

// standaloneCommands lists commands that bypass extension initialisation.
// Built from extension-declared standalone commands.
var standaloneCommands map[string]bool

// buildStandaloneCommands creates the set of commands that skip
// initialisation.
//
// Commands that load their own config scope (config) or need nothing at
// all (version) declare themselves through extension.Standalone.
func buildStandaloneCommands() map[string]bool {
	cmds := extension.StandaloneNames()
	cmds["help"] = true
	cmds["completion"] = true
	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config and injects the shared context into extensions.
//
// sync.Once guarantees exactly one initialisation per process, so every
// extension sees the same config and logger.
func initExtensions() error {
	initOnce.Do(func() {
		// Set project identifier for audit logging
		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}

		cfg, err := config.Load()
		if err != nil {
			initErr = fmt.Errorf("loading config: %w", err)
			return
		}
		extContext = extension.NewContext(cfg, logger)
		initErr = extension.Init(extContext)
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		rootCmd.AddCommand(extension.Commands()...)

		standaloneCommands = buildStandaloneCommands()
	})
}
