/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE validates global flags, builds the diagnostic
// logger and then initialises extensions. Standalone commands (config,
// guide, version) skip extension initialisation; config picks its own scope from
// --local rather than the cascade.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/docrec/document"
	"github.com/jpl-au/docrec/internal/log"
	dlogger "github.com/jpl-au/docrec/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "docrec",
	Short: "Create, search and format document records",
	Long:  `Build document records (title, content, tags, date) from text files, filter them by title, tag and date, and print them as text, JSON or YAML.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if cmd.Flags().Changed("date-format") {
			if _, err := document.ParseDateFormat(dateFormat); err != nil {
				return fmt.Errorf("--date-format: %w (valid: %v)", err, document.DateFormats())
			}
		}

		logger = dlogger.New(os.Stderr, verbose)
		cmd.SetContext(dlogger.WithLogger(cmd.Context(), logger))
		log.SetWarn(func(err error) {
			logger.Warn("audit log write failed", zap.Error(err))
		})

		if !standaloneCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "docrec search notes/", returns "search".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command.
// Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()
	_ = logger.Sync()

	if err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
