// config.go implements the "docrec config" command for configuration
// management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.docrec/config.yaml) takes precedence over global (~/.docrec/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package core

import (
	"fmt"

	"github.com/jpl-au/docrec/cmd"
	"github.com/jpl-au/docrec/extension"
	"github.com/jpl-au/docrec/internal/config"
	"github.com/jpl-au/docrec/internal/log"
	"github.com/spf13/cobra"
)

// configValue is the structured form of a single key.
type configValue struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	Set   bool   `json:"set" yaml:"set"`
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`
}

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  docrec config                         # show config
  docrec config format.date             # show format.date value
  docrec config format.date relative    # set format.date

Configuration locations:
  Global: ~/.docrec/config.yaml
  Local:  .docrec/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.docrec/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		// Show all values in key order
		all := cfg.All()
		values := make([]configValue, 0, len(all))
		for _, k := range config.ValidKeys() {
			values = append(values, configValue{Key: k, Value: all[k], Set: cfg.IsSet(k)})
		}
		log.Event("core:config", "list").Detail("scope", scopeName).Write(nil)
		if cmd.Structured() {
			return cmd.PrintData(values)
		}
		for _, v := range values {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", v.Key, v.Value)
		}

	case 1:
		// Get single value
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.Structured() {
			return cmd.PrintData(configValue{Key: args[0], Value: v, Set: cfg.IsSet(args[0])})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		// Set value - write to same place we read from
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.Structured() {
			return cmd.PrintData(configValue{Key: args[0], Value: args[1], Set: true, Scope: scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
