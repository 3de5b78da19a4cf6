// Package all imports all built-in docrec extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/docrec/extension/core"
	_ "github.com/jpl-au/docrec/extension/records"
)
