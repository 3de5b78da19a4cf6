// registry.go holds the process-wide list of extensions.
//
// Extensions add themselves from init(), so the list is complete before
// cmd builds the command tree. The cmd package only asks the registry for
// commands, standalone names and initialisation; it never walks extensions
// itself.

package extension

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
)

var (
	mu    sync.RWMutex
	names = make(map[string]bool)
	exts  []Extension // registration order
)

// Register adds e to the registry. A second extension with the same name is
// a wiring mistake in the binary and panics, as database/sql.Register does.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if names[name] {
		panic("extension already registered: " + name)
	}
	names[name] = true
	exts = append(exts, e)
}

// All returns the registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Extension, len(exts))
	copy(out, exts)
	return out
}

// Commands returns every extension's commands, grouped by extension in
// registration order.
func Commands() []*cobra.Command {
	var cmds []*cobra.Command
	for _, e := range All() {
		cmds = append(cmds, e.Commands()...)
	}
	return cmds
}

// StandaloneNames returns the top-level command names that run without the
// shared Context.
func StandaloneNames() map[string]bool {
	set := make(map[string]bool)
	for _, e := range All() {
		if s, ok := e.(Standalone); ok {
			for _, name := range s.StandaloneCommands() {
				set[name] = true
			}
		}
	}
	return set
}

// Init hands ctx to every Initializable extension, stopping at the first
// failure.
func Init(ctx Context) error {
	for _, e := range All() {
		if i, ok := e.(Initializable); ok {
			if err := i.Init(ctx); err != nil {
				return fmt.Errorf("init extension %s: %w", e.Name(), err)
			}
		}
	}
	return nil
}
