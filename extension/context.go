// context.go defines the Context interface for extension access to docrec
// internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions: the loaded
// config and the diagnostic logger.
//
// Design: Context is an interface so tests can pass their own config and an
// observer logger. Extensions receive it during Init(), not at construction,
// because they register before config has been loaded.

package extension

import (
	"github.com/jpl-au/docrec/document"
	"github.com/jpl-au/docrec/internal/config"
	"go.uber.org/zap"
)

// Context provides extensions controlled access to shared resources.
type Context interface {
	// Config returns user configuration for respecting user preferences.
	Config() *config.Config

	// Logger returns the diagnostic logger (stderr).
	Logger() *zap.Logger

	// Formatter returns a document formatter using the configured zone and
	// locale.
	Formatter() document.Formatter
}

// extContext implements Context.
type extContext struct {
	cfg *config.Config
	log *zap.Logger
}

// NewContext creates a new extension context. A nil logger discards
// diagnostics.
func NewContext(cfg *config.Config, log *zap.Logger) Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &extContext{cfg: cfg, log: log}
}

func (c *extContext) Config() *config.Config { return c.cfg }

func (c *extContext) Logger() *zap.Logger { return c.log }

func (c *extContext) Formatter() document.Formatter {
	return document.Formatter{Dates: c.cfg.DateFormatter()}
}
