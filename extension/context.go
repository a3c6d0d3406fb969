// context.go defines the Context interface for extension access to shared
// state.
//
// Extensions receive Context during Init(), not at construction, so they can
// register before the config is loaded. MCP handlers receive the same Context
// on every call.
//
// The MCP server runs tool handlers concurrently, so the loaded config is
// never handed out directly: readers get a copy and writers go through Update.

package extension

import (
	"sync"

	"github.com/jpl-au/domainguard/internal/config"
	"github.com/jpl-au/domainguard/internal/domain"
	"github.com/jpl-au/domainguard/internal/message"
)

// Context provides extensions controlled access to configuration.
type Context interface {
	// Config returns a copy of the loaded configuration.
	Config() *config.Config

	// Messages returns the catalog built from the config's overrides.
	Messages() domain.Messages

	// Update applies fn to the live configuration and saves it when fn
	// succeeds. The catalog is rebuilt afterwards.
	Update(fn func(cfg *config.Config) error) error
}

// extContext implements Context.
type extContext struct {
	mu  sync.RWMutex
	cfg *config.Config
	cat *message.Catalog
}

// NewContext creates a new extension context around cfg.
func NewContext(cfg *config.Config) (Context, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	return &extContext{cfg: cfg, cat: cat}, nil
}

func (c *extContext) Config() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.Clone()
}

func (c *extContext) Messages() domain.Messages {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat
}

func (c *extContext) Update(fn func(cfg *config.Config) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.cfg.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	cat, err := next.Catalog()
	if err != nil {
		return err
	}
	if err := next.Save(); err != nil {
		return err
	}
	c.cfg, c.cat = next, cat
	return nil
}
