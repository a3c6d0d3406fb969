/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until the first
// command that needs configuration runs. The config is loaded once and
// shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/config"
)

// noConfigCommands lists commands that skip extension initialisation.
// Built from extension-declared configless commands.
var noConfigCommands map[string]bool

// buildNoConfigCommands creates the set of commands that skip initialisation.
// Extensions declare them by implementing extension.Configless.
func buildNoConfigCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Configless); ok {
			for _, name := range s.NoConfigCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads the config and injects the shared context into
// every Initializable extension. Runs once per process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext, err = extension.NewContext(cfg)
		if err != nil {
			initErr = fmt.Errorf("message catalog: %w", err)
			return
		}

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// ExtContext returns the shared extension context, or nil before
// initialisation.
func ExtContext() extension.Context {
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noConfigCommands = buildNoConfigCommands()
	})
}
