// Package extension provides the plugin architecture for domainguard.
// Extensions encapsulate related functionality (commands, MCP tools) and
// register at init time, so features can be added without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for domainguard extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Configless is an optional interface for extensions with commands that
// don't need the configuration loaded. Commands returned by
// NoConfigCommands() skip context initialisation in PersistentPreRunE, so
// they keep working when the config file is malformed.
//
// Use cases:
//  1. Commands that repair or inspect the config themselves (config)
//  2. Commands that only print embedded content (guide, version)
type Configless interface {
	NoConfigCommands() []string
}
