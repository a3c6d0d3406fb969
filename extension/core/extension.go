// Package core provides the core extension for domainguard.
// It registers commands: init, config, serve, guide, log, version.
package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance.
var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.Configless = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newInitCmd(),
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newLogCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns the guide tool. Config tools live with the server.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{guideTool()}
}

// NoConfigCommands returns commands that load the config themselves or
// never read it.
// init, config: create or repair the config file, so must run when it is broken.
// guide, version, log: print embedded content, build info or the audit log.
func (e *Extension) NoConfigCommands() []string {
	return []string{"init", "config", "guide", "log", "version"}
}
