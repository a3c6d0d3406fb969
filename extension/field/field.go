// Package field provides the field extension for domainguard.
// It registers commands: field (with subcommands ls, show, get, set, add, rm).
package field

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the field extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "field" - this extension edits profile field settings.
func (e *Extension) Name() string { return "field" }

// Init receives the shared context.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the field command with its subcommands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newFieldCmd(),
	}
}

// MCPTools returns domain_fields and domain_field_set.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		fieldsTool(),
		fieldSetTool(),
	}
}
