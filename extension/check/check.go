// Package check provides the check extension for domainguard.
// It registers commands: check, match, extract.
package check

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "check".
func (e *Extension) Name() string { return "check" }

// Init receives the shared context.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns check, match and extract.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newCheckCmd(),
		e.newMatchCmd(),
		e.newExtractCmd(),
	}
}

// MCPTools returns domain_validate, domain_extract and domain_match.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		validateTool(),
		extractTool(),
		matchTool(),
	}
}
