// serve.go implements the "domainguard serve" command.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/cmd"
	"github.com/jpl-au/domainguard/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio so agents can
validate addresses and inspect profile fields.

The server uses the same config as the CLI: local if present, otherwise global.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(cmd.ExtContext())
		},
	}
}
