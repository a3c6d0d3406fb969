// guide.go implements the "domainguard guide" command and MCP tool.
//
// Guides are embedded in the binary. Terminal output gets glamour rendering;
// pipe/redirect gets raw markdown for scripts and agent context loading.

package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/domainguard/cmd"
	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/guide"
	"github.com/jpl-au/domainguard/internal/log"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the domainguard usage guide",
		Long: `Outputs the domainguard guide.

  domainguard guide            # main guide
  domainguard guide patterns   # wildcard syntax
  domainguard guide check      # the check, match and extract commands`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}

func guideTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("domain_guide",
			mcp.WithDescription("Get guide content for domainguard: pattern syntax, the validation rule, field settings"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'patterns', 'check', 'field') or empty for the main guide")),
		),
		Handler: handleGuide,
	}
}

func handleGuide(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := extension.ArgString(req, "topic", "")

	content, err := guide.Get(topic)
	log.Event("mcp:domain_guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return extension.JSONResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}
	return mcp.NewToolResultText(content), nil
}
