// tools.go implements the check extension's MCP tools.
//
// Lists may arrive as JSON arrays or as newline-delimited text, the same
// shape an admin pastes into the settings textarea.

package check

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/domain"
	"github.com/jpl-au/domainguard/internal/log"
)

func validateTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("domain_validate",
			mcp.WithDescription("Check an email address against allowed and disallowed domain patterns. Without lists, checks through the configured Email profile field."),
			mcp.WithString("email", mcp.Required(), mcp.Description("Value entered in the email field")),
			mcp.WithArray("allowed", mcp.Description("Allowed domain patterns"), mcp.WithStringItems()),
			mcp.WithArray("disallowed", mcp.Description("Disallowed domain patterns"), mcp.WithStringItems()),
			mcp.WithString("allowed_text", mcp.Description("Allowed patterns, one per line")),
			mcp.WithString("disallowed_text", mcp.Description("Disallowed patterns, one per line")),
			mcp.WithBoolean("show_list", mcp.Description("Append the pattern list to the failure message")),
			mcp.WithString("field", mcp.Description("Profile field to check through")),
			mcp.WithBoolean("lint", mcp.Description("Report patterns that can never match")),
		),
		Handler: handleValidate,
	}
}

func handleValidate(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError("email is required"), nil //nolint:nilerr
	}

	r := Request{
		Value:      email,
		Allowed:    listArg(req, "allowed"),
		Disallowed: listArg(req, "disallowed"),
		Field:      extension.ArgString(req, "field", ""),
		Lint:       extension.ArgBool(req, "lint", false),
	}
	if args, ok := req.Params.Arguments.(map[string]any); ok {
		if v, ok := args["show_list"].(bool); ok {
			r.ShowList = &v
		}
	}

	out, err := Evaluate(extCtx.Config(), extCtx.Messages(), r)
	l := log.Event("mcp:domain_validate", "validate").Author("mcp").Subject(email)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Field(out.Field).Outcome(out.Kind.String()).Write(nil)
	return extension.JSONResult(out)
}

// listArg merges the array form of name with its "_text" form.
func listArg(req mcp.CallToolRequest, name string) domain.PatternList {
	l := domain.NormalizePatternList(extension.ArgStrings(req, name))
	return append(l, domain.NormalizePatternList(extension.ArgString(req, name+"_text", ""))...)
}

func extractTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("domain_extract",
			mcp.WithDescription("Return the domain part of an email address: the text after the last '@'"),
			mcp.WithString("value", mcp.Required(), mcp.Description("Email address")),
		),
		Handler: handleExtract,
	}
}

func handleExtract(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}
	d, ok := domain.ExtractDomain(value)
	log.Event("mcp:domain_extract", "extract").Author("mcp").Subject(value).Detail("found", ok).Write(nil)
	return extension.JSONResult(map[string]any{"value": value, "domain": d, "found": ok})
}

func matchTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("domain_match",
			mcp.WithDescription("Test a domain against wildcard patterns. '*' matches any run of characters, '?' exactly one. Case-insensitive, whole-domain."),
			mcp.WithString("domain", mcp.Required(), mcp.Description("Domain to test")),
			mcp.WithArray("patterns", mcp.Required(), mcp.Description("Patterns to test against"), mcp.WithStringItems()),
		),
		Handler: handleMatch,
	}
}

func handleMatch(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := req.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError("domain is required"), nil //nolint:nilerr
	}
	patterns := domain.NormalizePatternList(extension.ArgStrings(req, "patterns"))

	p, ok := domain.FirstMatch(d, patterns)
	log.Event("mcp:domain_match", "match").Author("mcp").Subject(d).Detail("patterns", len(patterns)).Write(nil)
	return extension.JSONResult(map[string]any{"domain": d, "matched": ok, "pattern": p})
}
