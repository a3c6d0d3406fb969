// tools.go implements the field extension's MCP tools.

package field

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/log"
	"github.com/jpl-au/domainguard/internal/profile"
)

func fieldsTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("domain_fields",
			mcp.WithDescription("List profile fields, or show one field with its editor layout"),
			mcp.WithString("name", mcp.Description("Field name; empty lists every field")),
		),
		Handler: handleFields,
	}
}

func handleFields(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := extCtx.Config()
	name := extension.ArgString(req, "name", "")
	if name == "" {
		log.Event("mcp:domain_fields", "list").Author("mcp").Detail("count", len(cfg.Fields)).Write(nil)
		fields := cfg.Fields
		if fields == nil {
			fields = []profile.Field{}
		}
		return extension.JSONResult(fields)
	}

	pf, err := cfg.Field(name)
	log.Event("mcp:domain_fields", "show").Author("mcp").Field(name).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(map[string]any{"field": pf, "layout": pf.CMSFields()})
}

func fieldSetTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("domain_field_set",
			mcp.WithDescription("Change one profile field setting and save the config. Lists are newline-delimited; the result carries a diff for list keys."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Field name")),
			mcp.WithString("key", mcp.Required(),
				mcp.Description("Setting to change"),
				mcp.Enum(profile.Keys()...),
			),
			mcp.WithString("value", mcp.Required(), mcp.Description("New value")),
		),
		Handler: handleFieldSet,
	}
}

func handleFieldSet(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil //nolint:nilerr
	}
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	ch, err := apply(extCtx, name, key, value)
	log.Event("mcp:domain_field_set", "update").Author("mcp").Field(name).Detail("key", key).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(ch)
}
