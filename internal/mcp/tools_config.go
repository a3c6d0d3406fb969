// tools_config.go implements MCP tools for configuration management.
//
// Writes go through the extension context so the running server uses the new
// settings immediately and concurrent tool calls never see a half-applied
// change.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/config"
	"github.com/jpl-au/domainguard/internal/log"
)

// configGet handles domain_config_get tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.ext.Config()

	key := extension.ArgString(req, "key", "")
	if key == "" {
		log.Event("mcp:domain_config_get", "list").Author("mcp").Write(nil)
		return extension.JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)
	log.Event("mcp:domain_config_get", "get").Author("mcp").Detail("key", key).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(map[string]string{key: v})
}

// configSet handles domain_config_set tool calls.
func (h *handlers) configSet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	err = h.ext.Update(func(cfg *config.Config) error {
		return cfg.Set(key, value)
	})
	log.Event("mcp:domain_config_set", "set").Author("mcp").Detail("key", key).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(map[string]string{key: value})
}
