// Package mcp implements the Model Context Protocol server, exposing
// domainguard operations to agents over stdio.
//
// Tools come from two places: the config tools defined here, and whatever
// the registered extensions contribute through MCPTools.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/domainguard/extension"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNoContext is returned when Serve is called before extensions were initialised.
var ErrNoContext = errors.New("extension context not initialised")

// Serve starts the MCP server over stdio. stdout carries JSON-RPC, so all
// logging goes to stderr.
func Serve(extCtx extension.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if extCtx == nil {
		return ErrNoContext
	}

	s := NewServer(extCtx, extension.Tools())

	slog.Info("domainguard MCP server ready", "version", Version, "transport", "stdio",
		"fields", len(extCtx.Config().Fields))

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the server with the config tools, the field resources and
// the given extension tools.
func NewServer(extCtx extension.Context, tools []extension.MCPTool) *server.MCPServer {
	s := server.NewMCPServer(
		"domainguard",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	h := &handlers{ext: extCtx}
	registerResources(s, h)
	registerTools(s, h)

	for _, t := range tools {
		s.AddTool(t.Tool, bind(extCtx, t.Handler))
	}
	return s
}

// bind closes an extension handler over the shared context.
func bind(extCtx extension.Context, fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return fn(ctx, extCtx, req)
	}
}

// handlers provides MCP request handlers with access to the shared config.
type handlers struct {
	ext extension.Context
}

// registerResources adds read-only views of the profile fields.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcp.NewResource(
			fieldsURI,
			"Profile fields",
			mcp.WithResourceDescription("All configured profile fields with their domain lists"),
			mcp.WithMIMEType("application/json"),
		),
		h.readFields,
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			fieldsURI+"/{name}",
			"Profile field",
			mcp.WithTemplateDescription("One profile field by name"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		h.readField,
	)
}

// registerTools exposes config access as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("domain_config_get",
			mcp.WithDescription("Get a configuration value, or all values when key is empty"),
			mcp.WithString("key", mcp.Description("Config key (author.name, check.field, check.show_list, messages.<Key>) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("domain_config_set",
			mcp.WithDescription("Set a configuration value. An empty messages.<Key> value restores the default text"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)
}
