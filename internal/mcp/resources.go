// resources.go implements MCP resource handlers for profile fields.
//
// Resource URIs follow domainguard://fields[/{name}]. The bare URI lists every
// field; with a name it returns that field alone.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const fieldsURI = "domainguard://fields"

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyName indicates a field URI without a name.
	ErrEmptyName = errors.New("empty field name")
)

func (h *handlers) readFields(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, h.ext.Config().Fields)
}

func (h *handlers) readField(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name, err := parseFieldURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	f, err := h.ext.Config().Field(name)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, f)
}

// parseFieldURI extracts the field name from domainguard://fields/{name}.
// Names may be percent-encoded.
func parseFieldURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, fieldsURI+"/")
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	if rest == "" {
		return "", ErrEmptyName
	}
	name, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	return name, nil
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
