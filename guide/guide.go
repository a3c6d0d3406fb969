// Package guide provides access to the embedded guide pages used by the
// guide command and the domain_guide MCP tool.
package guide

import (
	"embed"
	"errors"
	"io/fs"
	"strings"
)

//go:embed *.md
var files embed.FS

// ErrNotFound is returned when no page has the requested name.
var ErrNotFound = errors.New("guide not found")

// Get returns the content of a guide page by name. If `name` is empty
// the default "guide" page is returned.
func Get(name string) (string, error) {
	if name == "" {
		name = "guide"
	}
	data, err := files.ReadFile(name + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available topic names (without the .md suffix). The main
// page is not a topic.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if name != "guide.md" {
			names = append(names, strings.TrimSuffix(name, ".md"))
		}
	}
	return names, nil
}
