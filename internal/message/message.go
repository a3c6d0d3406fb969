// Package message provides the catalog used to render domain validation
// failures. A catalog starts from the built-in English text and carries
// per-key overrides, typically loaded from the messages section of the
// config file.
package message

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jpl-au/domainguard/internal/domain"
)

// ErrUnknownKey is returned when overriding a key the validator never asks for.
var ErrUnknownKey = errors.New("unknown message key")

// Catalog resolves message keys. The zero value returns defaults for every key.
type Catalog struct {
	overrides map[string]string
}

// New builds a catalog from overrides. Blank values are ignored so that an
// emptied config entry falls back to the default instead of rendering "".
func New(overrides map[string]string) (*Catalog, error) {
	c := &Catalog{}
	for _, k := range slices.Sorted(maps.Keys(overrides)) {
		if err := c.Set(k, overrides[k]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Lookup implements domain.Messages.
func (c *Catalog) Lookup(key, def string) string {
	if c == nil {
		return def
	}
	if v, ok := c.overrides[key]; ok {
		return v
	}
	return def
}

// Set overrides the text for key. An empty value clears the override.
func (c *Catalog) Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("%w: %s (valid: %s)", ErrUnknownKey, key, strings.Join(domain.MessageKeys(), ", "))
	}
	if strings.TrimSpace(value) == "" {
		delete(c.overrides, key)
		return nil
	}
	if c.overrides == nil {
		c.overrides = make(map[string]string)
	}
	c.overrides[key] = value
	return nil
}

// Text returns the effective text for key.
func (c *Catalog) Text(key string) string {
	return c.Lookup(key, domain.DefaultText(key))
}

// Overridden reports whether key has a custom value.
func (c *Catalog) Overridden(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.overrides[key]
	return ok
}

// Entries returns the effective text of every key.
func (c *Catalog) Entries() map[string]string {
	out := make(map[string]string, len(domain.MessageKeys()))
	for _, k := range domain.MessageKeys() {
		out[k] = c.Text(k)
	}
	return out
}

// IsKey reports whether key is one the validator renders.
func IsKey(key string) bool {
	return slices.Contains(domain.MessageKeys(), key)
}
