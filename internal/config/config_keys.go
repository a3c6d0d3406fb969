// config_keys.go provides key-value access to configuration settings.
//
// config.go owns the YAML structure and loading; this file serves the CLI and
// MCP surfaces where settings are addressed by string keys such as
// "check.show_list" or "messages.DisallowedDomain".
//
// Pointers are used for optional fields so "not set" (nil) differs from
// "explicitly false". Defaults apply only when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/domainguard/internal/domain"
	"github.com/jpl-au/domainguard/internal/message"
)

const messagesPrefix = "messages."

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	keys := []string{"author.name", "check.field", "check.show_list"}
	for _, k := range domain.MessageKeys() {
		keys = append(keys, messagesPrefix+k)
	}
	return keys
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string. Message keys
// return the effective text, default included.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "check.field":
		return c.Check.Field, nil
	case "check.show_list":
		return strconv.FormatBool(c.ShowList()), nil
	}
	if mk, ok := messageKey(key); ok {
		if v, set := c.Messages[mk]; set {
			return v, nil
		}
		return domain.DefaultText(mk), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set sets the value of a configuration key. An empty message value removes
// the override.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
		return nil
	case "check.field":
		c.Check.Field = value
		return nil
	case "check.show_list":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: check.show_list must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Check.ShowList = &b
		return nil
	}
	if mk, ok := messageKey(key); ok {
		if strings.TrimSpace(value) == "" {
			delete(c.Messages, mk)
			return nil
		}
		if c.Messages == nil {
			c.Messages = make(map[string]string)
		}
		c.Messages[mk] = value
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "check.field":
		return c.Check.Field != ""
	case "check.show_list":
		return c.Check.ShowList != nil
	}
	if mk, ok := messageKey(key); ok {
		_, set := c.Messages[mk]
		return set
	}
	return false
}

func messageKey(key string) (string, bool) {
	mk, ok := strings.CutPrefix(key, messagesPrefix)
	if !ok || !message.IsKey(mk) {
		return "", false
	}
	return mk, true
}
