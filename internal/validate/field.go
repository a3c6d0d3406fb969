package validate

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxFieldName bounds the length of a profile field name.
const MaxFieldName = 128

// FieldName validates the name a profile field is stored under.
//
// Names are used as CLI arguments and YAML values, so empty names, control
// characters and surrounding whitespace are rejected.
func FieldName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFieldName)
	}
	if len(name) > MaxFieldName {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidFieldName, MaxFieldName)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: leading or trailing whitespace in %q", ErrInvalidFieldName, name)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: control character in %q", ErrInvalidFieldName, name)
	}
	return nil
}

// MaxContent bounds pattern list text read from stdin or a file.
const MaxContent = 1 << 20

// Content validates list text size. maxLen <= 0 means no limit.
func Content(content string, maxLen int64) error {
	if maxLen > 0 && int64(len(content)) > maxLen {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrContentTooLarge, len(content), maxLen)
	}
	return nil
}
