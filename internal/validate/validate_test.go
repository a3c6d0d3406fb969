package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpl-au/domainguard/internal/domain"
)

func TestPattern(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr bool
	}{
		{"example.com", false},
		{"*.example.com", false},
		{"ex?mple.*", false},
		{"*", false},
		{"", true},
		{"exa mple.com", true},
		{"tab\tcom", true},
		{"user@example.com", true},
		{"bad\x00.com", true},
		{"\xffcorp.com", true},
		{"corp.\xc3", true},
		{"bücher.de", false},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			err := Pattern(tc.pattern)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidPattern), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPatterns(t *testing.T) {
	assert.NoError(t, Patterns(nil))
	assert.NoError(t, Patterns(domain.PatternList{"a.com", "*.b.com"}))

	err := Patterns(domain.PatternList{"ok.com", "a@b.com", "c d"})
	assert.True(t, errors.Is(err, ErrInvalidPattern))
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 3")
	assert.NotContains(t, err.Error(), "line 1")
}

func TestFieldName(t *testing.T) {
	assert.NoError(t, FieldName("Email"))
	assert.NoError(t, FieldName("Work email"))
	for _, bad := range []string{"", " Email", "Email\n", "a\x01b", strings.Repeat("x", MaxFieldName+1)} {
		assert.True(t, errors.Is(FieldName(bad), ErrInvalidFieldName), "name %q", bad)
	}
}

func TestContent(t *testing.T) {
	assert.NoError(t, Content("abc", 0))
	assert.NoError(t, Content("abc", 3))
	assert.True(t, errors.Is(Content("abcd", 3), ErrContentTooLarge))
}
