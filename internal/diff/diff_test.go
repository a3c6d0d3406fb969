package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpl-au/domainguard/internal/domain"
)

func TestLists(t *testing.T) {
	old := domain.PatternList{"a.com", "b.com", "c.com"}
	updated := domain.PatternList{"a.com", "c.com", "*.d.com"}

	r := Lists(old, updated, "disallowed_domains")

	assert.True(t, r.Changed())
	assert.Equal(t, []string{"*.d.com"}, r.Added)
	assert.Equal(t, []string{"b.com"}, r.Removed)
	assert.Contains(t, r.Diff, "- b.com\n")
	assert.Contains(t, r.Diff, "+ *.d.com\n")
	assert.Contains(t, r.Diff, "  a.com\n")
	assert.Equal(t, "disallowed_domains (old)", r.Old)
}

func TestLists_Unchanged(t *testing.T) {
	l := domain.PatternList{"a.com"}
	r := Lists(l, l, "allowed_domains")
	assert.False(t, r.Changed())
	assert.NotContains(t, r.Diff, "+ ")
	assert.NotContains(t, r.Diff, "- ")
}

func TestLists_FromEmpty(t *testing.T) {
	r := Lists(nil, domain.PatternList{"x.com", "y.com"}, "allowed_domains")
	assert.Equal(t, "+ x.com\n+ y.com\n", r.Diff)
}

func TestFormat_CollapsesContext(t *testing.T) {
	var lines []string
	for _, c := range "abcdefghij" {
		lines = append(lines, string(c)+".com")
	}
	old := domain.PatternList(lines)
	updated := append(domain.PatternList{"new.com"}, lines...)

	r := Lists(old, updated, "allowed_domains")
	assert.Contains(t, r.Diff, "  ...\n")
	assert.NotContains(t, r.Diff, "e.com")
}

func TestResult_Format(t *testing.T) {
	r := Result{Old: "old", New: "new", Diff: "- a\n+ b\n"}

	plain := r.Format(false)
	assert.True(t, strings.HasPrefix(plain, "--- old\n+++ new\n"))
	assert.NotContains(t, plain, "\033[")

	coloured := r.Format(true)
	assert.Contains(t, coloured, "\033[31m- a\033[0m")
	assert.Contains(t, coloured, "\033[32m+ b\033[0m")
}
