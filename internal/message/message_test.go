package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/domainguard/internal/domain"
)

func TestCatalog_Defaults(t *testing.T) {
	var c *Catalog
	assert.Equal(t, "fallback", c.Lookup(domain.KeyDisallowedDomain, "fallback"))

	empty := &Catalog{}
	assert.Equal(t, domain.DefaultText(domain.KeyNotAllowedDomain), empty.Text(domain.KeyNotAllowedDomain))
}

func TestCatalog_OverrideOnlyThatKey(t *testing.T) {
	c, err := New(map[string]string{domain.KeyDisallowedDomain: "Blocked."})
	require.NoError(t, err)

	assert.Equal(t, "Blocked.", c.Text(domain.KeyDisallowedDomain))
	assert.True(t, c.Overridden(domain.KeyDisallowedDomain))
	assert.False(t, c.Overridden(domain.KeyDisallowedDomainList))
	assert.Equal(t, domain.DefaultText(domain.KeyDisallowedDomainList), c.Text(domain.KeyDisallowedDomainList))

	got := domain.ValidateWith("a@bad.com", domain.NewConfig("", "bad.com", true), c)
	assert.Equal(t, "Blocked. The following domains are disallowed: bad.com", got.Message)
}

func TestCatalog_BlankClears(t *testing.T) {
	c, err := New(map[string]string{domain.KeyNotAllowedDomain: "Custom."})
	require.NoError(t, err)

	require.NoError(t, c.Set(domain.KeyNotAllowedDomain, "  "))
	assert.False(t, c.Overridden(domain.KeyNotAllowedDomain))
}

func TestNew_UnknownKey(t *testing.T) {
	_, err := New(map[string]string{"Bogus": "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKey))
}

func TestCatalog_Entries(t *testing.T) {
	c, err := New(map[string]string{domain.KeyNotAllowedDomainList: "Allowed: "})
	require.NoError(t, err)

	entries := c.Entries()
	assert.Len(t, entries, 4)
	assert.Equal(t, "Allowed: ", entries[domain.KeyNotAllowedDomainList])
}
