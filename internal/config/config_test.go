package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/domainguard/internal/domain"
	"github.com/jpl-au/domainguard/internal/profile"
)

func TestConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), Dir, "config.yaml")

	cfg := &Config{}
	require.NoError(t, cfg.Set("author.name", "alice"))
	require.NoError(t, cfg.Set("messages.DisallowedDomain", "Blocked."))
	require.NoError(t, cfg.AddField(profile.Field{
		Name:               "Email",
		MemberField:        profile.EmailMemberField,
		AllowedDomains:     "corp.com\n*.corp.com\n",
		PublicVisibility:   profile.VisibilityDisplay,
		ShowDomainsOnError: true,
	}))
	require.NoError(t, cfg.saveToPath(path))

	loaded, err := loadPath(path, ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.Author.Name)
	assert.Equal(t, "Blocked.", loaded.Messages[domain.KeyDisallowedDomain])
	require.Len(t, loaded.Fields, 1)
	assert.Equal(t, cfg.Fields[0], loaded.Fields[0])
	assert.Equal(t, path, loaded.Path())

	cat, err := loaded.Catalog()
	require.NoError(t, err)
	assert.Equal(t, "Blocked.", cat.Text(domain.KeyDisallowedDomain))
}

func TestLoadPath_Missing(t *testing.T) {
	cfg, err := loadPath(filepath.Join(t.TempDir(), "none.yaml"), ScopeGlobal)
	require.NoError(t, err)
	assert.Empty(t, cfg.Fields)
	assert.False(t, cfg.ShowList())
}

func TestLoadPath_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "fields: [\n"},
		{"bad message key", "messages:\n  Nope: x\n"},
		{"pattern with at", "fields:\n  - name: Email\n    member_field: Email\n    allowed_domains: \"user@corp.com\\n\"\n"},
		{"duplicate names", "fields:\n  - name: A\n  - name: A\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0644))
			_, err := loadPath(path, ScopeLocal)
			assert.Error(t, err)
		})
	}
}

func TestConfig_Keys(t *testing.T) {
	cfg := &Config{}

	v, err := cfg.Get("messages.NotAllowedDomain")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultText(domain.KeyNotAllowedDomain), v)
	assert.False(t, cfg.IsSet("messages.NotAllowedDomain"))

	require.NoError(t, cfg.Set("check.show_list", "TRUE"))
	assert.True(t, cfg.ShowList())
	assert.True(t, cfg.IsSet("check.show_list"))

	err = cfg.Set("check.show_list", "yes")
	assert.True(t, errors.Is(err, ErrInvalidValue))

	_, err = cfg.Get("limits.max_path")
	assert.True(t, errors.Is(err, ErrUnknownKey))
	assert.True(t, errors.Is(cfg.Set("messages.Bogus", "x"), ErrUnknownKey))

	require.NoError(t, cfg.Set("messages.NotAllowedDomain", "Work addresses only."))
	require.NoError(t, cfg.Set("messages.NotAllowedDomain", ""))
	assert.False(t, cfg.IsSet("messages.NotAllowedDomain"))

	require.NoError(t, cfg.Set("messages.DisallowedDomain", "Blocked."))
	require.NoError(t, cfg.Set("messages.DisallowedDomain", "  \t "))
	assert.False(t, cfg.IsSet("messages.DisallowedDomain"), "whitespace clears the override")
	v, err = cfg.Get("messages.DisallowedDomain")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultText(domain.KeyDisallowedDomain), v)

	all := cfg.All()
	assert.Len(t, all, len(ValidKeys()))
	assert.Equal(t, "true", all["check.show_list"])
}

func TestConfig_Fields(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.AddField(profile.Field{Name: "Nick", MemberField: "Nickname"}))
	require.NoError(t, cfg.AddField(profile.Field{Name: "Email", MemberField: profile.EmailMemberField}))

	assert.True(t, errors.Is(cfg.AddField(profile.Field{Name: "Nick"}), ErrFieldExists))

	f, err := cfg.Field("Email")
	require.NoError(t, err)
	require.NoError(t, f.Set(profile.KeyAllowedDomains, "corp.com"))
	assert.Equal(t, "corp.com\n", cfg.EmailField().AllowedDomains)

	require.NoError(t, cfg.RemoveField("Nick"))
	assert.True(t, errors.Is(cfg.RemoveField("Nick"), ErrFieldNotFound))
	_, err = cfg.Field("Nick")
	assert.True(t, errors.Is(err, ErrFieldNotFound))
}

func TestConfig_Clone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("check.show_list", "true"))
	require.NoError(t, cfg.Set("messages.DisallowedDomain", "No."))
	require.NoError(t, cfg.AddField(profile.Field{Name: "Email", MemberField: profile.EmailMemberField}))

	cp := cfg.Clone()
	require.NoError(t, cp.Set("check.show_list", "false"))
	require.NoError(t, cp.Set("messages.DisallowedDomain", "Changed."))
	cp.Fields[0].AllowedDomains = "x.com\n"

	assert.True(t, cfg.ShowList())
	assert.Equal(t, "No.", cfg.Messages[domain.KeyDisallowedDomain])
	assert.Empty(t, cfg.Fields[0].AllowedDomains)
}
