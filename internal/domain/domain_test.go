package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   string
		wantOK bool
	}{
		{"simple", "user@example.com", "example.com", true},
		{"last at wins", "a@b@example.com", "example.com", true},
		{"empty", "", "", false},
		{"whitespace only", " \t\n ", "", false},
		{"no at", "example.com", "", false},
		{"trailing at", "user@", "", false},
		{"untrimmed tail kept", " user@example.com ", "example.com ", true},
		{"case preserved", "User@Example.COM", "Example.COM", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractDomain(tc.value)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePatternList(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		got := NormalizePatternList("  foo.com \n\n bar.com\n")
		assert.Equal(t, PatternList{"foo.com", "bar.com"}, got)
	})

	t.Run("crlf", func(t *testing.T) {
		got := NormalizePatternList("foo.com\r\nbar.com\r\n")
		assert.Equal(t, PatternList{"foo.com", "bar.com"}, got)
	})

	t.Run("blank text", func(t *testing.T) {
		assert.True(t, NormalizePatternList("\n  \n").Empty())
	})

	t.Run("slice passes through", func(t *testing.T) {
		in := []string{" untouched ", ""}
		got := NormalizePatternList(in)
		assert.Equal(t, PatternList{" untouched ", ""}, got)
	})
}

func TestPatternList_Render(t *testing.T) {
	l := PatternList{"a.com", "*.b.com"}
	assert.Equal(t, "a.com, *.b.com", l.String())
	assert.Equal(t, "a.com\n*.b.com\n", l.Text())
	assert.Equal(t, "", PatternList(nil).Text())
}

func TestMatchesAnyPattern(t *testing.T) {
	t.Run("star matches everything", func(t *testing.T) {
		for _, d := range []string{"example.com", "", "a", "x.y.z"} {
			assert.True(t, MatchesAnyPattern(d, PatternList{"*"}), "domain %q", d)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.True(t, MatchesAnyPattern("EXAMPLE.com", PatternList{"example.*"}))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.False(t, MatchesAnyPattern("example.com", nil))
	})

	t.Run("first match", func(t *testing.T) {
		p, ok := FirstMatch("mail.example.com", PatternList{"*.org", "*.example.com", "*"})
		require.True(t, ok)
		assert.Equal(t, "*.example.com", p)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		cfg      Config
		valid    bool
		kind     Kind
		contains string
	}{
		{
			name:  "no lists",
			value: "a@x.com",
			cfg:   Config{},
			valid: true,
		},
		{
			name:  "blank value skips lists",
			value: "   ",
			cfg:   Config{Allowed: PatternList{"good.com"}, Disallowed: PatternList{"*"}},
			valid: true,
		},
		{
			name:  "no at skips lists",
			value: "not-an-address",
			cfg:   Config{Disallowed: PatternList{"*"}},
			valid: true,
		},
		{
			name:  "allow list precedence",
			value: "a@good.com",
			cfg:   Config{Allowed: PatternList{"good.com"}, Disallowed: PatternList{"*"}},
			valid: true,
		},
		{
			name:     "not allowed",
			value:    "a@other.com",
			cfg:      Config{Allowed: PatternList{"good.com"}},
			kind:     KindNotAllowedDomain,
			contains: "not from an allowed domain",
		},
		{
			name:     "not allowed short circuits deny",
			value:    "a@other.com",
			cfg:      Config{Allowed: PatternList{"good.com"}, Disallowed: PatternList{"other.com"}},
			kind:     KindNotAllowedDomain,
			contains: "not from an allowed domain",
		},
		{
			name:     "disallowed with list",
			value:    "a@bad.com",
			cfg:      Config{Disallowed: PatternList{"bad.com"}, ShowListOnError: true},
			kind:     KindDisallowedDomain,
			contains: "bad.com",
		},
		{
			name:  "allowed wildcard subdomain",
			value: "a@mail.good.com",
			cfg:   Config{Allowed: PatternList{"*.good.com"}},
			valid: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.value, tc.cfg)
			assert.Equal(t, tc.valid, got.Valid)
			assert.Equal(t, tc.kind, got.Kind)
			if tc.valid {
				assert.Empty(t, got.Message)
				assert.NoError(t, got.Err())
			}
			if tc.contains != "" {
				assert.Contains(t, got.Message, tc.contains)
			}
		})
	}
}

func TestValidate_AllowListDecides(t *testing.T) {
	cfg := Config{Allowed: PatternList{"*.good.com"}, Disallowed: PatternList{"spam.good.com"}}

	got := Validate("a@spam.good.com", cfg)
	assert.True(t, got.Valid, "deny list must not run once the allow list matched")
	assert.Equal(t, "spam.good.com", got.Domain)

	got = Validate("a@bad.com", cfg)
	assert.Equal(t, KindNotAllowedDomain, got.Kind)
}

func TestValidate_SharedConfigConcurrent(t *testing.T) {
	cfg := Config{
		Allowed:    PatternList{"corp.com", "*.corp.com"},
		Disallowed: PatternList{"*"},
	}
	cases := []struct {
		value string
		valid bool
		kind  Kind
	}{
		{"a@corp.com", true, KindNone},
		{"a@mail.corp.com", true, KindNone},
		{"a@gmail.com", false, KindNotAllowedDomain},
		{"a@corp.com.evil", false, KindNotAllowedDomain},
	}

	for i := 0; i < 8; i++ {
		t.Run(fmt.Sprintf("worker%d", i), func(t *testing.T) {
			t.Parallel()
			for n := 0; n < 200; n++ {
				c := cases[n%len(cases)]
				got := Validate(c.value, cfg)
				assert.Equal(t, c.valid, got.Valid, c.value)
				assert.Equal(t, c.kind, got.Kind, c.value)
			}
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	t.Run("allowed list appended", func(t *testing.T) {
		cfg := NewConfig("a.com\nb.com", "", true)
		got := Validate("x@c.com", cfg)
		assert.Equal(t,
			"The email address is not from an allowed domain. The following domains are allowed: a.com, b.com",
			got.Message)
	})

	t.Run("disallowed list appended", func(t *testing.T) {
		cfg := NewConfig("", "bad.com\n*.spam.net", true)
		got := Validate("x@bad.com", cfg)
		assert.Equal(t,
			"The email address is from a disallowed domain. The following domains are disallowed: bad.com, *.spam.net",
			got.Message)
	})

	t.Run("list hidden", func(t *testing.T) {
		cfg := NewConfig("", "bad.com", false)
		got := Validate("x@bad.com", cfg)
		assert.Equal(t, "The email address is from a disallowed domain.", got.Message)
	})

	t.Run("custom messages", func(t *testing.T) {
		cfg := NewConfig("", "bad.com", true)
		got := ValidateWith("x@bad.com", cfg, stubMessages{KeyDisallowedDomain: "Nope."})
		assert.Equal(t, "Nope. The following domains are disallowed: bad.com", got.Message)
	})
}

func TestResult_Err(t *testing.T) {
	notAllowed := Validate("x@c.com", NewConfig("a.com", "", false))
	assert.True(t, errors.Is(notAllowed.Err(), ErrNotAllowedDomain))

	disallowed := Validate("x@c.com", NewConfig("", "c.com", false))
	assert.True(t, errors.Is(disallowed.Err(), ErrDisallowedDomain))
	assert.False(t, errors.Is(disallowed.Err(), ErrNotAllowedDomain))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "NotAllowedDomain", KindNotAllowedDomain.String())
	assert.Equal(t, "DisallowedDomain", KindDisallowedDomain.String())
	assert.Equal(t, "None", KindNone.String())
}

type stubMessages map[string]string

func (m stubMessages) Lookup(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
