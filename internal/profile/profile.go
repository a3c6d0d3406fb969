// Package profile models a member profile field record and the domain
// settings that can be attached to it.
//
// Domain settings only mean something on the field bound to the member's
// Email. Any other field refuses them and hides them from its editor layout.
package profile

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/domainguard/internal/domain"
)

var (
	// ErrNotEmailField is returned when setting a domain key on a field that
	// is not bound to the member's Email.
	ErrNotEmailField = errors.New("domain settings only apply to the Email field")
	// ErrUnknownKey is returned for a key Set does not know.
	ErrUnknownKey = errors.New("unknown field key")
	// ErrInvalidValue is returned when a value cannot be parsed for its key.
	ErrInvalidValue = errors.New("invalid field value")
)

// EmailMemberField is the member attribute that receives domain settings.
const EmailMemberField = "Email"

// Public visibility settings.
const (
	VisibilityDisplay = "Display"
	VisibilityHide    = "Hide"
	VisibilityAllow   = "Allow"
)

// Keys accepted by Set and Get.
const (
	KeyAllowedDomains          = "allowed_domains"
	KeyDisallowedDomains       = "disallowed_domains"
	KeyShowDomainsOnError      = "show_domains_on_error"
	KeyMemberField             = "member_field"
	KeyPublicVisibility        = "public_visibility"
	KeyPublicVisibilityDefault = "public_visibility_default"
)

// Field is one profile field record. Lists are stored as the raw
// newline-delimited text an editor submits.
type Field struct {
	Name                    string `yaml:"name" json:"name"`
	MemberField             string `yaml:"member_field,omitempty" json:"member_field,omitempty"`
	AllowedDomains          string `yaml:"allowed_domains,omitempty" json:"allowed_domains,omitempty"`
	DisallowedDomains       string `yaml:"disallowed_domains,omitempty" json:"disallowed_domains,omitempty"`
	ShowDomainsOnError      bool   `yaml:"show_domains_on_error,omitempty" json:"show_domains_on_error,omitempty"`
	PublicVisibility        string `yaml:"public_visibility,omitempty" json:"public_visibility,omitempty"`
	PublicVisibilityDefault bool   `yaml:"public_visibility_default,omitempty" json:"public_visibility_default,omitempty"`
}

// IsEmail reports whether the field is bound to the member's Email.
func (f *Field) IsEmail() bool {
	return f.MemberField == EmailMemberField
}

// Allowed returns the normalised allow-list.
func (f *Field) Allowed() domain.PatternList {
	return domain.NormalizePatternList(f.AllowedDomains)
}

// Disallowed returns the normalised deny-list.
func (f *Field) Disallowed() domain.PatternList {
	return domain.NormalizePatternList(f.DisallowedDomains)
}

// HasDomainRules reports whether either list has at least one pattern.
func (f *Field) HasDomainRules() bool {
	return !f.Allowed().Empty() || !f.Disallowed().Empty()
}

// ValidationConfig builds the per-call config for the domain rule.
func (f *Field) ValidationConfig() domain.Config {
	return domain.NewConfig(f.AllowedDomains, f.DisallowedDomains, f.ShowDomainsOnError)
}

// Keys returns every key Set accepts, in editor order.
func Keys() []string {
	return []string{
		KeyMemberField,
		KeyPublicVisibility, KeyPublicVisibilityDefault,
		KeyAllowedDomains, KeyDisallowedDomains, KeyShowDomainsOnError,
	}
}

// IsDomainKey reports whether key is one of the domain settings.
func IsDomainKey(key string) bool {
	switch key {
	case KeyAllowedDomains, KeyDisallowedDomains, KeyShowDomainsOnError:
		return true
	}
	return false
}

// Editable returns the keys that can be set on this field.
func (f *Field) Editable() []string {
	if f.IsEmail() {
		return Keys()
	}
	return slices.DeleteFunc(Keys(), IsDomainKey)
}

// Get returns a key's value as a string.
func (f *Field) Get(key string) (string, error) {
	switch key {
	case KeyMemberField:
		return f.MemberField, nil
	case KeyPublicVisibility:
		return f.PublicVisibility, nil
	case KeyPublicVisibilityDefault:
		return strconv.FormatBool(f.PublicVisibilityDefault), nil
	case KeyAllowedDomains:
		return f.AllowedDomains, nil
	case KeyDisallowedDomains:
		return f.DisallowedDomains, nil
	case KeyShowDomainsOnError:
		return strconv.FormatBool(f.ShowDomainsOnError), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set assigns a key from its string form. List values are stored normalised
// so the file holds one pattern per line.
func (f *Field) Set(key, value string) error {
	if IsDomainKey(key) && !f.IsEmail() {
		return fmt.Errorf("%w: %s is bound to %q", ErrNotEmailField, f.Name, f.MemberField)
	}
	switch key {
	case KeyMemberField:
		f.MemberField = strings.TrimSpace(value)
		// Domain settings only apply to Email; drop them so they cannot
		// linger where Set refuses to touch them.
		if !f.IsEmail() {
			f.AllowedDomains = ""
			f.DisallowedDomains = ""
			f.ShowDomainsOnError = false
		}
	case KeyPublicVisibility:
		switch value {
		case VisibilityDisplay, VisibilityHide, VisibilityAllow, "":
			f.PublicVisibility = value
		default:
			return fmt.Errorf("%w: %s must be %s, %s or %s", ErrInvalidValue, key,
				VisibilityDisplay, VisibilityHide, VisibilityAllow)
		}
	case KeyPublicVisibilityDefault:
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		f.PublicVisibilityDefault = b
	case KeyAllowedDomains:
		f.AllowedDomains = domain.NormalizePatternList(value).Text()
	case KeyDisallowedDomains:
		f.DisallowedDomains = domain.NormalizePatternList(value).Text()
	case KeyShowDomainsOnError:
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		f.ShowDomainsOnError = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
	}
	return b, nil
}

// FindEmail returns the first field bound to the member's Email, or nil.
func FindEmail(fields []Field) *Field {
	for i := range fields {
		if fields[i].IsEmail() {
			return &fields[i]
		}
	}
	return nil
}

// Find returns the field with the given name, or nil.
func Find(fields []Field, name string) *Field {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}
