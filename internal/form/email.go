// email.go holds the domain-aware email field and the swap that installs it.

package form

import (
	"github.com/jpl-au/domainguard/internal/domain"
	"github.com/jpl-au/domainguard/internal/profile"
)

// EmailFieldName is the form field the swap looks for.
const EmailFieldName = "Email"

// DomainEmailField is an email input that rejects addresses whose domain
// fails the allow/deny lists. Address syntax is left to the hosting form.
type DomainEmailField struct {
	TextField
	config domain.Config
	msgs   domain.Messages
}

// NewDomainEmailField copies name, title, value, max length and form from t.
func NewDomainEmailField(t *TextField, msgs domain.Messages) *DomainEmailField {
	return &DomainEmailField{TextField: *t, msgs: msgs}
}

// SetAllowedDomains sets the allow-list. Use domain.NormalizePatternList
// for raw editor text.
func (d *DomainEmailField) SetAllowedDomains(l domain.PatternList) *DomainEmailField {
	d.config.Allowed = l
	return d
}

// SetDisallowedDomains sets the deny-list.
func (d *DomainEmailField) SetDisallowedDomains(l domain.PatternList) *DomainEmailField {
	d.config.Disallowed = l
	return d
}

// SetShowListOnError controls whether failures list the patterns.
func (d *DomainEmailField) SetShowListOnError(v bool) *DomainEmailField {
	d.config.ShowListOnError = v
	return d
}

// Config returns the field's validation config.
func (d *DomainEmailField) Config() domain.Config { return d.config }

// Check runs the domain rule against the current value.
func (d *DomainEmailField) Check() domain.Result {
	return domain.ValidateWith(d.Value, d.config, d.msgs)
}

// Validate implements Validatable, recording at most one error.
func (d *DomainEmailField) Validate(v *Validator) bool {
	res := d.Check()
	if !res.Valid {
		v.ValidationError(d.Name(), res.Message)
	}
	return res.Valid
}

// SwapEmailField replaces the Email form field with a DomainEmailField
// carrying pf's lists. It reports whether a swap happened.
//
// Nothing changes when pf is nil, is not the Email field, or has no
// patterns in either list. A visibility wrapper around the old field is
// rebuilt around the new one: Display makes it always visible, any other
// setting takes the checkbox default from pf.
func SwapEmailField(fields FieldList, pf *profile.Field, msgs domain.Messages) bool {
	if pf == nil || !pf.IsEmail() || !pf.HasDomainRules() {
		return false
	}

	old := fields.ByName(EmailFieldName)
	if old == nil {
		return false
	}

	var replacement Field
	switch f := old.(type) {
	case *CheckableVisibilityField:
		child, ok := asText(f.Child())
		if !ok {
			return false
		}
		wrapped := NewCheckableVisibilityField(newFromProfile(child, pf, msgs))
		if pf.PublicVisibility == profile.VisibilityDisplay {
			wrapped.MakeAlwaysVisible()
		} else {
			wrapped.SetChecked(pf.PublicVisibilityDefault)
		}
		replacement = wrapped
	default:
		t, ok := asText(f)
		if !ok {
			return false
		}
		replacement = newFromProfile(t, pf, msgs)
	}

	return fields.Replace(EmailFieldName, replacement)
}

func newFromProfile(t *TextField, pf *profile.Field, msgs domain.Messages) *DomainEmailField {
	return NewDomainEmailField(t, msgs).
		SetAllowedDomains(pf.Allowed()).
		SetDisallowedDomains(pf.Disallowed()).
		SetShowListOnError(pf.ShowDomainsOnError)
}

// asText unwraps the text field behind f, including an already swapped field.
func asText(f Field) (*TextField, bool) {
	switch v := f.(type) {
	case *TextField:
		return v, true
	case *DomainEmailField:
		return &v.TextField, true
	}
	return nil, false
}
