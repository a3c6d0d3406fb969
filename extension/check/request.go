// request.go resolves where a check takes its lists from. The CLI and the
// MCP tool build a Request and share Evaluate.

package check

import (
	"errors"
	"fmt"

	"github.com/jpl-au/domainguard/internal/config"
	"github.com/jpl-au/domainguard/internal/domain"
	"github.com/jpl-au/domainguard/internal/form"
	"github.com/jpl-au/domainguard/internal/profile"
	"github.com/jpl-au/domainguard/internal/validate"
)

var (
	// ErrNotEmailField is returned when a named field is not bound to Email.
	ErrNotEmailField = errors.New("field is not bound to the member's Email")
	// ErrFieldWithLists is returned when a request names a field and also
	// carries its own lists.
	ErrFieldWithLists = errors.New("a field cannot be combined with explicit lists")
	// ErrStdinTwice is returned when both list files are read from stdin.
	ErrStdinTwice = errors.New("only one pattern list can be read from stdin")
)

// Request describes one check.
type Request struct {
	Value      string
	Allowed    domain.PatternList
	Disallowed domain.PatternList
	// ShowList forces the pattern list into failure messages. nil falls back
	// to the field setting or check.show_list.
	ShowList *bool
	// Field names a profile field to check through. Empty means use explicit
	// lists when given, otherwise check.field, otherwise the Email field.
	Field string
	Lint  bool
	// Explicit marks the lists as caller-supplied even when they are empty,
	// so an empty list file checks against nothing rather than a field.
	Explicit bool
}

// Outcome is a check result plus where its lists came from.
type Outcome struct {
	domain.Result
	Field    string   `json:"field,omitempty"`
	Problems []string `json:"problems,omitempty"`
}

// explicit reports whether the request carries its own lists.
func (r Request) explicit() bool {
	return r.Explicit || !r.Allowed.Empty() || !r.Disallowed.Empty()
}

// Evaluate runs the request against cfg's fields and messages.
func Evaluate(cfg *config.Config, msgs domain.Messages, r Request) (Outcome, error) {
	if r.explicit() && r.Field != "" {
		return Outcome{}, ErrFieldWithLists
	}
	if r.explicit() {
		vc := domain.Config{Allowed: r.Allowed, Disallowed: r.Disallowed, ShowListOnError: cfg.ShowList()}
		if r.ShowList != nil {
			vc.ShowListOnError = *r.ShowList
		}
		out := Outcome{Result: domain.ValidateWith(r.Value, vc, msgs)}
		if r.Lint {
			out.Problems = lint(vc)
		}
		return out, nil
	}

	pf, err := pickField(cfg, r.Field)
	if err != nil {
		return Outcome{}, err
	}
	if pf == nil {
		// No lists anywhere: every address passes.
		return Outcome{Result: domain.ValidateWith(r.Value, domain.Config{}, msgs)}, nil
	}

	field := *pf
	if r.ShowList != nil {
		field.ShowDomainsOnError = *r.ShowList
	}
	out := Outcome{Field: field.Name, Result: throughForm(r.Value, &field, msgs)}
	if r.Lint {
		out.Problems = lint(field.ValidationConfig())
	}
	return out, nil
}

func pickField(cfg *config.Config, name string) (*profile.Field, error) {
	if name == "" {
		name = cfg.Check.Field
	}
	if name == "" {
		return cfg.EmailField(), nil
	}
	pf, err := cfg.Field(name)
	if err != nil {
		return nil, err
	}
	if !pf.IsEmail() {
		return nil, fmt.Errorf("%w: %s is bound to %q", ErrNotEmailField, pf.Name, pf.MemberField)
	}
	return pf, nil
}

// throughForm checks value the way a registration form would: a plain
// Email text field is swapped for the domain-aware one and validated.
func throughForm(value string, pf *profile.Field, msgs domain.Messages) domain.Result {
	fields := form.FieldList{form.NewTextField(form.EmailFieldName, "Email", value)}
	if !form.SwapEmailField(fields, pf, msgs) {
		return domain.ValidateWith(value, domain.Config{}, msgs)
	}
	return fields.ByName(form.EmailFieldName).(*form.DomainEmailField).Check()
}

func lint(vc domain.Config) []string {
	var out []string
	for _, l := range []struct {
		name string
		list domain.PatternList
	}{{"allowed", vc.Allowed}, {"disallowed", vc.Disallowed}} {
		if err := validate.Patterns(l.list); err != nil {
			out = append(out, fmt.Sprintf("%s: %v", l.name, err))
		}
	}
	return out
}
