// validate.go implements the allow/deny decision and renders its messages.

package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a validation outcome.
type Kind int

const (
	// KindNone is the kind of a passing result.
	KindNone Kind = iota
	// KindNotAllowedDomain means an allow-list exists and nothing in it matched.
	KindNotAllowedDomain
	// KindDisallowedDomain means a deny-list pattern matched.
	KindDisallowedDomain
)

// String returns the message identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindNotAllowedDomain:
		return KeyNotAllowedDomain
	case KindDisallowedDomain:
		return KeyDisallowedDomain
	default:
		return "None"
	}
}

// MarshalText lets Kind appear by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var (
	// ErrNotAllowedDomain is wrapped by Result.Err for KindNotAllowedDomain.
	ErrNotAllowedDomain = errors.New("email domain not allowed")
	// ErrDisallowedDomain is wrapped by Result.Err for KindDisallowedDomain.
	ErrDisallowedDomain = errors.New("email domain disallowed")
)

// Config holds the lists for one validation call. Either list may be empty,
// in which case its check is skipped.
type Config struct {
	Allowed         PatternList `json:"allowed,omitempty"`
	Disallowed      PatternList `json:"disallowed,omitempty"`
	ShowListOnError bool        `json:"show_list_on_error,omitempty"`
}

// NewConfig builds a Config from the raw newline-delimited text a form
// layer stores.
func NewConfig(allowed, disallowed string, showListOnError bool) Config {
	return Config{
		Allowed:         NormalizePatternList(allowed),
		Disallowed:      NormalizePatternList(disallowed),
		ShowListOnError: showListOnError,
	}
}

// Result is the outcome of Validate.
type Result struct {
	Valid   bool   `json:"valid"`
	Kind    Kind   `json:"kind"`
	Domain  string `json:"domain,omitempty"`
	Message string `json:"message,omitempty"`
}

// Err returns nil for a valid result, otherwise an error wrapping
// ErrNotAllowedDomain or ErrDisallowedDomain with the rendered message.
func (r Result) Err() error {
	switch r.Kind {
	case KindNotAllowedDomain:
		return fmt.Errorf("%w: %s", ErrNotAllowedDomain, r.Message)
	case KindDisallowedDomain:
		return fmt.Errorf("%w: %s", ErrDisallowedDomain, r.Message)
	default:
		return nil
	}
}

// Validate checks value against cfg using the built-in English messages.
func Validate(value string, cfg Config) Result {
	return ValidateWith(value, cfg, DefaultMessages)
}

// ValidateWith checks value against cfg, rendering any failure message
// through msgs.
func ValidateWith(value string, cfg Config, msgs Messages) Result {
	if msgs == nil {
		msgs = DefaultMessages
	}

	d, ok := ExtractDomain(value)
	if !ok {
		return Result{Valid: true}
	}

	if !cfg.Allowed.Empty() {
		if !MatchesAnyPattern(d, cfg.Allowed) {
			return Result{
				Kind:    KindNotAllowedDomain,
				Domain:  d,
				Message: render(msgs, KeyNotAllowedDomain, KeyNotAllowedDomainList, cfg.Allowed, cfg.ShowListOnError),
			}
		}
		// An allow-list match settles it; the deny-list is not consulted.
		return Result{Valid: true, Domain: d}
	}

	if !cfg.Disallowed.Empty() && MatchesAnyPattern(d, cfg.Disallowed) {
		return Result{
			Kind:    KindDisallowedDomain,
			Domain:  d,
			Message: render(msgs, KeyDisallowedDomain, KeyDisallowedDomainList, cfg.Disallowed, cfg.ShowListOnError),
		}
	}

	return Result{Valid: true, Domain: d}
}

func render(msgs Messages, key, listKey string, list PatternList, showList bool) string {
	msg := msgs.Lookup(key, defaultText[key])
	if showList {
		msg += " " + msgs.Lookup(listKey, defaultText[listKey]) + list.String()
	}
	return msg
}
