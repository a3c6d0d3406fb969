// pattern.go implements domain pattern validation.

package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jpl-au/domainguard/internal/domain"
)

// Pattern validates one domain pattern.
//
// Validation rules:
//   - Empty patterns rejected (blank lines are dropped during normalisation,
//     so an empty entry means the caller skipped it)
//   - Null bytes and invalid UTF-8 rejected
//   - Whitespace inside the pattern rejected (a domain has none)
//   - '@' rejected (the pattern is compared to the part after the last '@',
//     so an entry like "user@example.com" can never match)
func Pattern(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	if !utf8.ValidString(p) {
		return fmt.Errorf("%w: invalid UTF-8 in %q", ErrInvalidPattern, p)
	}
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("%w: null byte in %q", ErrInvalidPattern, p)
	}
	if strings.IndexFunc(p, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: whitespace in %q", ErrInvalidPattern, p)
	}
	if strings.ContainsRune(p, '@') {
		return fmt.Errorf("%w: %q contains '@', use the domain only", ErrInvalidPattern, p)
	}
	return nil
}

// Patterns validates every entry and joins the failures. Returns nil when
// the list is clean or empty.
func Patterns(list domain.PatternList) error {
	var errs []error
	for i, p := range list {
		if err := Pattern(p); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}
