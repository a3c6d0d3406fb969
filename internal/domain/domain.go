// Package domain implements the email domain rule: pull the domain out of an
// address and check it against an allow-list and a deny-list of wildcard
// patterns.
//
// Everything here is a pure function over value types. A Config is built
// per validation call and nothing is shared between calls, so the package is
// safe for concurrent use without coordination.
//
// # Rule
//
//  1. No domain can be extracted: valid. Address syntax is checked upstream.
//  2. Allowed list present: valid if any pattern matches, otherwise
//     NotAllowedDomain. The deny-list is not consulted.
//  3. Otherwise, disallowed list present and something matches:
//     DisallowedDomain.
//  4. Otherwise valid.
//
// At most one failure is reported per call.
package domain

import (
	"strings"

	"github.com/jpl-au/domainguard/internal/glob"
)

// ExtractDomain returns the part of value after its last '@'.
//
// The boolean is false when value is blank, has no '@', or ends with '@'.
// The domain is cut from the untrimmed value; no syntax checks are made.
func ExtractDomain(value string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	at := strings.LastIndexByte(value, '@')
	if at == -1 {
		return "", false
	}
	d := value[at+1:]
	if d == "" {
		return "", false
	}
	return d, true
}

// MatchesAnyPattern reports whether domain matches at least one pattern.
// An empty list never matches.
func MatchesAnyPattern(domain string, patterns PatternList) bool {
	_, ok := glob.MatchAny(patterns, domain)
	return ok
}

// FirstMatch returns the first pattern in the list that matches domain.
func FirstMatch(domain string, patterns PatternList) (string, bool) {
	return glob.MatchAny(patterns, domain)
}
