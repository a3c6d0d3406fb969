// Package glob provides shell-style wildcard matching for domain patterns.
//
// Only two glyphs are special: * matches any run of characters (including
// none) and ? matches exactly one character. Everything else is literal,
// including backslash, brackets, braces and dots, and matching ignores case.
// Patterns are compiled with gobwas/glob without separators, so * crosses
// dots.
package glob

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

// compiled caches patterns by their prepared form.
var compiled sync.Map // string -> glob.Glob

// Match reports whether name matches pattern.
func Match(pattern, name string) bool {
	g, err := compile(pattern)
	if err != nil {
		return false
	}
	return g.Match(prepare(name))
}

// MatchAny returns the first pattern that matches name.
func MatchAny(patterns []string, name string) (string, bool) {
	n := prepare(name)
	for _, p := range patterns {
		g, err := compile(p)
		if err != nil {
			continue
		}
		if g.Match(n) {
			return p, true
		}
	}
	return "", false
}

func compile(pattern string) (glob.Glob, error) {
	key := quote(prepare(pattern))
	if g, ok := compiled.Load(key); ok {
		return g.(glob.Glob), nil
	}
	g, err := glob.Compile(key)
	if err != nil {
		return nil, err
	}
	compiled.Store(key, g)
	return g, nil
}

// quote escapes the glyphs gobwas/glob treats as syntax beyond * and ?.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '[', ']', '{', '}', ',':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// invalidBase is where invalid UTF-8 bytes are mapped, one rune per byte, in
// the supplementary private use area. Distinct bytes stay distinct.
const invalidBase = 0x10FF00

// prepare lowercases s. Invalid UTF-8 bytes are kept apart from each other
// and from U+FFFD instead of all decoding to the replacement character.
func prepare(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for len(s) > 0 {
		r, w := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && w == 1 {
			b.WriteRune(rune(invalidBase + int(s[0])))
		} else {
			b.WriteString(strings.ToLower(s[:w]))
		}
		s = s[w:]
	}
	return b.String()
}
