// patterns.go turns raw configuration text into pattern lists.

package domain

import "strings"

// PatternList is an ordered list of domain patterns. Entries may contain the
// * and ? wildcards and are compared case-insensitively.
type PatternList []string

// NormalizePatternList builds a PatternList from either raw text or an
// already-split list.
//
// A []string is taken as already normalised and passed through unchanged.
// Text is split on line breaks; each line is trimmed and blank lines are
// dropped, keeping the original order.
func NormalizePatternList[T string | []string](input T) PatternList {
	switch v := any(input).(type) {
	case []string:
		return PatternList(v)
	case string:
		return parseLines(v)
	}
	return nil
}

func parseLines(text string) PatternList {
	var out PatternList
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Empty reports whether the list has no patterns.
func (l PatternList) Empty() bool { return len(l) == 0 }

// String renders the list comma-joined, the form used in error messages.
func (l PatternList) String() string {
	return strings.Join(l, ", ")
}

// Text renders the list one pattern per line, the form it is stored in.
func (l PatternList) Text() string {
	if len(l) == 0 {
		return ""
	}
	return strings.Join(l, "\n") + "\n"
}
