// Package format provides output formatting utilities for CLI display.
//
// Command implementations hand their results here so column alignment and
// layout rendering live in one place.
package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpl-au/domainguard/internal/log"
	"github.com/jpl-au/domainguard/internal/profile"
)

// Fields prints profile fields as an aligned table with pattern counts.
func Fields(w io.Writer, fields []profile.Field) error {
	if len(fields) == 0 {
		return nil
	}

	// Find max name length for alignment
	maxName := 4 // minimum "NAME"
	for _, f := range fields {
		if len(f.Name) > maxName {
			maxName = len(f.Name)
		}
	}

	fmt.Fprintf(w, "%-*s  %-12s  %5s  %5s  %s\n", maxName, "NAME", "MEMBER", "ALLOW", "DENY", "SHOW")
	for _, f := range fields {
		member := f.MemberField
		if member == "" {
			member = "-"
		}
		if !f.IsEmail() {
			fmt.Fprintf(w, "%-*s  %-12s  %5s  %5s  %s\n", maxName, f.Name, member, "-", "-", "-")
			continue
		}
		fmt.Fprintf(w, "%-*s  %-12s  %5d  %5d  %t\n", maxName, f.Name, member,
			len(f.Allowed()), len(f.Disallowed()), f.ShowDomainsOnError)
	}
	return nil
}

// Layout prints a field's editor layout as a tree. Textareas list one
// pattern per branch.
func Layout(w io.Writer, name string, items []profile.Item) error {
	fmt.Fprintln(w, name)
	for i, it := range items {
		last := i == len(items)-1
		connector, pfx := "├── ", "│   "
		if last {
			connector, pfx = "└── ", "    "
		}

		switch it.Kind {
		case profile.ItemHeader:
			fmt.Fprintf(w, "%s%s %s\n", connector, strings.Repeat("#", max(it.Level, 1)), it.Title)
		case profile.ItemLiteral:
			fmt.Fprintf(w, "%s%s\n", connector, it.Value)
		case profile.ItemTextArea:
			lines := strings.Split(strings.TrimSuffix(it.Value, "\n"), "\n")
			if it.Value == "" {
				lines = nil
			}
			fmt.Fprintf(w, "%s%s [%s] (%d)\n", connector, it.Title, it.Kind, len(lines))
			for j, l := range lines {
				c := "├── "
				if j == len(lines)-1 {
					c = "└── "
				}
				fmt.Fprintf(w, "%s%s%s\n", pfx, c, l)
			}
		default:
			v := it.Value
			if v == "" {
				v = "-"
			}
			fmt.Fprintf(w, "%s%s [%s]: %s\n", connector, it.Title, it.Kind, v)
		}
	}
	return nil
}

// Entries prints audit log entries one per line.
func Entries(w io.Writer, entries []log.Entry) error {
	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "error: " + e.Error
		}
		line := fmt.Sprintf("%s  %-20s %-8s", time.Unix(e.Start, 0).Format(time.DateTime), e.Source, e.Action)
		if e.Field != "" {
			line += " field=" + e.Field
		}
		if e.Subject != "" {
			line += " subject=" + e.Subject
		}
		if e.Outcome != "" {
			line += " outcome=" + e.Outcome
		}
		fmt.Fprintf(w, "%s  %s\n", line, status)
	}
	return nil
}
