// commands.go implements the check, match and extract CLI commands.

package check

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/cmd"
	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/domain"
	"github.com/jpl-au/domainguard/internal/log"
	"github.com/jpl-au/domainguard/internal/validate"
)

func (e *Extension) newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check <email>",
		Short: "Check an email address against domain lists",
		Long: `Check an email address against allowed and disallowed domain patterns.

Lists come from flags, or from a profile field in the config:

  domainguard check user@corp.com -A corp.com -A '*.corp.com'
  domainguard check user@spam.net -D spam.net --show-list
  domainguard check user@corp.com --allow-file allowed.txt
  domainguard check user@corp.com --field "Work email"
  domainguard check user@corp.com           # check.field, else the Email field

Prints "valid" or "invalid (<Kind>): <message>". Exits 1 when invalid.
An address without a domain is valid; syntax is not checked.
Any list flag selects explicit lists, even when its file is empty: an
empty list allows everything and the configured field is not used.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runCheck,
	}
	c.Flags().StringArrayP(extension.FlagAllow, "A", nil, "Allowed domain pattern (repeatable)")
	c.Flags().StringArrayP(extension.FlagDeny, "D", nil, "Disallowed domain pattern (repeatable)")
	c.Flags().String(extension.FlagAllowFile, "", "File of allowed patterns, one per line ('-' for stdin)")
	c.Flags().String(extension.FlagDenyFile, "", "File of disallowed patterns, one per line ('-' for stdin)")
	c.Flags().Bool(extension.FlagShowList, false, "Append the pattern list to failure messages")
	c.Flags().StringP(extension.FlagField, "f", "", "Check through this profile field")
	c.Flags().Bool(extension.FlagLint, false, "Warn about patterns that can never match")
	return c
}

func (e *Extension) runCheck(c *cobra.Command, args []string) error {
	req, err := requestFromFlags(c, args[0])
	l := log.Event("check:check", "validate").Author(cmd.Author()).Subject(args[0])
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	out, err := Evaluate(e.ctx.Config(), e.ctx.Messages(), req)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("check: %w", err))
	}
	l.Field(out.Field).Outcome(out.Kind.String()).Write(nil)

	if cmd.JSON() {
		if err := cmd.PrintJSON(out); err != nil {
			return err
		}
	} else {
		for _, p := range out.Problems {
			fmt.Fprintf(cmd.Out(), "warning: %s\n", p)
		}
		fmt.Fprintln(cmd.Out(), describe(out.Result))
	}

	if !out.Valid {
		return cmd.ErrSilent
	}
	return nil
}

func describe(r domain.Result) string {
	if r.Valid {
		return "valid"
	}
	return fmt.Sprintf("invalid (%s): %s", r.Kind, r.Message)
}

func requestFromFlags(c *cobra.Command, value string) (Request, error) {
	allow, _ := c.Flags().GetStringArray(extension.FlagAllow)
	deny, _ := c.Flags().GetStringArray(extension.FlagDeny)
	allowFile, _ := c.Flags().GetString(extension.FlagAllowFile)
	denyFile, _ := c.Flags().GetString(extension.FlagDenyFile)
	field, _ := c.Flags().GetString(extension.FlagField)
	lint, _ := c.Flags().GetBool(extension.FlagLint)

	req := Request{
		Value:      value,
		Allowed:    domain.NormalizePatternList(strings.Join(allow, "\n")),
		Disallowed: domain.NormalizePatternList(strings.Join(deny, "\n")),
		Field:      field,
		Lint:       lint,
	}
	for _, name := range []string{extension.FlagAllow, extension.FlagDeny, extension.FlagAllowFile, extension.FlagDenyFile} {
		if c.Flags().Changed(name) {
			req.Explicit = true
		}
	}
	if c.Flags().Changed(extension.FlagShowList) {
		show, _ := c.Flags().GetBool(extension.FlagShowList)
		req.ShowList = &show
	}

	if allowFile == "-" && denyFile == "-" {
		return req, ErrStdinTwice
	}
	if allowFile != "" {
		l, err := readList(allowFile)
		if err != nil {
			return req, err
		}
		req.Allowed = append(req.Allowed, l...)
	}
	if denyFile != "" {
		l, err := readList(denyFile)
		if err != nil {
			return req, err
		}
		req.Disallowed = append(req.Disallowed, l...)
	}
	return req, nil
}

// readList reads a newline-delimited pattern file, or stdin for "-".
func readList(path string) (domain.PatternList, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.In()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading pattern list: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, validate.MaxContent+1))
	if err != nil {
		return nil, fmt.Errorf("reading pattern list: %w", err)
	}
	if err := validate.Content(string(data), validate.MaxContent); err != nil {
		return nil, fmt.Errorf("pattern list %s: %w", path, err)
	}
	return domain.NormalizePatternList(string(data)), nil
}

func (e *Extension) newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <domain> <pattern>...",
		Short: "Test a domain against wildcard patterns",
		Long: `Print the first pattern that matches the domain. Exits 1 with "no match"
when none do.

  domainguard match mail.corp.com '*.corp.com' corp.com
  domainguard match CORP.COM corp.com          # case-insensitive`,
		Args: cobra.MinimumNArgs(2),
		RunE: e.runMatch,
	}
}

func (e *Extension) runMatch(_ *cobra.Command, args []string) error {
	d, patterns := args[0], domain.PatternList(args[1:])

	p, ok := domain.FirstMatch(d, patterns)
	l := log.Event("check:match", "match").Author(cmd.Author()).Subject(d).Detail("patterns", len(patterns))
	if ok {
		l.Detail("pattern", p)
	}
	l.Write(nil)

	if cmd.JSON() {
		if err := cmd.PrintJSON(map[string]any{"domain": d, "matched": ok, "pattern": p}); err != nil {
			return err
		}
	} else if ok {
		fmt.Fprintln(cmd.Out(), p)
	} else {
		fmt.Fprintln(cmd.Out(), "no match")
	}

	if !ok {
		return cmd.ErrSilent
	}
	return nil
}

func (e *Extension) newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <value>",
		Short: "Print the domain of an email address",
		Long: `Print the text after the last '@'. Exits 1 when there is none: a blank
value, no '@', or a trailing '@'.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runExtract,
	}
}

func (e *Extension) runExtract(_ *cobra.Command, args []string) error {
	d, ok := domain.ExtractDomain(args[0])
	log.Event("check:extract", "extract").Author(cmd.Author()).Subject(args[0]).Detail("found", ok).Write(nil)

	if cmd.JSON() {
		if err := cmd.PrintJSON(map[string]any{"value": args[0], "domain": d, "found": ok}); err != nil {
			return err
		}
	} else if ok {
		fmt.Fprintln(cmd.Out(), d)
	} else {
		fmt.Fprintln(cmd.Out(), "no domain")
	}

	if !ok {
		return cmd.ErrSilent
	}
	return nil
}
