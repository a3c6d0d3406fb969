// commands.go implements the "domainguard field" command tree.

package field

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/domainguard/cmd"
	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/config"
	"github.com/jpl-au/domainguard/internal/format"
	"github.com/jpl-au/domainguard/internal/log"
	"github.com/jpl-au/domainguard/internal/profile"
	"github.com/jpl-au/domainguard/internal/validate"
)

func (e *Extension) newFieldCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "field",
		Short: "Manage profile fields and their domain settings",
		Long: `List, inspect and edit profile fields. Only fields bound to the member's
Email carry domain settings.

  domainguard field ls
  domainguard field show Email
  domainguard field set Email allowed_domains "corp.com
*.corp.com"
  domainguard field set Email disallowed_domains - < blocked.txt
  domainguard field set Email show_domains_on_error true`,
	}
	c.AddCommand(e.newLsCmd())
	c.AddCommand(e.newShowCmd())
	c.AddCommand(e.newGetCmd())
	c.AddCommand(e.newSetCmd())
	c.AddCommand(e.newAddCmd())
	c.AddCommand(e.newRmCmd())
	return c
}

func (e *Extension) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List profile fields",
		Args:  cobra.NoArgs,
		RunE:  e.runLs,
	}
}

func (e *Extension) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a field's editor layout",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runShow,
	}
}

func (e *Extension) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name> <key>",
		Short: "Print one field setting",
		Args:  cobra.ExactArgs(2),
		RunE:  e.runGet,
	}
}

func (e *Extension) newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <key> <value>",
		Short: "Change one field setting",
		Long: `Change one field setting and save the config. Pass '-' as the value to
read it from stdin. Pattern lists are normalised to one pattern per line and
rejected when a line can never match.

Keys: member_field, public_visibility, public_visibility_default,
allowed_domains, disallowed_domains, show_domains_on_error.`,
		Args: cobra.ExactArgs(3),
		RunE: e.runSet,
	}
}

func (e *Extension) newAddCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a profile field",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runAdd,
	}
	c.Flags().String(extension.FlagMemberField, "", `Member attribute to bind, e.g. "Email"`)
	return c
}

func (e *Extension) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a profile field",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runRm,
	}
}

func (e *Extension) runLs(_ *cobra.Command, _ []string) error {
	fields := e.ctx.Config().Fields
	log.Event("field:ls", "list").Author(cmd.Author()).Detail("count", len(fields)).Write(nil)

	if cmd.JSON() {
		if fields == nil {
			fields = []profile.Field{}
		}
		return cmd.PrintJSON(fields)
	}
	if len(fields) == 0 {
		fmt.Fprintln(cmd.Out(), `No fields. Run "domainguard init" or "domainguard field add".`)
		return nil
	}
	return format.Fields(cmd.Out(), fields)
}

func (e *Extension) runShow(_ *cobra.Command, args []string) error {
	pf, err := e.ctx.Config().Field(args[0])
	log.Event("field:show", "show").Author(cmd.Author()).Field(args[0]).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"field": pf, "layout": pf.CMSFields()})
	}
	return format.Layout(cmd.Out(), pf.Name, pf.CMSFields())
}

func (e *Extension) runGet(_ *cobra.Command, args []string) error {
	name, key := args[0], args[1]
	pf, err := e.ctx.Config().Field(name)
	var v string
	if err == nil {
		v, err = pf.Get(key)
	}
	log.Event("field:get", "get").Author(cmd.Author()).Field(name).Detail("key", key).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("field get %q %q: %w", name, key, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"field": name, "key": key, "value": v})
	}
	fmt.Fprint(cmd.Out(), v)
	if v == "" || v[len(v)-1] != '\n' {
		fmt.Fprintln(cmd.Out())
	}
	return nil
}

func (e *Extension) runSet(_ *cobra.Command, args []string) error {
	name, key, value := args[0], args[1], args[2]
	l := log.Event("field:set", "update").Author(cmd.Author()).Field(name).Detail("key", key)

	if value == "-" {
		data, err := io.ReadAll(io.LimitReader(cmd.In(), validate.MaxContent+1))
		if err == nil {
			err = validate.Content(string(data), validate.MaxContent)
		}
		if err != nil {
			l.Write(err)
			return cmd.PrintJSONError(fmt.Errorf("reading stdin: %w", err))
		}
		value = string(data)
	}

	ch, err := apply(e.ctx, name, key, value)
	if ch.Diff != nil {
		l.Detail("added", len(ch.Diff.Added)).Detail("removed", len(ch.Diff.Removed))
	}
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("field set %q %q: %w", name, key, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(ch)
	}
	if ch.Diff == nil {
		fmt.Fprintf(cmd.Out(), "%s.%s = %s\n", name, key, ch.Value)
		return nil
	}
	if !ch.Diff.Changed() {
		fmt.Fprintf(cmd.Out(), "%s.%s unchanged\n", name, key)
		return nil
	}
	fmt.Fprint(cmd.Out(), ch.Diff.Format(colour()))
	return nil
}

func (e *Extension) runAdd(c *cobra.Command, args []string) error {
	member, _ := c.Flags().GetString(extension.FlagMemberField)
	f := profile.Field{Name: args[0], MemberField: member}
	if f.IsEmail() {
		f.PublicVisibility = profile.VisibilityHide
	}

	err := e.ctx.Update(func(cfg *config.Config) error {
		return cfg.AddField(f)
	})
	log.Event("field:add", "create").Author(cmd.Author()).Field(f.Name).Detail("member_field", member).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("field add %q: %w", f.Name, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(f)
	}
	fmt.Fprintf(cmd.Out(), "Added field %q\n", f.Name)
	return nil
}

func (e *Extension) runRm(_ *cobra.Command, args []string) error {
	name := args[0]
	err := e.ctx.Update(func(cfg *config.Config) error {
		if cfg.Check.Field == name {
			cfg.Check.Field = ""
		}
		return cfg.RemoveField(name)
	})
	log.Event("field:rm", "remove").Author(cmd.Author()).Field(name).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("field rm %q: %w", name, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"removed": name})
	}
	fmt.Fprintf(cmd.Out(), "Removed field %q\n", name)
	return nil
}

// colour reports whether diff output should carry ANSI colours.
func colour() bool {
	return cmd.Out() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
}
