// init.go implements the "domainguard init" command.
//
// init writes a local .domainguard/config.yaml with an Email profile field so
// "field set" has something to edit. It refuses to overwrite an existing file.

package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/cmd"
	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/config"
	"github.com/jpl-au/domainguard/internal/log"
	"github.com/jpl-au/domainguard/internal/profile"
)

// ErrAlreadyInitialised is returned when the config file already exists.
var ErrAlreadyInitialised = errors.New("config already exists")

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Create a config with an Email field",
		Long: `Creates .domainguard/config.yaml in the current directory holding one
profile field, "Email", bound to the member's Email.

  domainguard init
  domainguard init --field "Work email"

Add patterns afterwards with "domainguard field set".`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	c.Flags().String(extension.FlagField, profile.EmailMemberField, "Name of the Email field to create")
	return c
}

func runInit(c *cobra.Command, _ []string) error {
	name, _ := c.Flags().GetString(extension.FlagField)
	l := log.Event("core:init", "create").Author(cmd.Author()).Field(name)

	if _, err := os.Stat(config.LocalPath()); err == nil {
		err = fmt.Errorf("%w: %s", ErrAlreadyInitialised, config.LocalPath())
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	cfg, err := config.LoadScope(config.ScopeLocal)
	if err == nil {
		err = cfg.AddField(profile.Field{
			Name:             name,
			MemberField:      profile.EmailMemberField,
			PublicVisibility: profile.VisibilityHide,
		})
	}
	if err == nil {
		err = cfg.Save()
	}
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"path": config.LocalPath(), "field": name})
	}
	fmt.Fprintf(cmd.Out(), "Created %s with field %q\n", config.LocalPath(), name)
	return nil
}
