// version.go implements the version command.

package core

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/cmd"
	"github.com/jpl-au/domainguard/internal/version"
)

const flagShort = "short"

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the build tag, build time, git commit, Go version and platform.
--short prints only the tag.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			if cmd.JSON() {
				return cmd.PrintJSON(info)
			}
			if short, _ := c.Flags().GetBool(flagShort); short {
				fmt.Fprintln(cmd.Out(), version.Short())
				return nil
			}
			fmt.Fprint(cmd.Out(), info.String())
			return nil
		},
	}
	c.Flags().Bool(flagShort, false, "Print only the version tag")
	return c
}
