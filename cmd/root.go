/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE loads the config lazily: only commands that need it
// trigger extension init. Commands declared configless (config, guide,
// version) keep working when the config file is broken.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/internal/log"
	"github.com/jpl-au/domainguard/internal/repo"
)

// ErrSilent is returned by commands that already printed their outcome and
// only need a non-zero exit status, such as a check that found an invalid
// address.
var ErrSilent = errors.New("silent failure")

var rootCmd = &cobra.Command{
	Use:   "domainguard",
	Short: "Allow or deny email addresses by domain",
	Long: `Validate email addresses against allow-lists and deny-lists of wildcard domain
patterns, manage the profile fields that carry those lists, and expose the
same checks to agents over MCP.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if author == "" {
			author = detectAuthor()
		}

		if noConfigCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initExtensions(); err != nil {
			return PrintJSONError(fmt.Errorf("initialise extensions: %w", err))
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "domainguard field set Email ...", returns "field".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until the parent is the root
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command.
// Exit code 1 indicates an error or an invalid check result.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(repo.Root(wd))
	}

	registerExtensions()
	rootCmd.SilenceErrors = true
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		if !errors.Is(err, ErrSilent) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
