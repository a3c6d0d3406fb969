// log.go implements the "domainguard log" command, a view over the audit log
// for the current directory.

package core

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpl-au/domainguard/cmd"
	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/duration"
	"github.com/jpl-au/domainguard/internal/format"
	"github.com/jpl-au/domainguard/internal/log"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent audit log entries",
		Long: `Show recent audit log entries recorded for the current directory,
newest first. The log lives in ~/.domainguard/log/domainguard-log.db.

  domainguard log -n 50
  domainguard log --since 7d
  domainguard log --prune 30d     # delete entries older than 30 days

Durations: 12h, 7d, 4w, 3m.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum entries to show")
	c.Flags().String(extension.FlagSince, "", "Only show entries newer than this duration")
	c.Flags().String(extension.FlagPrune, "", "Delete entries older than this duration")
	c.MarkFlagsMutuallyExclusive(extension.FlagSince, extension.FlagPrune)
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	since, _ := c.Flags().GetString(extension.FlagSince)
	prune, _ := c.Flags().GetString(extension.FlagPrune)

	if prune != "" {
		return runPrune(prune)
	}

	var from time.Time
	if since != "" {
		t, err := duration.Before(time.Now(), since)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("--since: %w", err))
		}
		from = t
	}

	entries, err := log.RecentSince(limit, from)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("reading audit log: %w", err))
	}
	if cmd.JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return cmd.PrintJSON(entries)
	}

	return format.Entries(cmd.Out(), entries)
}

func runPrune(age string) error {
	cutoff, err := duration.Before(time.Now(), age)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("--prune: %w", err))
	}

	n, err := log.Prune(cutoff)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("pruning audit log: %w", err))
	}
	log.Event("core:log", "prune").Author(cmd.Author()).Detail("older_than", age).Detail("removed", n).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"removed": n, "older_than": age})
	}
	fmt.Fprintf(cmd.Out(), "Removed %d entries older than %s\n", n, age)
	return nil
}
