package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the parse cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dir",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE:  traced(runCacheDir),
		},
		&cobra.Command{
			Use:   "clean",
			Short: "Remove all cached trees",
			Args:  cobra.NoArgs,
			RunE:  traced(runCacheClean),
		},
	)
	return cmd
}

func runCacheDir(cmd *cobra.Command, _ []string) error {
	opts, err := settingsFrom(cmd).driverOptions(cmd, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), opts.Cache.Dir())
	return err
}

func runCacheClean(cmd *cobra.Command, _ []string) error {
	s := settingsFrom(cmd)
	opts, err := s.driverOptions(cmd, true)
	if err != nil {
		return err
	}
	n, err := opts.Cache.DropAll()
	if err != nil {
		return fmt.Errorf("cache clean: %w", err)
	}
	if !s.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached trees from %s\n", n, opts.Cache.Dir())
	}
	return nil
}
