package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"xlc/internal/source"
	"xlc/internal/trace"
)

func newListingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listing file.x",
		Short: "Print the numbered source listing",
		Args:  cobra.ExactArgs(1),
		RunE:  traced(runListing),
	}
}

func runListing(cmd *cobra.Command, args []string) error {
	file, err := source.Load(args[0])
	if err != nil {
		return err
	}
	rd := file.NewReader(source.ReaderOptions{Tracer: trace.FromContext(cmd.Context())})
	defer rd.Close()
	for {
		if _, err := rd.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("%s: %w", args[0], err)
		}
	}
	_, err = io.WriteString(cmd.OutOrStdout(), rd.Listing())
	return err
}
