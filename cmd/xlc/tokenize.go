package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xlc/internal/diagfmt"
	"xlc/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.x",
		Short: "Tokenize an X source file",
		Long:  `Tokenize breaks an X source file into tokens and prints them`,
		Args:  cobra.ExactArgs(1),
		RunE:  traced(runTokenize),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	s := settingsFrom(cmd)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := s.driverOptions(cmd, false)
	if err != nil {
		return err
	}
	result, err := driver.Tokenize(cmd.Context(), filePath, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd, s, filePath, result.Bag, result.File)

	// токены до ошибки всё равно печатаем
	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens)
	}
	if err != nil {
		return err
	}
	return result.Err
}
