package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"xlc/internal/version"
)

// newRootCmd builds the command tree. Each call returns fresh commands so
// tests can run them in isolation.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xlc",
		Short:         "Front end for the X language",
		Long:          `xlc tokenizes and parses X programs and prints their syntax trees`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	pf.String("trace", "", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-output", "", "trace output file (default stderr, *.ndjson for JSON lines)")
	pf.String("config", "", "config file (default: xlc.toml/xlc.yaml found upwards)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return setupTracing(cmd, s)
	}

	root.AddCommand(newTokenizeCmd(), newParseCmd(), newListingCmd(), newCacheCmd(), newVersionCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("error:", err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
