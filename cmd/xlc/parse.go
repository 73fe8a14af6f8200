package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"xlc/internal/ast"
	"xlc/internal/diagfmt"
	"xlc/internal/driver"
	"xlc/internal/ui"
)

var errParseFailed = errors.New("parse failed")

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.x|directory>",
		Short: "Parse an X source file or directory and print the syntax tree",
		Long:  `Parse analyzes an X source file or every *.x file under a directory and prints the syntax trees`,
		Args:  cobra.ExactArgs(1),
		RunE:  traced(runParse),
	}
	f := cmd.Flags()
	f.String("format", "indent", "output format (indent|tree|pretty|json|layout)")
	f.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	f.Bool("cache", false, "reuse parsed trees from the disk cache")
	f.Bool("ui", false, "show a progress view while parsing a directory")
	f.Bool("listing", false, "print the numbered source listing before the tree")
	return cmd
}

type parseFlags struct {
	format  string
	jobs    int
	cache   bool
	ui      bool
	listing bool
}

func readParseFlags(cmd *cobra.Command) (parseFlags, error) {
	var pf parseFlags
	var err error
	f := cmd.Flags()
	if pf.format, err = f.GetString("format"); err != nil {
		return pf, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch pf.format {
	case "indent", "tree", "pretty", "json", "layout":
	default:
		return pf, fmt.Errorf("unknown format: %s", pf.format)
	}
	pf.jobs, _ = f.GetInt("jobs")
	pf.cache, _ = f.GetBool("cache")
	pf.ui, _ = f.GetBool("ui")
	pf.listing, _ = f.GetBool("listing")
	return pf, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	s := settingsFrom(cmd)
	pf, err := readParseFlags(cmd)
	if err != nil {
		return err
	}
	// листинг есть только у свежего разбора
	opts, err := s.driverOptions(cmd, pf.cache && !pf.listing)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		opts.Jobs = pf.jobs
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return parseDir(cmd, s, pf, path, opts)
	}

	res, err := driver.Parse(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	out := cmd.OutOrStdout()
	if pf.listing {
		if _, err := io.WriteString(out, res.Listing); err != nil {
			return err
		}
	}
	printDiagnostics(cmd, s, path, res.Bag, res.File)
	if res.Tree == nil {
		return errParseFailed
	}
	if s.quiet {
		return nil
	}
	return renderTree(out, pf.format, res.Tree)
}

func parseDir(cmd *cobra.Command, s *settings, pf parseFlags, dir string, opts driver.Options) error {
	var results []driver.ParseDirResult
	run := func(sink driver.ProgressSink) error {
		opts.Progress = sink
		var err error
		results, err = driver.ParseDir(cmd.Context(), dir, opts)
		return err
	}

	var err error
	if pf.ui {
		files, lerr := driver.ListSources(dir)
		if lerr != nil {
			return lerr
		}
		err = ui.Run(cmd.ErrOrStderr(), "parse "+dir, files, run)
	} else {
		err = run(nil)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if pf.listing && r.Listing != "" {
			fmt.Fprintf(out, "== %s ==\n%s", r.Path, r.Listing)
		}
		printDiagnostics(cmd, s, r.Path, r.Bag, r.File)
		if r.Tree == nil {
			failed++
			continue
		}
		if s.quiet {
			continue
		}
		fmt.Fprintf(out, "== %s ==\n", r.Path)
		if err := renderTree(out, pf.format, r.Tree); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errParseFailed, failed, len(results))
	}
	return nil
}

func renderTree(w io.Writer, format string, root *ast.Node) error {
	switch format {
	case "tree":
		return diagfmt.FormatASTTree(w, root)
	case "pretty":
		return diagfmt.FormatASTPretty(w, root)
	case "json":
		return diagfmt.FormatASTJSON(w, root)
	case "layout":
		return diagfmt.FormatLayoutTable(w, root)
	default:
		return diagfmt.PrintTree(w, root)
	}
}
