package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xlc/internal/diag"
	"xlc/internal/diagfmt"
	"xlc/internal/source"
)

// printDiagnostics выводит bag в stderr. Информационные (timings) в --quiet
// не показываются.
func printDiagnostics(cmd *cobra.Command, s *settings, path string, bag *diag.Bag, file *source.File) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	if s.quiet && !bag.HasErrors() {
		return
	}
	bag.Dedup()
	bag.Sort()
	w := cmd.ErrOrStderr()
	switch s.diagFormat {
	case "json":
		if err := diagfmt.JSON(w, path, bag, diagfmt.JSONOpts{IncludeNotes: !s.quiet}); err != nil {
			fmt.Fprintf(w, "%s: %v\n", path, err)
		}
		return
	case "short":
		_ = diagfmt.Short(w, path, bag, !s.quiet)
	default:
		diagfmt.Pretty(w, path, bag, file, diagfmt.PrettyOpts{
			Color:     s.color,
			Context:   2,
			ShowNotes: !s.quiet,
		})
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "%s: %d more diagnostics suppressed (--max-diagnostics)\n", path, n)
	}
}
