package driver

import (
	"xlc/internal/symtab"
	"xlc/internal/trace"
)

// Options управляют одним запуском Tokenize / Parse / ParseDir.
type Options struct {
	MaxDiagnostics int
	Tracer         trace.Tracer  // nil → trace.FromContext
	Symbols        *symtab.Table // nil → symtab.Default()
	Timings        bool          // добавить OBS6001 с таймингами фаз в Bag
	Cache          *DiskCache    // nil → без кэша
	Jobs           int           // ParseDir; <= 0 → GOMAXPROCS
	Progress       ProgressSink  // ParseDir; может быть nil
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

func (o Options) symbols() *symtab.Table {
	if o.Symbols == nil {
		return symtab.Default()
	}
	return o.Symbols
}
