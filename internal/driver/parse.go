package driver

import (
	"context"
	"encoding/json"
	"fmt"

	"xlc/internal/ast"
	"xlc/internal/diag"
	"xlc/internal/lexer"
	"xlc/internal/observ"
	"xlc/internal/parser"
	"xlc/internal/source"
	"xlc/internal/trace"
)

type ParseResult struct {
	File    *source.File
	Tree    *ast.Node // nil, если разбор не удался
	Bag     *diag.Bag
	Listing string // пусто для дерева из кэша
	Cached  bool
	Err     error // *lexer.Error или *parser.SyntaxError
	Timing  *observ.Report
}

func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	timer := newTimer(opts)
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	stop := timer.Start(string(StageLoad))
	file, err := source.Load(path)
	stop("")
	if err != nil {
		return nil, err
	}
	return parseFile(ctx, file, opts, timer), nil
}

// ParseFile разбирает уже загруженный файл. Ошибки разбора не возвращаются
// отдельно: они в Bag и в ParseResult.Err.
func ParseFile(ctx context.Context, file *source.File, opts Options) *ParseResult {
	return parseFile(ctx, file, opts, newTimer(opts))
}

func parseFile(ctx context.Context, file *source.File, opts Options, timer *observ.Timer) *ParseResult {
	tracer := tracerFor(ctx, opts)
	res := &ParseResult{File: file, Bag: diag.NewBag(opts.maxDiagnostics())}
	defer finishTiming(res, timer)

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	if opts.Cache != nil && loadCached(res, opts, timer) {
		return res
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	stop := timer.Start(string(StageParse))
	_, span := trace.Start(trace.WithTracer(ctx, tracer), trace.ScopePass, "parse-file")
	span.WithExtra("file", file.Path)
	rd := file.NewReader(source.ReaderOptions{Tracer: tracer})
	reporter := diag.NewDedup(diag.BagReporter{Bag: res.Bag})
	lx := lexer.New(rd, lexer.Options{Reporter: reporter, Symbols: opts.symbols()})
	tree, err := parser.New(lx, parser.Options{
		Reporter: reporter,
		Tracer:   tracer,
		Symbols:  opts.symbols(),
		Parent:   span.ID(),
	}).Execute()
	span.End("")
	stop("")

	res.Listing = rd.Listing()
	if err != nil {
		res.Err = err
		return res
	}
	res.Tree = tree

	if opts.Cache != nil {
		storeCached(res, opts, timer)
	}
	return res
}

func loadCached(res *ParseResult, opts Options, timer *observ.Timer) bool {
	emit(opts.Progress, Event{File: res.File.Path, Stage: StageCache, Status: StatusWorking})
	stop := timer.Start(string(StageCache))
	data, ok, err := opts.Cache.Get(res.File.Hash)
	if err == nil && ok {
		var tree *ast.Node
		tree, err = ast.Unmarshal(data, opts.symbols())
		if err == nil {
			res.Tree = tree
			res.Cached = true
			stop("hit")
			return true
		}
	}
	if err != nil {
		res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{},
			fmt.Sprintf("cache read for %s: %v", res.File.Path, err)))
	}
	stop("miss")
	return false
}

func storeCached(res *ParseResult, opts Options, timer *observ.Timer) {
	defer timer.Start(string(StageCache))("store")
	data, err := ast.Marshal(res.Tree)
	if err == nil {
		err = opts.Cache.Put(res.File.Hash, res.File.Path, data)
	}
	if err != nil {
		res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{},
			fmt.Sprintf("cache write for %s: %v", res.File.Path, err)))
	}
}

func newTimer(opts Options) *observ.Timer {
	if !opts.Timings {
		return nil
	}
	return observ.NewTimer()
}

// finishTiming keeps the report on res and adds it to the bag as OBS6001:
// the summary goes to the message, the JSON report to a note.
func finishTiming(res *ParseResult, timer *observ.Timer) {
	if timer == nil {
		return
	}
	report := timer.Report()
	res.Timing = &report
	data, _ := json.Marshal(struct {
		Path string `json:"path"`
		observ.Report
	}{res.File.Path, report})
	res.Bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{},
		fmt.Sprintf("timings %s: %s", res.File.Path, report)).
		WithNote(source.Span{}, string(data)))
}
