package driver

import (
	"context"

	"xlc/internal/diag"
	"xlc/internal/lexer"
	"xlc/internal/source"
	"xlc/internal/token"
	"xlc/internal/trace"
)

type TokenizeResult struct {
	File    *source.File
	Tokens  []token.Token // без EOF
	Bag     *diag.Bag
	Listing string
	Err     error // *lexer.Error, если сканирование прервано
}

func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return TokenizeFile(ctx, file, opts), nil
}

// TokenizeFile прогоняет лексер по уже загруженному файлу до конца потока.
func TokenizeFile(ctx context.Context, file *source.File, opts Options) *TokenizeResult {
	tracer := tracerFor(ctx, opts)
	bag := diag.NewBag(opts.maxDiagnostics())

	_, span := trace.Start(trace.WithTracer(ctx, tracer), trace.ScopePass, "tokenize")
	span.WithExtra("file", file.Path)
	rd := file.NewReader(source.ReaderOptions{Tracer: tracer})
	lx := lexer.New(rd, lexer.Options{
		Reporter: diag.NewDedup(diag.BagReporter{Bag: bag}),
		Symbols:  opts.symbols(),
	})
	tokens := lexer.Collect(lx)
	span.End("")

	return &TokenizeResult{
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Listing: rd.Listing(),
		Err:     lx.Err(),
	}
}

func tracerFor(ctx context.Context, opts Options) trace.Tracer {
	if opts.Tracer != nil {
		return opts.Tracer
	}
	return trace.FromContext(ctx)
}
