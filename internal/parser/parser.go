package parser

import (
	"errors"
	"io"

	"xlc/internal/ast"
	"xlc/internal/diag"
	"xlc/internal/lexer"
	"xlc/internal/source"
	"xlc/internal/symtab"
	"xlc/internal/token"
	"xlc/internal/trace"
)

type Options struct {
	Reporter diag.Reporter // может быть nil
	Tracer   trace.Tracer  // nil → trace.Nop
	Symbols  *symtab.Table // используется только Parse; nil → symtab.Default()
	Parent   uint64        // span id вызывающего, 0 для корня
}

// Parser: состояние парсера на одну программу.
// One token of lookahead (cur), advanced by scan.
type Parser struct {
	ts       lexer.Stream
	opts     Options
	tracer   trace.Tracer
	cur      token.Token
	lastSpan source.Span // span последнего съеденного токена
	done     bool
}

var ErrReused = errors.New("parser: Execute called more than once")

// New creates a parser over ts and reads the first token.
func New(ts lexer.Stream, opts Options) *Parser {
	p := &Parser{ts: ts, opts: opts, tracer: opts.Tracer}
	if p.tracer == nil {
		p.tracer = trace.Nop
	}
	if p.opts.Reporter == nil {
		p.opts.Reporter = diag.NopReporter{}
	}
	p.scan()
	return p
}

// NewFromTokens parses a prepared token sequence; the EOF marker is implied.
func NewFromTokens(toks []token.Token, opts Options) *Parser {
	return New(lexer.FromTokens(toks...), opts)
}

// Parse reads a whole program from r.
func Parse(r io.Reader, opts Options) (*ast.Node, error) {
	rd := source.NewReader(r, source.ReaderOptions{Tracer: opts.Tracer})
	lx := lexer.New(rd, lexer.Options{Reporter: opts.Reporter, Symbols: opts.Symbols})
	return New(lx, opts).Execute()
}

// Execute parses Program followed by end of input. On failure no tree is
// returned. A lexical error that cut the token stream short takes
// precedence over the syntax error it caused; it has already been reported
// by the tokenizer.
func (p *Parser) Execute() (*ast.Node, error) {
	if p.done {
		return nil, ErrReused
	}
	p.done = true

	sp := trace.Begin(p.tracer, trace.ScopePass, "parse", p.opts.Parent)
	root, err := p.rProgram()
	if err == nil && !p.cur.IsEOF() {
		err = &SyntaxError{Found: p.cur, Expected: token.EOF}
	}
	if err != nil {
		sp.End("failed")
		if lerr := p.lexErr(); lerr != nil {
			return nil, lerr
		}
		p.reportSyntax(err)
		return nil, err
	}
	// токенизатор мог оборваться уже после закрывающей скобки
	if lerr := p.lexErr(); lerr != nil {
		sp.End("failed")
		return nil, lerr
	}
	sp.End("")
	return root, nil
}

func (p *Parser) lexErr() error {
	if le, ok := p.ts.(interface{ Err() error }); ok {
		return le.Err()
	}
	return nil
}

func (p *Parser) reportSyntax(err error) {
	var se *SyntaxError
	if !errors.As(err, &se) {
		return
	}
	code := diag.SynUnexpectedToken
	if se.Expected == token.EOF {
		code = diag.SynTrailingInput
	}
	diag.ReportError(p.opts.Reporter, code, p.diagnosticSpan(se.Found), se.Message()).Emit()
}

// diagnosticSpan: для EOF указываем позицию сразу после последнего токена
func (p *Parser) diagnosticSpan(found token.Token) source.Span {
	if !found.IsEOF() {
		return found.Span
	}
	if p.lastSpan.Empty() {
		return source.Span{Line: 1}
	}
	end := p.lastSpan.End + 1
	return source.Span{Line: p.lastSpan.Line, Start: end, End: end}
}
