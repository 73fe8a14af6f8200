package lexer

import (
	"errors"
	"fmt"
	"io"

	"xlc/internal/diag"
	"xlc/internal/source"
	"xlc/internal/symtab"
	"xlc/internal/token"
)

type state uint8

const (
	stateScanning state = iota
	stateExhausted
	stateAborted
)

// char is one character together with where the reader found it.
type char struct {
	r    rune
	line int
	col  int
	eol  bool // synthetic line boundary
}

type Lexer struct {
	rd    *source.Reader
	syms  *symtab.Table
	opts  Options
	state state
	err   *Error

	ch      char // текущий символ, ещё не обработан
	eof     bool // ch недействителен: reader исчерпан
	pending *char
}

// New creates a tokenizer over rd and primes the one-character lookahead.
func New(rd *source.Reader, opts Options) *Lexer {
	lx := &Lexer{rd: rd, opts: opts, syms: opts.Symbols}
	if lx.syms == nil {
		lx.syms = symtab.Default()
	}
	if lx.opts.Reporter == nil {
		lx.opts.Reporter = diag.NopReporter{}
	}
	lx.advance()
	return lx
}

// Err returns the lexical error that aborted scanning, or nil.
func (lx *Lexer) Err() error {
	if lx.err == nil {
		return nil
	}
	return lx.err
}

// Aborted reports whether scanning stopped on an error.
func (lx *Lexer) Aborted() bool {
	return lx.state == stateAborted
}

// Next returns the next token. Once the stream is finished (or scanning
// aborted) it returns the EOF marker and false on every call.
func (lx *Lexer) Next() (token.Token, bool) {
	for lx.state == stateScanning {
		lx.skipSpace()
		if lx.eof {
			lx.finish(stateExhausted)
			break
		}

		var (
			tok     token.Token
			ok      bool
			comment bool
		)
		switch c := lx.ch.r; {
		case c == '"':
			tok, ok = lx.scanString()
		case isIdentStart(c):
			tok, ok = lx.scanIdent()
		case isDigit(c):
			tok, ok = lx.scanNumber()
		default:
			tok, ok, comment = lx.scanOperator()
		}
		if comment {
			continue
		}
		if ok {
			return tok, true
		}
	}
	return token.Token{}, false
}

func (lx *Lexer) skipSpace() {
	for !lx.eof && isSpace(lx.ch.r) {
		lx.advance()
	}
}

// advance moves the lookahead one character forward.
func (lx *Lexer) advance() {
	if lx.pending != nil {
		lx.ch = *lx.pending
		lx.pending = nil
		return
	}
	if lx.eof || lx.state != stateScanning {
		lx.eof = true
		return
	}
	r, err := lx.rd.Read()
	if err != nil {
		lx.eof = true
		if !errors.Is(err, io.EOF) {
			lx.ioFail(err)
		}
		return
	}
	lx.ch = char{r: r, line: lx.rd.Line(), col: lx.rd.Column(), eol: lx.rd.AtLineEnd()}
}

// unread puts c back in front of the current lookahead and makes prev current.
func (lx *Lexer) unread(prev char) {
	cur := lx.ch
	lx.pending = &cur
	lx.ch = prev
	lx.eof = false
}

// finish moves to a terminal state and releases the reader.
func (lx *Lexer) finish(st state) {
	if lx.state != stateScanning {
		return
	}
	lx.state = st
	lx.eof = true
	lx.pending = nil
	if lx.rd != nil {
		_ = lx.rd.Close() //nolint:errcheck
	}
}

func (lx *Lexer) fail(code diag.Code, sp source.Span, format string, args ...any) {
	if lx.state != stateScanning {
		return
	}
	msg := fmt.Sprintf(format, args...)
	lx.err = &Error{Code: code, Msg: msg, Span: sp}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	lx.finish(stateAborted)
}

func (lx *Lexer) ioFail(err error) {
	col := max(lx.rd.Column(), 0)
	sp := token.New(nil, col, col, lx.rd.Line()).Span
	lx.fail(diag.IOLoadFileError, sp, "read failed: %v", err)
	lx.err.Err = err
}

func (lx *Lexer) spanAt(c char) source.Span {
	return token.New(nil, c.col, c.col, c.line).Span
}

func (lx *Lexer) newToken(sym *token.Symbol, start, end char) token.Token {
	return token.New(sym, start.col, end.col, start.line)
}
