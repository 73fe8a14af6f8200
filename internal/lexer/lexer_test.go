package lexer_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"xlc/internal/diag"
	"xlc/internal/lexer"
	"xlc/internal/source"
	"xlc/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(d diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// countingCloser фиксирует количество вызовов Close
type countingCloser struct {
	*strings.Reader
	closes int
}

func (c *countingCloser) Close() error {
	c.closes++
	return nil
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter, *countingCloser) {
	src := &countingCloser{Reader: strings.NewReader(input)}
	reporter := &testReporter{}
	lx := lexer.New(source.NewReader(src, source.ReaderOptions{}), lexer.Options{Reporter: reporter})
	return lx, reporter, src
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind(), tok.Text())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, reporter, _ := makeTestLexer(input)
	tokens := lexer.Collect(lx)

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind() != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind(), tok.Text())
		}
	}
	if lx.Err() != nil {
		t.Fatalf("unexpected lexical error: %v", lx.Err())
	}
	return tokens
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) token.Token {
	t.Helper()
	toks := expectTokens(t, input, []token.Kind{kind})
	if toks[0].Text() != text {
		t.Errorf("Expected text %q, got %q", text, toks[0].Text())
	}
	return toks[0]
}

// expectLexError проверяет, что сканирование прервано с нужным кодом
func expectLexError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	lx, reporter, src := makeTestLexer(input)
	toks := lexer.Collect(lx)

	var lerr *lexer.Error
	if !errors.As(lx.Err(), &lerr) {
		t.Fatalf("input %q: expected lexical error, got tokens %v", input, tokensToString(toks))
	}
	if lerr.Code != code {
		t.Fatalf("input %q: expected %s, got %s (%s)", input, code.ID(), lerr.Code.ID(), lerr.Msg)
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("input %q: expected exactly one diagnostic, got %v", input, reporter.ErrorMessages())
	}
	if !lx.Aborted() || src.closes != 1 {
		t.Fatalf("input %q: aborted=%v closes=%d", input, lx.Aborted(), src.closes)
	}
	// после ошибки поток остаётся завершённым
	if tok, ok := lx.Next(); ok || !tok.IsEOF() {
		t.Fatalf("input %q: stream continued after abort: %v", input, tok)
	}
}

func TestReservedWords(t *testing.T) {
	for _, sp := range token.Fixed() {
		if !sp.Kind.IsKeyword() {
			continue
		}
		t.Run(sp.Text, func(t *testing.T) {
			expectSingleToken(t, sp.Text, sp.Kind, sp.Text)
		})
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []string{"foo", "_bar", "x1", "forall_", "Program", "iff", "in2", "привет", "naïve"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Identifier, input)
		})
	}
}

func TestIdentifierNFC(t *testing.T) {
	// "e" + combining acute → "é"
	tok := expectSingleToken(t, "café", token.Identifier, "café")
	if tok.Span.End != 4 {
		t.Fatalf("span must follow source columns, got %v", tok.Span)
	}
}

func TestMaximalMunch(t *testing.T) {
	expectTokens(t, "<=", []token.Kind{token.LessEqual})
	expectTokens(t, "<x", []token.Kind{token.Less, token.Identifier})
	expectTokens(t, "a==b!=c", []token.Kind{token.Identifier, token.Equal, token.Identifier, token.NotEqual, token.Identifier})
	expectTokens(t, "x=-1", []token.Kind{token.Identifier, token.Assign, token.Minus, token.IntLit})
	expectTokens(t, "< =", []token.Kind{token.Less, token.Assign})
	expectTokens(t, ">=>", []token.Kind{token.GreaterEqual, token.Greater})
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "{ } ( ) [ ] , + - | & * /", []token.Kind{
		token.LeftBrace, token.RightBrace, token.LeftParen, token.RightParen,
		token.LeftBracket, token.RightBracket, token.Comma,
		token.Plus, token.Minus, token.Or, token.And, token.Multiply, token.Divide,
	})
}

func TestNumbers(t *testing.T) {
	expectSingleToken(t, "0", token.IntLit, "0")
	expectSingleToken(t, "12345", token.IntLit, "12345")
	expectSingleToken(t, "1.23e+456", token.ScientificLit, "1.23e+456")
	expectSingleToken(t, "4.5E-1", token.ScientificLit, "4.5E-1")
	expectTokens(t, "12abc", []token.Kind{token.IntLit, token.Identifier})
}

func TestIntegerBeforeRange(t *testing.T) {
	toks := expectTokens(t, "[1..10]", []token.Kind{
		token.LeftBracket, token.IntLit, token.Range, token.IntLit, token.RightBracket,
	})
	if toks[1].Text() != "1" || toks[3].Text() != "10" {
		t.Fatalf("unexpected texts: %v", tokensToString(toks))
	}
	if toks[2].Span.Start != 2 || toks[2].Span.End != 3 {
		t.Fatalf("range span = %v", toks[2].Span)
	}
}

func TestBadScientific(t *testing.T) {
	for _, input := range []string{"1.234e+1", "1.2f+1", "1.e+1", "1.2e1", "1.2e+", "1.2", "1.2e+x"} {
		t.Run(input, func(t *testing.T) {
			expectLexError(t, input, diag.LexBadScientific)
		})
	}
}

func TestStrings(t *testing.T) {
	tok := expectSingleToken(t, `"hello"`, token.StringLit, "hello")
	if tok.Span.Start != 0 || tok.Span.End != 6 {
		t.Fatalf("string span must cover the quotes, got %v", tok.Span)
	}
	expectSingleToken(t, `"if then"`, token.StringLit, "if then")
	expectSingleToken(t, `""`, token.StringLit, "")
}

func TestUnterminatedString(t *testing.T) {
	expectLexError(t, `"hello`, diag.LexUnterminatedString)
	expectLexError(t, "\"hello\nworld\"", diag.LexUnterminatedString)
}

func TestIllegalCharacter(t *testing.T) {
	expectLexError(t, "x @ y", diag.LexIllegalChar)
	expectLexError(t, "a . b", diag.LexIllegalChar)
	expectLexError(t, "!", diag.LexIllegalChar)
}

func TestCommentsSkipped(t *testing.T) {
	toks := expectTokens(t, "a // b c\n// whole line\n  d", []token.Kind{token.Identifier, token.Identifier})
	if toks[1].Text() != "d" || toks[1].Span.Line != 3 || toks[1].Span.Start != 2 {
		t.Fatalf("unexpected token after comments: %v", toks[1])
	}
	expectTokens(t, "// only a comment", nil)
	expectTokens(t, "x//", []token.Kind{token.Identifier})
}

func TestPositions(t *testing.T) {
	toks := expectTokens(t, "program {\n  int x\n}", []token.Kind{
		token.KwProgram, token.LeftBrace, token.KwInt, token.Identifier, token.RightBrace,
	})
	want := []source.Span{
		{Line: 1, Start: 0, End: 6},
		{Line: 1, Start: 8, End: 8},
		{Line: 2, Start: 2, End: 4},
		{Line: 2, Start: 6, End: 6},
		{Line: 3, Start: 0, End: 0},
	}
	for i, tok := range toks {
		if tok.Span != want[i] {
			t.Errorf("token %d (%q): span %v, want %v", i, tok.Text(), tok.Span, want[i])
		}
	}
}

func TestReaderClosedOnce(t *testing.T) {
	lx, _, src := makeTestLexer("a b")
	lexer.Collect(lx)
	for range 3 {
		if _, ok := lx.Next(); ok {
			t.Fatalf("stream must stay finished")
		}
	}
	if src.closes != 1 {
		t.Fatalf("reader closed %d times, want 1", src.closes)
	}
}

func TestEmptyInput(t *testing.T) {
	expectTokens(t, "", nil)
	expectTokens(t, "   \n\t\n", nil)
}

func TestSliceStream(t *testing.T) {
	lx, _, _ := makeTestLexer("a + 1")
	toks := lexer.Collect(lx)
	replay := lexer.Collect(lexer.FromTokens(toks...))
	if tokensToString(replay) != tokensToString(toks) {
		t.Fatalf("replay mismatch: %v vs %v", replay, toks)
	}
}
