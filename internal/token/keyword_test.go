package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"program":    KwProgram,
		"if":         KwIf,
		"then":       KwThen,
		"else":       KwElse,
		"while":      KwWhile,
		"forall":     KwForall,
		"in":         KwIn,
		"return":     KwReturn,
		"int":        KwInt,
		"boolean":    KwBoolean,
		"string":     KwString,
		"scientific": KwScientific,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Program", "IF", "While", // регистр важен
		"bool", "float", "x", "forallx",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestFixedSpellingsAreUnique(t *testing.T) {
	seenText := map[string]bool{}
	seenKind := map[Kind]string{}
	for _, sp := range Fixed() {
		if seenText[sp.Text] {
			t.Fatalf("duplicate spelling %q", sp.Text)
		}
		seenText[sp.Text] = true
		if prev, ok := seenKind[sp.Kind]; ok {
			t.Fatalf("kind %v registered for %q and %q", sp.Kind, prev, sp.Text)
		}
		seenKind[sp.Kind] = sp.Text
		if sp.Kind.IsLiteral() || sp.Kind == Bogus || sp.Kind == EOF {
			t.Fatalf("fixed spelling %q has non-fixed kind %v", sp.Text, sp.Kind)
		}
	}
}

func TestKindClasses(t *testing.T) {
	if !KwForall.IsKeyword() || Identifier.IsKeyword() {
		t.Fatalf("keyword classification is broken")
	}
	if !LessEqual.IsPunctOrOp() || KwIn.IsPunctOrOp() {
		t.Fatalf("operator classification is broken")
	}
	for _, k := range []Kind{Identifier, IntLit, StringLit, ScientificLit} {
		if !k.IsLiteral() {
			t.Fatalf("%v must be a literal kind", k)
		}
	}
	if Kind(200).String() != "Kind(?)" {
		t.Fatalf("out of range kind must not panic")
	}
}

func TestTokenZeroValueIsEOF(t *testing.T) {
	var tok Token
	if !tok.IsEOF() || tok.Kind() != EOF || tok.String() != "<EOF>" {
		t.Fatalf("zero token must be the end-of-stream marker, got %v", tok)
	}
	tok = New(NewSymbol("x", Identifier), 3, 3, 2)
	if tok.IsEOF() || !tok.IsIdent() || tok.Span.Line != 2 || tok.Span.Start != 3 {
		t.Fatalf("unexpected token %+v", tok)
	}
}
