package token

import "sort"

var keywords = map[string]Kind{
	"program":    KwProgram,
	"if":         KwIf,
	"then":       KwThen,
	"else":       KwElse,
	"while":      KwWhile,
	"function":   KwFunction,
	"return":     KwReturn,
	"forall":     KwForall,
	"in":         KwIn,
	"int":        KwInt,
	"boolean":    KwBoolean,
	"string":     KwString,
	"scientific": KwScientific,
}

var punctuation = map[string]Kind{
	"{":  LeftBrace,
	"}":  RightBrace,
	"(":  LeftParen,
	")":  RightParen,
	"[":  LeftBracket,
	"]":  RightBracket,
	",":  Comma,
	"..": Range,
	"=":  Assign,
	"+":  Plus,
	"-":  Minus,
	"|":  Or,
	"&":  And,
	"*":  Multiply,
	"/":  Divide,
	"==": Equal,
	"!=": NotEqual,
	"<":  Less,
	"<=": LessEqual,
	">":  Greater,
	">=": GreaterEqual,
	"//": Comment,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые, распознаются только lowercase версии.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Spelling is one fixed (text, kind) pair.
type Spelling struct {
	Text string
	Kind Kind
}

// Fixed returns every reserved word and operator/separator spelling,
// sorted by text so registration order is deterministic.
func Fixed() []Spelling {
	out := make([]Spelling, 0, len(keywords)+len(punctuation))
	for text, k := range keywords {
		out = append(out, Spelling{Text: text, Kind: k})
	}
	for text, k := range punctuation {
		out = append(out, Spelling{Text: text, Kind: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out
}
