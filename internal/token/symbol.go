package token

// Symbol is an immutable (lexeme, kind) pair.
// Symbols of fixed kinds are interned by the symbol table and compared by pointer.
type Symbol struct {
	text string
	kind Kind
}

// NewSymbol creates a symbol outside of any table.
func NewSymbol(text string, kind Kind) *Symbol {
	return &Symbol{text: text, kind: kind}
}

func (s *Symbol) Text() string {
	if s == nil {
		return ""
	}
	return s.text
}

func (s *Symbol) Kind() Kind {
	if s == nil {
		return EOF
	}
	return s.kind
}

func (s *Symbol) String() string {
	return s.Text()
}
