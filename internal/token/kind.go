package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Bogus is the "unknown" sentinel used to probe the symbol table.
	Bogus Kind = iota
	// EOF marks the end of the token stream.
	EOF

	// Identifier represents an identifier token.
	Identifier
	// IntLit represents the integer literal token.
	IntLit
	// StringLit represents the string literal token.
	StringLit
	// ScientificLit represents the scientific literal token (1.23e+4).
	ScientificLit

	KwProgram    // program
	KwIf         // if
	KwThen       // then
	KwElse       // else
	KwWhile      // while
	KwFunction   // function
	KwReturn     // return
	KwForall     // forall
	KwIn         // in
	KwInt        // int
	KwBoolean    // boolean
	KwString     // string
	KwScientific // scientific

	LeftBrace    // {
	RightBrace   // }
	LeftParen    // (
	RightParen   // )
	LeftBracket  // [
	RightBracket // ]
	Comma        // ,
	Range        // ..
	Assign       // =
	Plus         // +
	Minus        // -
	Or           // |
	And          // &
	Multiply     // *
	Divide       // /
	Equal        // ==
	NotEqual     // !=
	Less         // <
	LessEqual    // <=
	Greater      // >
	GreaterEqual // >=
	Comment      // //

	kindCount
)

var kindNames = [kindCount]string{
	Bogus:         "Bogus",
	EOF:           "EOF",
	Identifier:    "Identifier",
	IntLit:        "IntLit",
	StringLit:     "StringLit",
	ScientificLit: "ScientificLit",
	KwProgram:     "Program",
	KwIf:          "If",
	KwThen:        "Then",
	KwElse:        "Else",
	KwWhile:       "While",
	KwFunction:    "Function",
	KwReturn:      "Return",
	KwForall:      "Forall",
	KwIn:          "In",
	KwInt:         "Int",
	KwBoolean:     "Boolean",
	KwString:      "String",
	KwScientific:  "Scientific",
	LeftBrace:     "LeftBrace",
	RightBrace:    "RightBrace",
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	LeftBracket:   "LeftBracket",
	RightBracket:  "RightBracket",
	Comma:         "Comma",
	Range:         "Range",
	Assign:        "Assign",
	Plus:          "Plus",
	Minus:         "Minus",
	Or:            "Or",
	And:           "And",
	Multiply:      "Multiply",
	Divide:        "Divide",
	Equal:         "Equal",
	NotEqual:      "NotEqual",
	Less:          "Less",
	LessEqual:     "LessEqual",
	Greater:       "Greater",
	GreaterEqual:  "GreaterEqual",
	Comment:       "Comment",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsLiteral reports whether k is a literal or identifier kind.
// Such symbols are created on demand and are not globally unique.
func (k Kind) IsLiteral() bool {
	switch k {
	case Identifier, IntLit, StringLit, ScientificLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwProgram && k <= KwScientific
}

// IsPunctOrOp reports whether k is an operator or separator.
func (k Kind) IsPunctOrOp() bool {
	return k >= LeftBrace && k < kindCount
}

// IsType reports whether k starts a declaration.
func (k Kind) IsType() bool {
	switch k {
	case KwInt, KwBoolean, KwString, KwScientific:
		return true
	default:
		return false
	}
}
