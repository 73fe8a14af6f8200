package ast

// Tag identifies the grammar construct a Node stands for.
type Tag uint8

const (
	TagInvalid Tag = iota
	TagProgram
	TagBlock
	TagDecl
	TagFunctionDecl
	TagFormals
	TagIf
	TagWhile
	TagForAll
	TagReturn
	TagAssign
	TagCall
	TagRelOp
	TagAddOp
	TagMultOp
	TagIntLit
	TagStringLit
	TagScientificLit
	TagId
	TagIntType
	TagBoolType
	TagStringType
	TagScientificType
	TagRangeExp
	tagCount
)

var tagNames = [...]string{
	TagInvalid:        "Invalid",
	TagProgram:        "Program",
	TagBlock:          "Block",
	TagDecl:           "Decl",
	TagFunctionDecl:   "FunctionDecl",
	TagFormals:        "Formals",
	TagIf:             "If",
	TagWhile:          "While",
	TagForAll:         "ForAll",
	TagReturn:         "Return",
	TagAssign:         "Assign",
	TagCall:           "Call",
	TagRelOp:          "RelOp",
	TagAddOp:          "AddOp",
	TagMultOp:         "MultOp",
	TagIntLit:         "IntLit",
	TagStringLit:      "StringLit",
	TagScientificLit:  "ScientificLit",
	TagId:             "Id",
	TagIntType:        "IntType",
	TagBoolType:       "BoolType",
	TagStringType:     "StringType",
	TagScientificType: "ScientificType",
	TagRangeExp:       "RangeExp",
}

func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "Tag(?)"
}

// Valid reports whether t is one of the construct tags.
func (t Tag) Valid() bool {
	return t > TagInvalid && t < tagCount
}

// HasSymbol reports whether nodes of this tag carry a symbol.
func (t Tag) HasSymbol() bool {
	switch t {
	case TagRelOp, TagAddOp, TagMultOp, TagIntLit, TagStringLit, TagScientificLit, TagId:
		return true
	default:
		return false
	}
}

const unbounded = -1

type arityRange struct{ min, max int }

// число детей по грамматике
var arity = [...]arityRange{
	TagInvalid:        {0, 0},
	TagProgram:        {1, 1},
	TagBlock:          {0, unbounded},
	TagDecl:           {2, 2},
	TagFunctionDecl:   {4, 4},
	TagFormals:        {0, unbounded},
	TagIf:             {2, 3},
	TagWhile:          {2, 2},
	TagForAll:         {3, 3},
	TagReturn:         {1, 1},
	TagAssign:         {2, 2},
	TagCall:           {1, unbounded},
	TagRelOp:          {2, 2},
	TagAddOp:          {2, 2},
	TagMultOp:         {2, 2},
	TagIntLit:         {0, 0},
	TagStringLit:      {0, 0},
	TagScientificLit:  {0, 0},
	TagId:             {0, 0},
	TagIntType:        {0, 0},
	TagBoolType:       {0, 0},
	TagStringType:     {0, 0},
	TagScientificType: {0, 0},
	TagRangeExp:       {2, 2},
}

// Arity returns the allowed number of children; max < 0 means unbounded.
func (t Tag) Arity() (minKids, maxKids int) {
	if !t.Valid() {
		return 0, 0
	}
	a := arity[t]
	return a.min, a.max
}

// Tags returns every construct tag in declaration order.
func Tags() []Tag {
	out := make([]Tag, 0, int(tagCount)-1)
	for t := TagInvalid + 1; t < tagCount; t++ {
		out = append(out, t)
	}
	return out
}
