package lexer

import (
	"xlc/internal/diag"
	"xlc/internal/symtab"
)

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки только в Err()
	Symbols  *symtab.Table // nil → symtab.Default()
}
