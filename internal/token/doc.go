// Package token defines lexical token kinds, symbols and tokens for the xlc front end.
// Invariants:
//   - Every reserved word and every legal operator/separator spelling maps to
//     exactly one Kind (see Fixed); the symbol table registers them once.
//   - Literal text is kept verbatim: numeric literals are never converted here.
//   - String literal text excludes the surrounding quotes.
//   - Token columns are 0-based and inclusive; lines are 1-based.
package token
