// Package lexer turns the character stream of a source.Reader into tokens.
//
// The tokenizer carries one character of lookahead between calls and is a
// small state machine:
//
//	scanning  -> exhausted   reader reported io.EOF
//	scanning  -> aborted     lexical error (reported once, no resynchronisation)
//
// In both terminal states Next returns the end-of-stream marker and the
// reader has been closed exactly once.
package lexer
