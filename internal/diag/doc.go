// Package diag defines the diagnostic model shared by the tokenizer, the
// parser and the driver.
//
// A Diagnostic carries a Severity, a Code (LEX1001, SYN2001, ...), a short
// message, the primary source.Span and optional notes.
//
// The lexer and parser emit through a Reporter. The driver wraps a
// BagReporter in Dedup, so a file's Bag holds each diagnostic once, up to
// its limit; the overflow is only counted. Rendering lives in internal/diagfmt.
package diag
