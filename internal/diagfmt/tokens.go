package diagfmt

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"xlc/internal/token"
)

// TokenOutput: токен в JSON; колонки 0-based, как в Span.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Line  uint32 `json:"line"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty prints one numbered token per line in the same
// form the parser trace uses.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	bw := bufio.NewWriter(w)
	for i, tok := range tokens {
		fmt.Fprintf(bw, "%4d: %s\n", i+1, tok)
	}
	return bw.Flush()
}

func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenOutput{
			Kind:  tok.Kind().String(),
			Text:  tok.Text(),
			Line:  tok.Span.Line,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
