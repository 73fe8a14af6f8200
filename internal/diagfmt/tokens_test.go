package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"xlc/internal/lexer"
	"xlc/internal/source"
)

func TestFormatTokens(t *testing.T) {
	lx := lexer.New(source.NewReader(strings.NewReader("x <= 10"), source.ReaderOptions{}), lexer.Options{})
	toks := lexer.Collect(lx)

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(out) != 3 || out[1].Kind != "LessEqual" || out[2].Text != "10" || out[2].Start != 5 || out[2].Line != 1 {
		t.Fatalf("unexpected tokens %+v", out)
	}

	buf.Reset()
	if err := FormatTokensPretty(&buf, toks); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || !strings.Contains(lines[1], "left: 2") || !strings.Contains(lines[1], "LessEqual") {
		t.Fatalf("unexpected pretty output:\n%s", buf.String())
	}
}
