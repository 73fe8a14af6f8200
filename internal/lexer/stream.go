package lexer

import "xlc/internal/token"

// Stream is anything that hands out tokens one at a time.
// ok == false means the stream is finished; the returned token is then EOF.
type Stream interface {
	Next() (token.Token, bool)
}

// SliceStream replays a fixed token sequence. Used to feed the parser
// pseudo-programs without going through source text.
type SliceStream struct {
	toks []token.Token
	pos  int
}

func FromTokens(toks ...token.Token) *SliceStream {
	return &SliceStream{toks: toks}
}

func (s *SliceStream) Next() (token.Token, bool) {
	if s.pos >= len(s.toks) {
		return token.Token{}, false
	}
	t := s.toks[s.pos]
	s.pos++
	if t.IsEOF() {
		s.pos = len(s.toks)
		return token.Token{}, false
	}
	return t, true
}

// Collect drains st. The EOF marker is not included.
func Collect(st Stream) []token.Token {
	var out []token.Token
	for {
		t, ok := st.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}
