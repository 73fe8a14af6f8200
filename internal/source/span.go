package source

import (
	"fmt"
)

// LineCol: позиция для человека: строка с 1, колонка с 0.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Span locates a lexeme on a single source line.
// Start and End are 0-based columns, End is the column of the last character.
type Span struct {
	Line  uint32 // 1-based
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Line == 0
}

func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Line, s.Start, s.End)
}

// Begin returns the position of the first character.
func (s Span) Begin() LineCol {
	return LineCol{Line: s.Line, Col: s.Start}
}

// Cover returns the smallest span on s.Line containing both spans.
// Spans on different lines are not merged.
func (s Span) Cover(other Span) Span {
	if s.Line != other.Line {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
