package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexIllegalChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadScientific      Code = 1003
	LexNotUTF8            Code = 1004

	// Синтаксические
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynTrailingInput   Code = 2002
	SynArity           Code = 2003

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeTitles = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexIllegalChar:        "Illegal character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadScientific:      "Malformed scientific literal",
	LexNotUTF8:            "Invalid UTF-8 in source",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynTrailingInput:      "Unexpected input after program",
	SynArity:              "Malformed tree node",
	IOLoadFileError:       "I/O load file error",
	IOCacheError:          "Parse cache error",
	ObsInfo:               "Observability information",
	ObsTimings:            "Pipeline timings",
}

// диапазоны по тысячам: 1xxx лексер, 2xxx парсер, 4xxx I/O, 6xxx наблюдаемость
var families = [...]struct {
	base   Code
	prefix string
}{{1000, "LEX"}, {2000, "SYN"}, {4000, "IO"}, {6000, "OBS"}}

// ID is the stable printable id, e.g. "SYN2001".
func (c Code) ID() string {
	for _, f := range families {
		if c >= f.base && c < f.base+1000 {
			return fmt.Sprintf("%s%04d", f.prefix, uint16(c))
		}
	}
	return "E0000"
}

func (c Code) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return "[" + c.ID() + "]: " + c.Title()
}
