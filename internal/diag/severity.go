package diag

import "strings"

// Severity orders diagnostics; a bag "has errors" once it holds a SevError.
type Severity uint8

const (
	SevInfo Severity = iota // timings и прочие заметки
	SevWarning
	SevError
)

var sevNames = [...]string{"INFO", "WARNING", "ERROR"}

func (s Severity) String() string {
	if int(s) < len(sevNames) {
		return sevNames[s]
	}
	return "UNKNOWN"
}

// Label is the lower-case form used by the short format.
func (s Severity) Label() string { return strings.ToLower(s.String()) }
