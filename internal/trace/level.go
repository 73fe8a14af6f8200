package trace

import (
	"fmt"
	"strings"
)

// Level задаёт подробность трассировки.
type Level uint8

const (
	LevelOff   Level = iota
	LevelError       // ошибки идут через diag, trace на этом уровне молчит
	LevelPhase
	LevelDetail
	LevelDebug
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

// ParseLevel is case-insensitive; "" means off.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelOff, nil
	}
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("trace: unknown level %q (want %s)", s, strings.Join(levelNames[:], "|"))
}

// finest возвращает самый мелкий scope, который ещё пишется на уровне l.
func (l Level) finest() Scope {
	switch l {
	case LevelPhase:
		return ScopePass
	case LevelDetail:
		return ScopeLine
	case LevelDebug:
		return ScopeToken
	}
	return 0
}

func (l Level) ShouldEmit(scope Scope) bool {
	return scope != 0 && scope <= l.finest()
}
