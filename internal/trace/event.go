package trace

import "time"

// Kind of event: span boundaries or a single point.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{"", "begin", "end", "point"}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Scope: гранулярность события; меньше значение, крупнее событие.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // команда CLI целиком
	ScopePass                    // tokenize / parse одного файла
	ScopeLine                    // строка, прочитанная source.Reader
	ScopeToken                   // токен, отданный парсеру
)

var scopeNames = [...]string{"", "driver", "pass", "line", "token"}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one record in the trace stream. Seq and Session are assigned
// by the tracer.
type Event struct {
	Time     time.Time
	Seq      uint64
	Session  string
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	Name     string
	Detail   string
	Extra    map[string]string
}

// Point builds an instant event stamped now.
func Point(scope Scope, name, detail string) Event {
	return Event{Time: time.Now(), Kind: KindPoint, Scope: scope, Name: name, Detail: detail}
}
