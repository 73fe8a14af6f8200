// Package symtab interns lexemes into canonical token.Symbol entries.
package symtab

import (
	"sort"
	"sync"

	"xlc/internal/token"
)

// Table maps text to symbols. Reserved words and operator spellings are
// registered by New; identifiers are added on demand, one entry per text.
// Literal occurrences get their own symbols (see Literal).
type Table struct {
	mu    sync.RWMutex
	fixed map[string]*token.Symbol // reserved words + punctuation, read-only after New
	ids   map[string]*token.Symbol // identifiers
}

// New returns a table with every fixed spelling registered exactly once.
func New() *Table {
	t := &Table{
		fixed: make(map[string]*token.Symbol, 64),
		ids:   make(map[string]*token.Symbol),
	}
	for _, sp := range token.Fixed() {
		t.fixed[sp.Text] = token.NewSymbol(sp.Text, sp.Kind)
	}
	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table shared by tokenizers that were not
// given one explicitly.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = New()
	})
	return defaultTable
}

// Intern returns the entry for text.
//   - text is a reserved word or operator: the registered entry, defaultKind is ignored;
//   - defaultKind is token.Bogus: (nil, false), nothing is created;
//   - otherwise an entry of defaultKind is registered (or reused) and returned.
func (t *Table) Intern(text string, defaultKind token.Kind) (*token.Symbol, bool) {
	if sym, ok := t.fixed[text]; ok {
		return sym, true
	}
	if defaultKind == token.Bogus {
		return nil, false
	}
	if defaultKind != token.Identifier {
		return t.Literal(text, defaultKind), true
	}

	t.mu.RLock()
	sym, ok := t.ids[text]
	t.mu.RUnlock()
	if ok {
		return sym, true
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if sym, ok = t.ids[text]; ok {
		return sym, true
	}
	// Создаём собственную копию строки, чтобы не зависеть от исходного буфера.
	cpy := string([]byte(text))
	sym = token.NewSymbol(cpy, token.Identifier)
	t.ids[cpy] = sym
	return sym, true
}

// Literal creates a symbol for a literal occurrence. Literal text never
// resolves to a fixed spelling: the string literal "if" stays a StringLit.
func (t *Table) Literal(text string, kind token.Kind) *token.Symbol {
	return token.NewSymbol(text, kind)
}

// Lookup returns the fixed or identifier entry for text without creating one.
func (t *Table) Lookup(text string) (*token.Symbol, bool) {
	if sym, ok := t.fixed[text]; ok {
		return sym, true
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	sym, ok := t.ids[text]
	return sym, ok
}

// Len возвращает количество записей (фиксированные + идентификаторы).
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.fixed) + len(t.ids)
}

// Snapshot returns all entries sorted by text.
func (t *Table) Snapshot() []*token.Symbol {
	t.mu.RLock()
	out := make([]*token.Symbol, 0, len(t.fixed)+len(t.ids))
	for _, s := range t.fixed {
		out = append(out, s)
	}
	for _, s := range t.ids {
		out = append(out, s)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Text() < out[j].Text() })
	return out
}
