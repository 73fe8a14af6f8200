package fuzztests

import (
	"os"
	"path/filepath"
	"testing"

	"xlc/internal/driver"
)

// maxFuzzInput режет вход фаззера; длиннее ничего нового не находится,
// только медленнее.
const maxFuzzInput = 64 << 10

// builtinSeeds covers every statement form plus the classic failures:
// a short scientific literal, an unterminated string, a chained relation,
// an illegal character.
var builtinSeeds = []string{
	"",
	"program { }",
	"program { int x x = 1 }",
	"program { int f(int a, boolean b) { return a } x = f(1, 2) * (3 - 4) }",
	"program { forall int i in [1..10] { s = \"a\" } }",
	"program { if a <= b then { } else { while x { } } }",
	"program { scientific z z = 12.34e-5 // tail\n}",
	"program { x = 1.2 }",
	"program { x = \"open\n}",
	"program { x = a < b < c }",
	"program { @ }",
}

// addCorpusSeeds adds builtinSeeds and every testdata/*.x program.
func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	files, err := driver.ListSources(filepath.Join("..", "..", "testdata"))
	if err != nil {
		return
	}
	for _, path := range files {
		// #nosec G304 -- path comes from the repository testdata
		if src, err := os.ReadFile(path); err == nil {
			f.Add(clamp(src, maxFuzzInput))
		}
	}
}

// clamp returns a copy of at most n bytes of src.
func clamp(src []byte, n int) []byte {
	return append([]byte(nil), src[:min(len(src), n)]...)
}
