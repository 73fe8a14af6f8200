package source

import (
	"bytes"
	"crypto/sha256"
	"os"
	"path/filepath"
	"strings"
)

// FileFlags: что было сделано с содержимым при загрузке.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // не с диска: stdin, тест
	FileHadBOM                               // UTF-8 BOM срезан
	FileNormalizedCRLF                       // \r\n заменены на \n
)

func (f FileFlags) String() string {
	var parts []string
	for _, fl := range []struct {
		bit  FileFlags
		name string
	}{{FileVirtual, "virtual"}, {FileHadBOM, "bom"}, {FileNormalizedCRLF, "crlf"}} {
		if f&fl.bit != 0 {
			parts = append(parts, fl.name)
		}
	}
	return strings.Join(parts, "|")
}

// File is a loaded program text. Content is already normalized and Hash
// is computed over it, so two files with equal Hash parse identically.
type File struct {
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
	lines   []string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads path and normalizes BOM and CRLF.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, utf8BOM); ok {
		content, flags = rest, flags|FileHadBOM
	}
	if crlf := normalizeCRLF(&content); crlf {
		flags |= FileNormalizedCRLF
	}
	return newFile(path, content, flags), nil
}

// NewVirtual wraps in-memory content. BOM is kept, CRLF is normalized.
func NewVirtual(name string, content []byte) *File {
	normalizeCRLF(&content)
	return newFile(name, content, FileVirtual)
}

// normalizeCRLF replaces "\r\n" with "\n" and reports whether it did.
// A lone '\r' stays.
func normalizeCRLF(content *[]byte) bool {
	if !bytes.Contains(*content, []byte("\r\n")) {
		return false
	}
	*content = bytes.ReplaceAll(*content, []byte("\r\n"), []byte("\n"))
	return true
}

func newFile(path string, content []byte, flags FileFlags) *File {
	var lines []string
	if len(content) > 0 {
		lines = strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	}
	return &File{
		Path:    filepath.ToSlash(filepath.Clean(path)),
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
		lines:   lines,
	}
}

// NewReader opens a character reader over the file content.
func (f *File) NewReader(opts ReaderOptions) *Reader {
	return NewReader(bytes.NewReader(f.Content), opts)
}

// GetLine returns line n (1-based) or "" when out of range.
func (f *File) GetLine(n uint32) string {
	if n == 0 || int(n) > len(f.lines) {
		return ""
	}
	return f.lines[n-1]
}

func (f *File) LineCount() int { return len(f.lines) }
