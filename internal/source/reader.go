package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"xlc/internal/trace"
)

// ErrClosed is returned by Read after the reader has been released.
var ErrClosed = errors.New("source reader is closed")

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	Tracer trace.Tracer // может быть nil
}

// Reader supplies the program one character at a time.
// Every line ends with a single ' ' standing for the line boundary,
// so callers never see '\n'. End of input is reported as io.EOF.
type Reader struct {
	src    *bufio.Reader
	closer io.Closer
	tracer trace.Tracer

	line      []rune
	lineNo    int
	pos       int  // column of the character just read
	priorEOL  bool // the last character was the line boundary, next Read starts a new line
	atEOL     bool
	exhausted bool
	closed    bool

	listing strings.Builder
}

// NewReader wraps src. If src implements io.Closer it is closed by Close.
func NewReader(src io.Reader, opts ReaderOptions) *Reader {
	r := &Reader{
		src:      bufio.NewReader(src),
		tracer:   opts.Tracer,
		pos:      -1,
		priorEOL: true,
	}
	if c, ok := src.(io.Closer); ok {
		r.closer = c
	}
	if r.tracer == nil {
		r.tracer = trace.Nop
	}
	return r
}

// Read returns the next character. The line boundary is returned as ' '.
func (r *Reader) Read() (rune, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if r.priorEOL {
		if err := r.nextLine(); err != nil {
			return 0, err
		}
	}

	r.pos++
	if r.pos >= len(r.line) {
		r.priorEOL = true
		r.atEOL = true
		return ' ', nil
	}
	r.atEOL = false
	return r.line[r.pos], nil
}

func (r *Reader) nextLine() error {
	if r.exhausted {
		return io.EOF
	}
	text, err := r.src.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read line %d: %w", r.lineNo+1, err)
	}
	if err != nil {
		// последняя строка без '\n' всё ещё строка
		r.exhausted = true
		if text == "" {
			return io.EOF
		}
	}

	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	r.lineNo++
	r.pos = -1
	r.priorEOL = false
	r.line = []rune(text)
	fmt.Fprintf(&r.listing, "%5d: %s\n", r.lineNo, text)
	if r.tracer.Enabled() {
		r.tracer.Emit(trace.Point(trace.ScopeLine, "readline", text))
	}
	return nil
}

// Line returns the 1-based line number of the character just read.
func (r *Reader) Line() int {
	return r.lineNo
}

// Column returns the 0-based column of the character just read.
func (r *Reader) Column() int {
	return r.pos
}

// AtLineEnd reports whether the character just read was the line boundary.
func (r *Reader) AtLineEnd() bool {
	return r.atEOL
}

// Listing returns every line read so far, numbered.
func (r *Reader) Listing() string {
	return r.listing.String()
}

// Close releases the underlying stream. Only the first call has an effect.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Closed reports whether Close has been called.
func (r *Reader) Closed() bool {
	return r.closed
}
