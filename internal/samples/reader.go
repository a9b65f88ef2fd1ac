// Package samples reads newline-delimited numeric samples from text,
// transparently decompressing gzip and zstd input.
package samples

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// StdinPath names standard input where a file path is expected.
const StdinPath = "-"

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ParseError reports a line that is not a finite floating-point number.
type ParseError struct {
	Line int    // 1-based line number
	Text string // trimmed line content
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q as a number (line %d)", e.Text, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read parses one sample per line of r. Surrounding whitespace is trimmed
// and blank lines are skipped. The first unparseable line aborts the read
// with a *ParseError.
func Read(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Line: line, Text: text, Err: fmt.Errorf("%v is not finite", v)}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	return values, nil
}

// NewReader returns a reader over r that decompresses gzip or zstd streams,
// detected by their magic bytes, and passes anything else through.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return zr, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(br), nil
	}
}

// Load reads samples from path, or from stdin when path is StdinPath or
// empty. Compressed input is decompressed first.
func Load(path string, stdin io.Reader) ([]float64, error) {
	var src io.Reader = stdin
	if path != "" && path != StdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close() //nolint:errcheck
		src = f
	}

	rc, err := NewReader(src)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck

	return Read(rc)
}
