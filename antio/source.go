package antio

import (
	"bufio"
	"io"
)

// LineSource yields protocol lines one at a time. ok is false once the
// source is exhausted.
type LineSource interface {
	Next() (line string, ok bool)
}

const maxLineSize = 1 << 20

// ScannerSource reads lines from an io.Reader, such as os.Stdin.
type ScannerSource struct {
	scanner *bufio.Scanner
	err     error
}

func NewScannerSource(r io.Reader) *ScannerSource {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &ScannerSource{scanner: s}
}

func (s *ScannerSource) Next() (string, bool) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true
	}
	s.err = s.scanner.Err()
	return "", false
}

// Err returns the read error that ended the source, if any. It is nil when
// the reader simply reached EOF.
func (s *ScannerSource) Err() error { return s.err }

// SliceSource serves lines from memory.
type SliceSource struct {
	lines []string
	pos   int
}

func NewSliceSource(lines []string) *SliceSource {
	return &SliceSource{lines: lines}
}

func (s *SliceSource) Next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}

// Remaining returns the lines not yet consumed.
func (s *SliceSource) Remaining() []string {
	return s.lines[s.pos:]
}
