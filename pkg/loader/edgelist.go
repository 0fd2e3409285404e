package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"

	"github.com/tburke/sociograph/pkg/graph"
)

// FileSource reads whitespace- or comma-delimited node pairs from a text
// file. Blank lines and lines starting with '#' are ignored. Files ending
// in .snappy are decompressed on the fly.
type FileSource struct {
	file    *os.File
	scanner *bufio.Scanner
	line    int
	read    int64
}

// OpenFile opens an edge-list file
func OpenFile(path string) (*FileSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening edge list: %w", err)
	}

	var reader io.Reader = file
	if strings.HasSuffix(path, ".snappy") {
		reader = snappy.NewReader(file)
	}

	return &FileSource{
		file:    file,
		scanner: bufio.NewScanner(reader),
	}, nil
}

// Next returns the next pair in file order
func (s *FileSource) Next() (graph.NodeID, graph.NodeID, error) {
	for s.scanner.Scan() {
		s.line++
		text := s.scanner.Text()
		s.read += int64(len(text)) + 1

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.FieldsFunc(trimmed, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("line %d: expected 2 fields, got %d: %w",
				s.line, len(fields), ErrMalformedPair)
		}

		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: bad node ID %q: %w", s.line, fields[0], ErrMalformedPair)
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: bad node ID %q: %w", s.line, fields[1], ErrMalformedPair)
		}

		return graph.NodeID(u), graph.NodeID(v), nil
	}

	if err := s.scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, io.EOF
}

// Close closes the underlying file
func (s *FileSource) Close() error {
	return s.file.Close()
}

// Name identifies the source in logs and metrics
func (s *FileSource) Name() string {
	return "edgelist"
}

// BytesRead reports the uncompressed volume scanned so far
func (s *FileSource) BytesRead() int64 {
	return s.read
}
