package transcript

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/statusline/errors"
)

// maxLineSize bounds a single transcript line; tool results can be large.
const maxLineSize = 10 * 1024 * 1024

// Reader reads the JSONL records of a transcript file.
type Reader struct {
	path string
	file *os.File
}

// NewReader opens the transcript at path.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.TranscriptUnreadable(path, err)
	}
	return &Reader{path: path, file: file}, nil
}

// Path returns the file path being read.
func (r *Reader) Path() string {
	return r.path
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Each calls fn for every record in file order. Blank, malformed and
// oversized (over 10MB) lines are skipped; skipped reports how many.
func (r *Reader) Each(fn func(Record)) (skipped int, err error) {
	return scanRecords(r.file, fn)
}

func scanRecords(in io.Reader, fn func(Record)) (skipped int, err error) {
	br := bufio.NewReaderSize(in, 64*1024)
	var line []byte
	oversized := false

	for {
		chunk, readErr := br.ReadSlice('\n')
		switch {
		case oversized:
		case len(line)+len(chunk) > maxLineSize:
			oversized = true
			line = line[:0]
		default:
			line = append(line, chunk...)
		}
		if readErr == bufio.ErrBufferFull {
			continue
		}

		if oversized {
			skipped++
		} else if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			if rec, perr := ParseRecord(trimmed); perr != nil {
				skipped++
			} else {
				fn(rec)
			}
		}
		line, oversized = line[:0], false

		if readErr == io.EOF {
			return skipped, nil
		}
		if readErr != nil {
			return skipped, fmt.Errorf("read jsonl: %w", readErr)
		}
	}
}
