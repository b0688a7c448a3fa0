package resultlog

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Record is one evaluated top-level candidate.
type Record struct {
	Expected float64
	Word     string
}

// Sink receives one record per evaluated top-level candidate.
//
// Implementations need not be safe for concurrent use: the dispatcher
// serializes all Record calls under its reduction lock.
type Sink interface {
	Record(expected float64, word string) error
}

// Discard is a Sink that drops all records.
var Discard Sink = discard{}

type discard struct{}

func (discard) Record(float64, string) error { return nil }

// MemoryLog is an in-memory Sink, mainly for tests.
type MemoryLog struct {
	Records []Record
}

func (l *MemoryLog) Record(expected float64, word string) error {
	l.Records = append(l.Records, Record{Expected: expected, Word: word})
	return nil
}

// FileLog is a Sink backed by a text file, one "<expected> <word>" line
// per record. Every record is flushed immediately so a partial log
// survives an interrupted search.
type FileLog struct {
	path   string
	f      *os.File
	w      *bufio.Writer
	closed bool
}

// Create creates (or truncates) the log file at path.
func Create(path string) (*FileLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileLog{
		path: path,
		f:    f,
		w:    bufio.NewWriter(f),
	}, nil
}

// Path returns the log file path.
func (l *FileLog) Path() string {
	return l.path
}

func (l *FileLog) Record(expected float64, word string) error {
	if _, err := fmt.Fprintf(l.w, "%s %s\n", formatExpected(expected), word); err != nil {
		return err
	}
	return l.w.Flush()
}

// Close flushes and closes the log file. Close is idempotent.
func (l *FileLog) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.w.Flush(); err != nil {
		l.f.Close()
		return err
	}
	return l.f.Close()
}

// Sort rewrites the log file ascending by expected value, ties by word.
// Call after Close.
func Sort(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	records, err := parse(string(data))
	if err != nil {
		return err
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Expected != records[j].Expected {
			return records[i].Expected < records[j].Expected
		}
		return records[i].Word < records[j].Word
	})

	var buf strings.Builder
	for _, r := range records {
		fmt.Fprintf(&buf, "%s %s\n", formatExpected(r.Expected), r.Word)
	}
	return os.WriteFile(path, []byte(buf.String()), 0o644)
}

func parse(data string) ([]Record, error) {
	var records []Record
	for _, line := range strings.Split(data, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("resultlog: malformed line %q", line)
		}
		expected, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("resultlog: malformed line %q: %w", line, err)
		}
		records = append(records, Record{Expected: expected, Word: fields[1]})
	}
	return records, nil
}

func formatExpected(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
