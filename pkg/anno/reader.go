package anno

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record one row, column name -> value
type Record map[string]string

// Int coerce a numeric field like Start or End
func (r Record) Int(column string) (int, error) {
	value, ok := r[column]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoColumn, column)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return n, nil
}

// Values returns the row in header order
func (r Record) Values(header []string) []string {
	var values = make([]string, len(header))
	for i, key := range header {
		values[i] = r[key]
	}
	return values
}

// Scanner yields one Record per data line of a delimited file.
// Scan returns false at end of input or on the first error; Err reports
// which one it was.
type Scanner struct {
	scan   *bufio.Scanner
	sep    string
	header []string
	record Record
	line   int
	err    error
}

// NewScanner reads the header line of r immediately.
func NewScanner(r io.Reader, sep string) (*Scanner, error) {
	if sep == "" {
		sep = Delimiter
	}
	var s = &Scanner{
		scan: bufio.NewScanner(r),
		sep:  sep,
	}
	s.scan.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !s.scan.Scan() {
		if err := s.scan.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmpty
	}
	s.line++
	header, err := normalizeHeader(strings.Split(strings.TrimRight(strings.TrimPrefix(s.scan.Text(), "\ufeff"), "\r"), sep))
	if err != nil {
		return nil, err
	}
	s.header = header
	return s, nil
}

// normalizeHeader rename *PeakID* to PeakID, column names must be unique
func normalizeHeader(cells []string) ([]string, error) {
	var (
		header = make([]string, len(cells))
		seen   = make(map[string]bool, len(cells))
	)
	for i, name := range cells {
		if peakID.MatchString(name) {
			name = PeakIDColumn
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = true
		header[i] = name
	}
	return header, nil
}

// Header returns the normalized column names
func (s *Scanner) Header() []string {
	return s.header
}

// HasColumn reports whether column is in the header
func (s *Scanner) HasColumn(column string) bool {
	return hasColumn(s.header, column)
}

// Scan advances to the next non-blank line, white space only lines are skipped
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.scan.Scan() {
		s.line++
		var text = strings.TrimRight(s.scan.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		var cells = strings.Split(text, s.sep)
		if len(cells) != len(s.header) {
			s.err = fmt.Errorf("line %d: %w: got %d, header has %d", s.line, ErrFieldCount, len(cells), len(s.header))
			return false
		}
		var record = make(Record, len(cells))
		for i, cell := range cells {
			record[s.header[i]] = cell
		}
		s.record = record
		return true
	}
	s.err = s.scan.Err()
	return false
}

// Record returns the most recent record, not reused by later calls
func (s *Scanner) Record() Record {
	return s.record
}

// Line returns the current line number, header is line 1
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first non-EOF error
func (s *Scanner) Err() error {
	return s.err
}

// File a Scanner bound to an open file, reopen to restart
type File struct {
	*Scanner
	Path string

	f *os.File
}

// Open opens path and reads its header
func Open(path string, cfg *Config) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, err := NewScanner(f, cfg.sep())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Scanner: s, Path: path, f: f}, nil
}

// Err adds the path to scan errors
func (f *File) Err() error {
	if err := f.Scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}
	return nil
}

func (f *File) Close() error {
	return f.f.Close()
}

// Table a fully materialized file
type Table struct {
	Name    string
	Header  []string
	Records []Record
}

// Len number of records
func (t *Table) Len() int {
	return len(t.Records)
}

// ReadAll reads every record of path
func ReadAll(path string, cfg *Config) (*Table, error) {
	f, err := Open(path, cfg)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var table = &Table{Name: path, Header: f.Header()}
	for f.Scan() {
		table.Records = append(table.Records, f.Record())
	}
	return table, f.Err()
}

// WriteTo writes header and records tab separated
func (t *Table) WriteTo(w io.Writer) (n int64, err error) {
	var bw = bufio.NewWriter(w)
	c, err := fmt.Fprintln(bw, strings.Join(t.Header, Delimiter))
	n += int64(c)
	if err != nil {
		return
	}
	for _, record := range t.Records {
		c, err = fmt.Fprintln(bw, strings.Join(record.Values(t.Header), Delimiter))
		n += int64(c)
		if err != nil {
			return
		}
	}
	err = bw.Flush()
	return
}
