package anno

import (
	"fmt"
	"strings"
)

// Filter selects records by the value under Column.
//
// Exact compares the trimmed cell value to each target; otherwise a record
// matches when any target is contained in the trimmed value. Matching is
// case-sensitive. Negate inverts the result.
type Filter struct {
	Column  string
	Targets []string
	Exact   bool
	Negate  bool
}

// Match reports whether record passes the filter
func (f *Filter) Match(record Record) bool {
	var value = strings.TrimSpace(record[f.Column])
	var hit bool
	for _, target := range f.Targets {
		if f.Exact {
			hit = value == target
		} else {
			hit = strings.Contains(value, target)
		}
		if hit {
			break
		}
	}
	return hit != f.Negate
}

func (f *Filter) check(file *File) error {
	if !file.HasColumn(f.Column) {
		return fmt.Errorf("%s: %w: %q", file.Path, ErrNoColumn, f.Column)
	}
	return nil
}

// Count number of records in path matching any of targets under column
func Count(path, column string, targets []string, exact bool, cfg *Config) (int, error) {
	var filter = &Filter{Column: column, Targets: targets, Exact: exact}
	file, err := Open(path, cfg)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	if err = filter.check(file); err != nil {
		return 0, err
	}

	var count int
	for file.Scan() {
		if filter.Match(file.Record()) {
			count++
		}
	}
	return count, file.Err()
}

// Select records in path matching (or with negate, not matching) targets under column
func Select(path, column string, targets []string, exact, negate bool, cfg *Config) (*Table, error) {
	var filter = &Filter{Column: column, Targets: targets, Exact: exact, Negate: negate}
	file, err := Open(path, cfg)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if err = filter.check(file); err != nil {
		return nil, err
	}

	var table = &Table{Name: path, Header: file.Header()}
	for file.Scan() {
		if filter.Match(file.Record()) {
			table.Records = append(table.Records, file.Record())
		}
	}
	return table, file.Err()
}
