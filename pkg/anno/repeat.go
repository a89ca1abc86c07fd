package anno

import "fmt"

// Partition splits t into records passing filter and the rest
func (t *Table) Partition(filter *Filter) (in, out *Table) {
	in = &Table{Name: t.Name, Header: t.Header}
	out = &Table{Name: t.Name, Header: t.Header}
	for _, record := range t.Records {
		if filter.Match(record) {
			in.Records = append(in.Records, record)
		} else {
			out.Records = append(out.Records, record)
		}
	}
	return
}

// SplitRepeats partitions path by NonRepeatValues (substring) under column.
// Every record lands in exactly one of nonRepeat and repeat.
func SplitRepeats(path, column string, cfg *Config) (nonRepeat, repeat *Table, err error) {
	table, err := ReadAll(path, cfg)
	if err != nil {
		return nil, nil, err
	}
	if !hasColumn(table.Header, column) {
		return nil, nil, fmt.Errorf("%s: %w: %q", path, ErrNoColumn, column)
	}
	nonRepeat, repeat = table.Partition(&Filter{Column: column, Targets: NonRepeatValues})
	return
}

func hasColumn(header []string, column string) bool {
	for _, name := range header {
		if name == column {
			return true
		}
	}
	return false
}
