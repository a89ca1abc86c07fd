package anno

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CountTable category -> file -> count, every category has one count per file
type CountTable struct {
	Values []string
	Files  []string
	Counts map[string]map[string]int
}

// NewCountTable all counts zero
func NewCountTable(values, files []string) *CountTable {
	var t = &CountTable{
		Values: append([]string(nil), values...),
		Files:  append([]string(nil), files...),
		Counts: make(map[string]map[string]int, len(values)),
	}
	for _, value := range values {
		var row = make(map[string]int, len(files))
		for _, file := range files {
			row[file] = 0
		}
		t.Counts[value] = row
	}
	return t
}

func (t *CountTable) Get(value, file string) int {
	return t.Counts[value][file]
}

func (t *CountTable) Set(value, file string, count int) {
	var row, ok = t.Counts[value]
	if !ok {
		row = make(map[string]int)
		t.Counts[value] = row
	}
	row[file] = count
}

// Total sum of file's counts over Values
func (t *CountTable) Total(file string) int {
	var total int
	for _, value := range t.Values {
		total += t.Counts[value][file]
	}
	return total
}

// Totals the Total row, in Files order
func (t *CountTable) Totals() []int {
	var totals = make([]int, len(t.Files))
	for i, file := range t.Files {
		totals[i] = t.Total(file)
	}
	return totals
}

// Slice one wedge of a file's category breakdown
type Slice struct {
	Value   string
	Count   int
	Percent float64
}

// Proportions file's counts in Values order, Percent = 100*count/total.
// ErrShape when a category has no entry for file, ErrNoCounts when total is zero.
func (t *CountTable) Proportions(file string) ([]Slice, error) {
	var slices = make([]Slice, len(t.Values))
	var total int
	for i, value := range t.Values {
		count, ok := t.Counts[value][file]
		if !ok {
			return nil, fmt.Errorf("%s: %w: missing %q", file, ErrShape, value)
		}
		slices[i] = Slice{Value: value, Count: count}
		total += count
	}
	var expect = make(map[string]bool, len(t.Values))
	for _, value := range t.Values {
		expect[value] = true
	}
	for value, row := range t.Counts {
		if _, ok := row[file]; ok && !expect[value] {
			return nil, fmt.Errorf("%s: %w: unexpected %q", file, ErrShape, value)
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("%s: %w", file, ErrNoCounts)
	}
	for i := range slices {
		slices[i].Percent = 100 * float64(slices[i].Count) / float64(total)
	}
	return slices, nil
}

// CountFiles counts every cfg.Values category under cfg.Column in each path.
// One scan per file gives the same counts as one Count per (file, category).
// Files are named by SampleName.
func CountFiles(paths []string, cfg *Config) (*CountTable, error) {
	names, err := SampleNames(paths)
	if err != nil {
		return nil, err
	}
	var (
		filters = make([]*Filter, len(cfg.Values))
		counts  = make([][]int, len(paths))
		g       errgroup.Group
	)
	for i, value := range cfg.Values {
		filters[i] = &Filter{Column: cfg.Column, Targets: []string{value}, Exact: cfg.Exact}
	}

	g.SetLimit(cfg.threads())
	for i, path := range paths {
		g.Go(func() error {
			c, err := countFile(path, filters, cfg)
			counts[i] = c
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	var table = NewCountTable(cfg.Values, names)
	for i, name := range names {
		for j, value := range cfg.Values {
			table.Set(value, name, counts[i][j])
		}
	}
	return table, nil
}

func countFile(path string, filters []*Filter, cfg *Config) ([]int, error) {
	var counts = make([]int, len(filters))
	file, err := Open(path, cfg)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if len(filters) > 0 {
		if err = filters[0].check(file); err != nil {
			return nil, err
		}
	}
	for file.Scan() {
		var record = file.Record()
		for i, filter := range filters {
			if filter.Match(record) {
				counts[i]++
			}
		}
	}
	return counts, file.Err()
}

// WriteTo header Values + file names, one row per category, then Total
func (t *CountTable) WriteTo(w io.Writer) (n int64, err error) {
	var (
		bw = bufio.NewWriter(w)
		c  int
	)
	write := func(title string, counts []int) bool {
		var cells = make([]string, 0, len(counts)+1)
		cells = append(cells, title)
		for _, count := range counts {
			cells = append(cells, strconv.Itoa(count))
		}
		c, err = fmt.Fprintln(bw, strings.Join(cells, Delimiter))
		n += int64(c)
		return err == nil
	}

	c, err = fmt.Fprintln(bw, strings.Join(append([]string{ValuesTitle}, t.Files...), Delimiter))
	n += int64(c)
	if err != nil {
		return
	}
	for _, value := range t.Values {
		var counts = make([]int, len(t.Files))
		for i, file := range t.Files {
			counts[i] = t.Counts[value][file]
		}
		if !write(value, counts) {
			return
		}
	}
	if !write(TotalRow, t.Totals()) {
		return
	}
	err = bw.Flush()
	return
}

// ReadCountTable parses the output of WriteTo, the Total row is checked not stored
func ReadCountTable(r io.Reader) (*CountTable, error) {
	var (
		scan   = bufio.NewScanner(r)
		table  *CountTable
		totals []int
		line   int
	)
	for scan.Scan() {
		line++
		var text = strings.TrimRight(scan.Text(), "\r")
		if text == "" {
			continue
		}
		var cells = strings.Split(text, Delimiter)
		if table == nil {
			if cells[0] != ValuesTitle {
				return nil, fmt.Errorf("line %d: expect %q header, got %q", line, ValuesTitle, cells[0])
			}
			table = NewCountTable(nil, cells[1:])
			continue
		}
		if len(cells) != len(table.Files)+1 {
			return nil, fmt.Errorf("line %d: %w", line, ErrFieldCount)
		}
		var counts = make([]int, len(table.Files))
		for i, cell := range cells[1:] {
			count, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			counts[i] = count
		}
		if cells[0] == TotalRow {
			totals = counts
			continue
		}
		table.Values = append(table.Values, cells[0])
		for i, file := range table.Files {
			table.Set(cells[0], file, counts[i])
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrEmpty
	}
	if totals != nil {
		for i, total := range table.Totals() {
			if total != totals[i] {
				return nil, fmt.Errorf("%w: %s: %d != %d", ErrTotal, table.Files[i], totals[i], total)
			}
		}
	}
	return table, nil
}
