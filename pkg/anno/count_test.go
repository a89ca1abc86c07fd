package anno

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func testFolder(t *testing.T) (dir string, paths []string) {
	t.Helper()
	dir = t.TempDir()
	paths = []string{
		writeAnno(t, dir, "a.anno", testHeader, testRows),
		writeAnno(t, dir, "b.anno", testHeader, testRows[:2]),
		writeAnno(t, dir, "c.anno", testHeader, nil),
	}
	return
}

func TestCountFiles(t *testing.T) {
	_, paths := testFolder(t)
	var cfg = DefaultConfig()
	cfg.Threads = 2
	table, err := CountFiles(paths, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(table.Files, []string{"a", "b", "c"}) {
		t.Errorf("files = %q", table.Files)
	}
	for _, test := range []struct {
		value, file string
		want        int
	}{
		{"exon", "a", 1},
		{"intron", "a", 1},
		{"Intergenic", "a", 1},
		{"promoter-TSS", "a", 1},
		{"non-coding", "a", 1},
		{"TTS", "a", 0},
		{"exon", "b", 1},
		{"non-coding", "b", 0},
		{"exon", "c", 0},
	} {
		if got := table.Get(test.value, test.file); got != test.want {
			t.Errorf("%s/%s = %d, want %d", test.value, test.file, got, test.want)
		}
	}

	// one count per (file, category) pair gives the same table
	for i, path := range paths {
		for _, value := range cfg.Values {
			n, err := Count(path, cfg.Column, []string{value}, cfg.Exact, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if got := table.Get(value, table.Files[i]); got != n {
				t.Errorf("%s/%s = %d, Count = %d", value, table.Files[i], got, n)
			}
		}
	}
}

func TestCountFilesErrors(t *testing.T) {
	dir, paths := testFolder(t)
	if _, err := CountFiles(append(paths, dir+"/missing.anno"), DefaultConfig()); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := CountFiles([]string{dir + "/a.txt"}, DefaultConfig()); !errors.Is(err, ErrNotAnno) {
		t.Errorf("error = %v, want ErrNotAnno", err)
	}
}

func TestTotals(t *testing.T) {
	_, paths := testFolder(t)
	table, err := CountFiles(paths, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i, file := range table.Files {
		var sum int
		for _, value := range table.Values {
			sum += table.Get(value, file)
		}
		if table.Totals()[i] != sum {
			t.Errorf("%s total = %d, want %d", file, table.Totals()[i], sum)
		}
	}
}

func TestCountTableWriteTo(t *testing.T) {
	var table = NewCountTable([]string{"exon", "intron"}, []string{"a", "b"})
	table.Set("exon", "a", 3)
	table.Set("intron", "a", 1)
	table.Set("intron", "b", 7)

	var b strings.Builder
	n, err := table.WriteTo(&b)
	if err != nil {
		t.Fatal(err)
	}
	var want = "Values\ta\tb\n" +
		"exon\t3\t0\n" +
		"intron\t1\t7\n" +
		"Total\t4\t7\n"
	if b.String() != want {
		t.Errorf("output = %q, want %q", b.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("n = %d, want %d", n, len(want))
	}
}

func TestCountTableRoundTrip(t *testing.T) {
	_, paths := testFolder(t)
	table, err := CountFiles(paths, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if _, err = table.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCountTable(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, table) {
		t.Errorf("round trip = %+v, want %+v", got, table)
	}
}

func TestReadCountTableBadTotal(t *testing.T) {
	var in = "Values\ta\nexon\t1\nintron\t2\nTotal\t4\n"
	if _, err := ReadCountTable(strings.NewReader(in)); !errors.Is(err, ErrTotal) {
		t.Errorf("error = %v, want ErrTotal", err)
	}
}

func TestProportions(t *testing.T) {
	var table = NewCountTable([]string{"exon", "intron", "TTS"}, []string{"a", "b"})
	table.Set("exon", "a", 1)
	table.Set("intron", "a", 3)

	slices, err := table.Proportions("a")
	if err != nil {
		t.Fatal(err)
	}
	var want = []Slice{
		{Value: "exon", Count: 1, Percent: 25},
		{Value: "intron", Count: 3, Percent: 75},
		{Value: "TTS", Count: 0, Percent: 0},
	}
	if !reflect.DeepEqual(slices, want) {
		t.Errorf("slices = %+v, want %+v", slices, want)
	}

	if _, err = table.Proportions("b"); !errors.Is(err, ErrNoCounts) {
		t.Errorf("b error = %v, want ErrNoCounts", err)
	}

	delete(table.Counts["TTS"], "a")
	if _, err = table.Proportions("a"); !errors.Is(err, ErrShape) {
		t.Errorf("missing category error = %v, want ErrShape", err)
	}

	table.Set("TTS", "a", 0)
	table.Set("extra", "a", 2)
	if _, err = table.Proportions("a"); !errors.Is(err, ErrShape) {
		t.Errorf("extra category error = %v, want ErrShape", err)
	}
}
