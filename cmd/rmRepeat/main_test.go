package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/liserjrqlxue/anno/pkg/anno"
)

const testAnno = "PeakID (cmd=annotatePeaks.pl)\tChr\tStart\tEnd\tDetailed Annotation\n" +
	"peak1\tchr1\t100\t150\tintron (NM_001, intron 1 of 4)\n" +
	"peak2\tchr1\t140\t200\texon (NM_002, exon 2 of 5)\n" +
	"peak3\tchr2\t10\t50\tL1PA2|LINE|L1\n"

func TestOutputPrefix(t *testing.T) {
	for _, test := range []struct {
		input, prefix, want string
		err                 error
	}{
		{input: "data/sample.anno", want: "data/sample"},
		{input: "data/sample.anno", prefix: "out/x", want: "out/x"},
		{input: "data/sample.txt", err: anno.ErrNotAnno},
	} {
		got, err := outputPrefix(test.input, test.prefix)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: error = %v, want %v", test.input, err, test.err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: prefix = %q, want %q", test.input, got, test.want)
		}
	}
}

func split(t *testing.T) (prefix string, nonRepeat, repeat *anno.Table) {
	t.Helper()
	var dir = t.TempDir()
	var input = filepath.Join(dir, "sample.anno")
	if err := os.WriteFile(input, []byte(testAnno), 0644); err != nil {
		t.Fatal(err)
	}
	prefix, err := outputPrefix(input, "")
	if err != nil {
		t.Fatal(err)
	}
	nonRepeat, repeat, err = anno.SplitRepeats(input, anno.DetailedAnnotationColumn, anno.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return prefix, nonRepeat, repeat
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func TestWriteOutputsAnno(t *testing.T) {
	var prefix, nonRepeat, repeat = split(t)
	outputs, err := writeOutputs(prefix, nonRepeat, repeat, false, false)
	if err != nil {
		t.Fatal(err)
	}
	var want = []string{prefix + ".nonRepeat.anno", prefix + ".repeat.anno"}
	if !reflect.DeepEqual(outputs, want) {
		t.Fatalf("outputs = %q, want %q", outputs, want)
	}
	if lines := readLines(t, want[0]); len(lines) != 3 || !strings.HasPrefix(lines[1], "peak1\t") {
		t.Errorf("non repeat = %q", lines)
	}
	if lines := readLines(t, want[1]); len(lines) != 2 || !strings.HasPrefix(lines[1], "peak3\t") {
		t.Errorf("repeat = %q", lines)
	}
}

func TestWriteOutputsBed(t *testing.T) {
	var prefix, nonRepeat, repeat = split(t)
	outputs, err := writeOutputs(prefix, nonRepeat, repeat, true, true)
	if err != nil {
		t.Fatal(err)
	}
	var want = []string{
		prefix + ".nonRepeat.bed",
		prefix + ".nonRepeat.merged.bed",
		prefix + ".repeat.anno",
	}
	if !reflect.DeepEqual(outputs, want) {
		t.Fatalf("outputs = %q, want %q", outputs, want)
	}
	if _, err = os.Stat(prefix + ".nonRepeat.anno"); !os.IsNotExist(err) {
		t.Errorf("nonRepeat.anno written with -bed: %v", err)
	}

	var lines = readLines(t, want[0])
	if len(lines) != 2 || !reflect.DeepEqual(strings.Fields(lines[0]), []string{"chr1", "100", "150", "peak1"}) {
		t.Errorf("bed = %q", lines)
	}
	lines = readLines(t, want[1])
	if len(lines) != 1 || !reflect.DeepEqual(strings.Fields(lines[0]), []string{"chr1", "100", "200", "Merged:2"}) {
		t.Errorf("merged bed = %q", lines)
	}
}
