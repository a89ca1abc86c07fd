package anno

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/skarademir/naturalsort"
)

// SampleName strips the .anno extension from the base name of path
func SampleName(path string) (string, error) {
	var base = filepath.Base(path)
	if !isAnno.MatchString(base) || base == Ext {
		return "", fmt.Errorf("%w: %s", ErrNotAnno, path)
	}
	return strings.TrimSuffix(base, Ext), nil
}

// SampleNames SampleName for every path
func SampleNames(paths []string) ([]string, error) {
	var names = make([]string, len(paths))
	for i, path := range paths {
		name, err := SampleName(path)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// ListAnno lists the .anno files directly under dir in natural order
func ListAnno(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isAnno.MatchString(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Sort(naturalsort.NaturalSort(names))

	var paths = make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// LoadValues one category per line, blank lines and # comments skipped
func LoadValues(path string) []string {
	var values []string
	for _, line := range textUtil.File2Array(path) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}
	return values
}

// SplitList comma separated list, empty items dropped
func SplitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
