package anno

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Occurrence a matched region, Start and End inclusive
type Occurrence struct {
	Start int
	End   int
}

func (o Occurrence) Length() int {
	return o.End - o.Start + 1
}

func (o Occurrence) String() string {
	return fmt.Sprintf("(%d,%d,%d)", o.Start, o.End, o.Length())
}

// GeneHits exact matches of one gene in one file
type GeneHits struct {
	File        string
	Header      []string
	Records     []Record
	Occurrences []Occurrence
}

func (h *GeneHits) Count() int {
	return len(h.Records)
}

// LookupGene collects records whose column equals gene, per file in paths order
func LookupGene(paths []string, column, gene string, cfg *Config) ([]*GeneHits, error) {
	var hits = make([]*GeneHits, 0, len(paths))
	for _, path := range paths {
		name, err := SampleName(path)
		if err != nil {
			return nil, err
		}
		table, err := Select(path, column, []string{gene}, true, false, cfg)
		if err != nil {
			return nil, err
		}
		var hit = &GeneHits{
			File:    name,
			Header:  table.Header,
			Records: table.Records,
		}
		for _, record := range table.Records {
			start, err := record.Int(StartColumn)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			end, err := record.Int(EndColumn)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			hit.Occurrences = append(hit.Occurrences, Occurrence{Start: start, End: end})
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// GeneHitsTitle header of WriteGeneHits
var GeneHitsTitle = []string{"Filename", "Count", "Occurences (start, end, length)"}

// Row Filename, Count, joined occurrences
func (h *GeneHits) Row() []string {
	var occurrences = make([]string, len(h.Occurrences))
	for i, o := range h.Occurrences {
		occurrences[i] = o.String()
	}
	return []string{h.File, strconv.Itoa(h.Count()), strings.Join(occurrences, ", ")}
}

// WriteGeneHits one row per file
func WriteGeneHits(w io.Writer, hits []*GeneHits) error {
	var bw = bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, strings.Join(GeneHitsTitle, Delimiter)); err != nil {
		return err
	}
	for _, hit := range hits {
		if _, err := fmt.Fprintln(bw, strings.Join(hit.Row(), Delimiter)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
