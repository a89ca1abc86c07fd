package main

/*
按基因名查找 .anno 文件中的区域
*/

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/liserjrqlxue/anno/pkg/anno"
	"github.com/liserjrqlxue/anno/pkg/report"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input .anno files or folders, comma separated",
	)
	gene = flag.String(
		"gene",
		"",
		"gene name to search",
	)
	column = flag.String(
		"col",
		anno.GeneNameColumn,
		"column to search under, exact match",
	)
	output = flag.String(
		"o",
		"",
		"output, one row per file, format:\n\tFilename\tCount\tOccurences (start, end, length)",
	)
	xlsx = flag.String(
		"xlsx",
		"",
		"output xlsx",
	)
	detail = flag.Bool(
		"detail",
		false,
		"print every column of matched rows",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" || *gene == "" {
		flag.Usage()
		log.Fatal("-i and -gene required!")
	}

	var paths []string
	for _, in := range anno.SplitList(*input) {
		if info, err := os.Stat(in); err == nil && info.IsDir() {
			paths = append(paths, simpleUtil.HandleError(anno.ListAnno(in))...)
		} else {
			paths = append(paths, in)
		}
	}

	slog.Info("finding", "column", *column, "gene", *gene, "files", len(paths))
	var hits = simpleUtil.HandleError(anno.LookupGene(paths, *column, *gene, anno.DefaultConfig()))

	printHits(os.Stdout, *column, *gene, hits, *detail)

	if *output != "" {
		var out = osUtil.Create(*output)
		defer simpleUtil.DeferClose(out)
		simpleUtil.CheckErr(anno.WriteGeneHits(out, hits))
	}
	if *xlsx != "" {
		simpleUtil.CheckErr(report.WriteXlsx(*xlsx, nil, hits))
	}

	slog.Info("Done", "elapsed", time.Since(t0))
}

func printHits(w io.Writer, column, gene string, hits []*anno.GeneHits, detail bool) {
	for _, hit := range hits {
		fmtUtil.Fprintf(w, "%s: %d row(s) found with %s=%q\n", hit.File, hit.Count(), column, gene)
		if hit.Count() == 0 {
			fmtUtil.Fprintf(w, "\n")
			continue
		}
		if detail {
			printRecords(w, hit)
			continue
		}
		fmtUtil.Fprintf(w, "%-3s%-16s%-16s%-8s\n", "#", "Start", "End", "Length")
		for i, o := range hit.Occurrences {
			fmtUtil.Fprintf(w, "%-3d%-16d%-16d%-8d\n", i+1, o.Start, o.End, o.Length())
		}
		fmtUtil.Fprintf(w, "\n")
	}
}

func printRecords(w io.Writer, hit *anno.GeneHits) {
	var width int
	for _, key := range hit.Header {
		width = max(width, len(key))
	}
	for i, record := range hit.Records {
		fmtUtil.Fprintf(w, "%d:\n", i+1)
		for _, key := range hit.Header {
			fmtUtil.Fprintf(w, "%*s: %s\n", width, key, strings.TrimSpace(record[key]))
		}
	}
	fmtUtil.Fprintf(w, "\n")
}
