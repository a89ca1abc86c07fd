package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/liserjrqlxue/anno/pkg/anno"
	"github.com/liserjrqlxue/anno/pkg/chart"
	"github.com/liserjrqlxue/anno/pkg/report"
)

// count annotation categories of every .anno file in folders

// flag
var (
	input = flag.String(
		"i",
		"",
		"input folders of .anno files, comma separated",
	)
	outDir = flag.String(
		"o",
		"results",
		"output dir, write <folder>-results.txt and plots/",
	)
	column = flag.String(
		"col",
		anno.AnnotationColumn,
		"column to search under",
	)
	values = flag.String(
		"values",
		"",
		"categories to count, comma separated, default:\n\tnon-coding,Intergenic,intron,exon,promoter-TSS,TTS,5' UTR,3' UTR",
	)
	valuesFile = flag.String(
		"valuesFile",
		"",
		"categories to count, one per line, override -values",
	)
	exact = flag.Bool(
		"exact",
		false,
		"exact match instead of substring match",
	)
	plotFmt = flag.String(
		"plot",
		"png",
		"pie chart format: png jpg svg pdf, empty to skip",
	)
	html = flag.Bool(
		"html",
		false,
		"write interactive pie charts to <folder>-results.html",
	)
	xlsx = flag.Bool(
		"xlsx",
		false,
		"write count table to <folder>-results.xlsx",
	)
	threads = flag.Int(
		"t",
		runtime.NumCPU(),
		"files counted concurrently",
	)
	cpuProfile = flag.String(
		"cpu",
		"",
		"write cpu profile to file",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" {
		flag.Usage()
		log.Fatal("-i required!")
	}
	if *cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(*cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		simpleUtil.CheckErr(pprof.StartCPUProfile(LogCPUProfile))
		defer pprof.StopCPUProfile()
	}

	var cfg = anno.DefaultConfig()
	cfg.Column = *column
	cfg.Exact = *exact
	cfg.Threads = *threads
	if *valuesFile != "" {
		cfg.Values = anno.LoadValues(*valuesFile)
	} else if *values != "" {
		cfg.Values = anno.SplitList(*values)
	}
	if len(cfg.Values) == 0 {
		log.Fatal("no categories to count")
	}

	var plotsDir = filepath.Join(*outDir, "plots")
	simpleUtil.CheckErr(os.MkdirAll(*outDir, 0755))
	if *plotFmt != "" {
		simpleUtil.CheckErr(os.MkdirAll(plotsDir, 0755))
	}

	for _, folder := range anno.SplitList(*input) {
		var name = filepath.Base(filepath.Clean(folder))
		slog.Info("finding occurrences", "folder", name, "column", cfg.Column, "exact", cfg.Exact)

		var paths = simpleUtil.HandleError(anno.ListAnno(folder))
		if len(paths) == 0 {
			slog.Warn("no .anno files", "folder", folder)
			continue
		}
		var table = simpleUtil.HandleError(anno.CountFiles(paths, cfg))

		var prefix = filepath.Join(*outDir, name+"-results")
		writeTable(prefix+".txt", table)
		if *xlsx {
			simpleUtil.CheckErr(report.WriteXlsx(prefix+".xlsx", table, nil))
		}

		var breakdowns = breakdown(table)
		if *plotFmt != "" {
			for _, b := range breakdowns {
				var path = filepath.Join(plotsDir, b.Name+"."+*plotFmt)
				simpleUtil.CheckErr(chart.SavePie(path, b.Name, b.Slices))
			}
		}
		if *html {
			writeHTML(prefix+".html", name, breakdowns)
		}
		slog.Info("Done", "folder", name, "output", prefix+".txt")
	}

	slog.Info("Done", "elapsed", time.Since(t0))
}

func writeTable(path string, table *anno.CountTable) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)
	simpleUtil.HandleError(table.WriteTo(out))
}

func writeHTML(path, title string, breakdowns []chart.Breakdown) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)
	simpleUtil.CheckErr(chart.WriteHTML(out, title, breakdowns))
}

// breakdown skips files without counts or with a mismatched category set
func breakdown(table *anno.CountTable) []chart.Breakdown {
	var breakdowns []chart.Breakdown
	for _, file := range table.Files {
		slices, err := table.Proportions(file)
		if err != nil {
			slog.Warn("skip chart", "file", file, "err", err)
			continue
		}
		breakdowns = append(breakdowns, chart.Breakdown{Name: file, Slices: slices})
	}
	return breakdowns
}
