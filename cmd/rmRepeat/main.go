package main

/*
拆分 .anno 文件为 非重复区域 和 重复区域
*/

import (
	"flag"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/liserjrqlxue/anno/pkg/anno"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input .anno file",
	)
	prefix = flag.String(
		"o",
		"",
		"output prefix, default input without .anno, write:\n\tprefix.nonRepeat.anno|bed\n\tprefix.repeat.anno",
	)
	column = flag.String(
		"col",
		anno.DetailedAnnotationColumn,
		"column holding the annotation, substring match",
	)
	bed = flag.Bool(
		"bed",
		false,
		"non repeat output keep only Chr Start End PeakID",
	)
	merge = flag.Bool(
		"merge",
		false,
		"also write overlapping non repeat regions merged to prefix.nonRepeat.merged.bed",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" {
		flag.Usage()
		log.Fatal("-i required!")
	}
	*prefix = simpleUtil.HandleError(outputPrefix(*input, *prefix))

	var nonRepeat, repeat, err = anno.SplitRepeats(*input, *column, anno.DefaultConfig())
	simpleUtil.CheckErr(err)
	slog.Info("split", "input", *input, "nonRepeat", nonRepeat.Len(), "repeat", repeat.Len())

	var outputs = simpleUtil.HandleError(writeOutputs(*prefix, nonRepeat, repeat, *bed, *merge))
	slog.Info("write", "outputs", outputs)

	slog.Info("Done", "elapsed", time.Since(t0))
}

// outputPrefix input without .anno unless prefix is set
func outputPrefix(input, prefix string) (string, error) {
	if prefix != "" {
		return prefix, nil
	}
	if _, err := anno.SampleName(input); err != nil {
		return "", err
	}
	return strings.TrimSuffix(input, anno.Ext), nil
}

// writeOutputs returns the paths written
func writeOutputs(prefix string, nonRepeat, repeat *anno.Table, asBed, merge bool) ([]string, error) {
	var outputs []string
	if asBed || merge {
		regions, err := nonRepeat.Regions()
		if err != nil {
			return nil, err
		}
		if asBed {
			outputs = append(outputs, prefix+".nonRepeat.bed")
			writeBed(outputs[len(outputs)-1], regions)
		}
		if merge {
			var merged = anno.MergeRegions(regions)
			slog.Info("merge", "regions", len(merged), "length", anno.SumLength(merged))
			outputs = append(outputs, prefix+".nonRepeat.merged.bed")
			writeBed(outputs[len(outputs)-1], merged)
		}
	}
	if !asBed {
		outputs = append(outputs, prefix+".nonRepeat"+anno.Ext)
		writeTable(outputs[len(outputs)-1], nonRepeat)
	}
	outputs = append(outputs, prefix+".repeat"+anno.Ext)
	writeTable(outputs[len(outputs)-1], repeat)
	return outputs, nil
}

func writeTable(path string, table *anno.Table) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)
	simpleUtil.HandleError(table.WriteTo(out))
}

func writeBed(path string, regions []*anno.Region) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)
	simpleUtil.CheckErr(anno.WriteBed(out, regions))
}
