package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/liserjrqlxue/anno/pkg/anno"
)

// Breakdown category breakdown of one file
type Breakdown struct {
	Name   string
	Slices []anno.Slice
}

// NewEChartsPie interactive pie of one file
func NewEChartsPie(b Breakdown) *charts.Pie {
	var pie = charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: b.Name}),
	)

	var data = make([]opts.PieData, len(b.Slices))
	for i, s := range b.Slices {
		data[i] = opts.PieData{Name: s.Value, Value: s.Count}
	}
	pie.AddSeries(
		b.Name,
		data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return pie
}

// WriteHTML one page, one pie per breakdown
func WriteHTML(w io.Writer, title string, breakdowns []Breakdown) error {
	var page = components.NewPage()
	page.PageTitle = title
	for _, b := range breakdowns {
		page.AddCharts(NewEChartsPie(b))
	}
	return page.Render(w)
}
