package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/liserjrqlxue/anno/pkg/anno"
)

// sheet names
const (
	CountsSheet = "Counts"
	GenesSheet  = "Genes"
)

// WriteXlsx Counts sheet from table and Genes sheet from hits, either may be nil
func WriteXlsx(path string, table *anno.CountTable, hits []*anno.GeneHits) error {
	var xlsx = excelize.NewFile()
	defer xlsx.Close()

	var first = true
	addSheet := func(name string, rows [][]interface{}) error {
		index, err := xlsx.NewSheet(name)
		if err != nil {
			return err
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			if err = xlsx.SetSheetRow(name, cell, &row); err != nil {
				return err
			}
		}
		if first {
			xlsx.SetActiveSheet(index)
			first = false
		}
		return nil
	}

	if table != nil {
		if err := addSheet(CountsSheet, CountRows(table)); err != nil {
			return err
		}
	}
	if hits != nil {
		if err := addSheet(GenesSheet, GeneRows(hits)); err != nil {
			return err
		}
	}
	if !first {
		if err := xlsx.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}
	return xlsx.SaveAs(path)
}

// CountRows table layout of CountTable.WriteTo, counts kept numeric
func CountRows(table *anno.CountTable) [][]interface{} {
	var rows = make([][]interface{}, 0, len(table.Values)+2)

	var title = []interface{}{anno.ValuesTitle}
	for _, file := range table.Files {
		title = append(title, file)
	}
	rows = append(rows, title)

	for _, value := range table.Values {
		var row = []interface{}{value}
		for _, file := range table.Files {
			row = append(row, table.Get(value, file))
		}
		rows = append(rows, row)
	}

	var total = []interface{}{anno.TotalRow}
	for _, count := range table.Totals() {
		total = append(total, count)
	}
	return append(rows, total)
}

// GeneRows layout of anno.WriteGeneHits
func GeneRows(hits []*anno.GeneHits) [][]interface{} {
	var rows = make([][]interface{}, 0, len(hits)+1)
	var title []interface{}
	for _, cell := range anno.GeneHitsTitle {
		title = append(title, cell)
	}
	rows = append(rows, title)
	for _, hit := range hits {
		var row = hit.Row()
		rows = append(rows, []interface{}{row[0], hit.Count(), row[2]})
	}
	return rows
}
