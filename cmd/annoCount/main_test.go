package main

import (
	"testing"

	"github.com/liserjrqlxue/anno/pkg/anno"
)

func TestBreakdown(t *testing.T) {
	var table = anno.NewCountTable([]string{"exon", "intron"}, []string{"a", "zero", "b"})
	table.Set("exon", "a", 1)
	table.Set("intron", "b", 2)

	var got = breakdown(table)
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Fatalf("breakdown = %+v", got)
	}
	if got[1].Slices[1].Percent != 100 {
		t.Errorf("b intron percent = %v, want 100", got[1].Slices[1].Percent)
	}
}
