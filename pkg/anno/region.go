package anno

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/biogo/biogo/io/featio/bed"
)

// Region Chr Start End PeakID of a record, Start and End as written in the .anno file
type Region struct {
	chr   string
	start int
	end   int
	name  string
}

// NewRegion reads BedColumns from record
func NewRegion(record Record) (*Region, error) {
	start, err := record.Int(StartColumn)
	if err != nil {
		return nil, err
	}
	end, err := record.Int(EndColumn)
	if err != nil {
		return nil, err
	}
	return &Region{
		chr:   record[ChrColumn],
		start: start,
		end:   end,
		name:  record[PeakIDColumn],
	}, nil
}

func (r *Region) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%s", r.chr, r.start, r.end, r.name)
}

// Regions NewRegion for every record of t
func (t *Table) Regions() ([]*Region, error) {
	var regions = make([]*Region, 0, len(t.Records))
	for i, record := range t.Records {
		region, err := NewRegion(record)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", t.Name, i+1, err)
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// MergeRegions 合并有交集的区间, per chromosome, name becomes Merged:<count>
func MergeRegions(regions []*Region) []*Region {
	if len(regions) == 0 {
		return regions
	}

	// 按染色体、起点排序
	var sorted = make([]*Region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].chr != sorted[j].chr {
			return sorted[i].chr < sorted[j].chr
		}
		return sorted[i].start < sorted[j].start
	})

	var (
		merged  []*Region
		current = *sorted[0]
		count   = 1
	)
	flush := func() {
		var region = current
		region.name = fmt.Sprintf("Merged:%d", count)
		merged = append(merged, &region)
	}
	for _, region := range sorted[1:] {
		if region.chr == current.chr && region.start <= current.end {
			if region.end > current.end {
				current.end = region.end
			}
			count++
			continue
		}
		flush()
		current = *region
		count = 1
	}
	flush()
	return merged
}

// SumLength bases covered, ends inclusive
func SumLength(regions []*Region) int {
	var sum int
	for _, region := range regions {
		sum += region.end - region.start + 1
	}
	return sum
}

// WriteBed four column BED lines
func WriteBed(w io.Writer, regions []*Region) error {
	var buf = bufio.NewWriter(w)
	bw, err := bed.NewWriter(buf, 4)
	if err != nil {
		return err
	}
	for _, region := range regions {
		_, err = bw.Write(&bed.Bed4{
			Chrom:      region.chr,
			ChromStart: region.start,
			ChromEnd:   region.end,
			FeatName:   region.name,
		})
		if err != nil {
			return err
		}
	}
	return buf.Flush()
}
