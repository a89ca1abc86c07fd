package anno

import (
	"errors"
	"regexp"
)

// const
const (
	Ext       = ".anno"
	Delimiter = "\t"

	// 默认统计列
	AnnotationColumn         = "Annotation"
	DetailedAnnotationColumn = "Detailed Annotation"
	GeneNameColumn           = "Gene Name"

	PeakIDColumn = "PeakID"
	ChrColumn    = "Chr"
	StartColumn  = "Start"
	EndColumn    = "End"

	TotalRow    = "Total"
	ValuesTitle = "Values"
)

// SearchValues categories counted by default
var SearchValues = []string{
	"non-coding",
	"Intergenic",
	"intron",
	"exon",
	"promoter-TSS",
	"TTS",
	"5' UTR",
	"3' UTR",
}

// NonRepeatValues rows whose annotation contains none of these are repeats
var NonRepeatValues = []string{
	"intron",
	"exon",
	"5' UTR",
	"3' UTR",
	"promoter-TSS",
	"TTS",
	"Intergenic",
	"non-coding",
}

// BedColumns minimal positional subset
var BedColumns = []string{ChrColumn, StartColumn, EndColumn, PeakIDColumn}

// regexp
var (
	peakID = regexp.MustCompile(`PeakID`)
	isAnno = regexp.MustCompile(`\.anno$`)
)

// errors
var (
	ErrNotAnno         = errors.New("not an .anno file")
	ErrFieldCount      = errors.New("wrong number of fields")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrNoColumn        = errors.New("no such column")
	ErrEmpty           = errors.New("missing header line")
	ErrNoCounts        = errors.New("no counts")
	ErrShape           = errors.New("category set mismatch")
	ErrTotal           = errors.New("total row mismatch")
)
