// Package bed provides BED-style STR region file parsing.
package bed

import "fmt"

// STR represents a short tandem repeat region with its repeat-unit sequence.
type STR struct {
	Chrom    string
	Start    int64
	End      int64
	Name     string
	Sequence string // repeat-unit bases

	// RepeatType classifies the STR by repeat-unit length, e.g. "4-mer".
	// Computed once at construction; sequences of equal length share a type.
	RepeatType string
}

// NewSTR creates an STR record with its repeat type precomputed.
func NewSTR(chrom string, start, end int64, name, sequence string) *STR {
	return &STR{
		Chrom:      chrom,
		Start:      start,
		End:        end,
		Name:       name,
		Sequence:   sequence,
		RepeatType: fmt.Sprintf("%d-mer", len(sequence)),
	}
}
