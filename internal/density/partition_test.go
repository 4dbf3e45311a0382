package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/strdensity/internal/annotation"
	"github.com/inodb/strdensity/internal/bed"
)

func TestPartitionRecords(t *testing.T) {
	genes := []*annotation.Gene{
		{Chrom: "2", Start: 100, End: 200, ID: "G1"},
		{Chrom: "1", Start: 300, End: 400, ID: "G2"},
		{Chrom: "2", Start: 500, End: 600, ID: "G3"},
	}
	exons := []*annotation.Exon{
		{Chrom: "2", Start: 110, End: 120},
		{Chrom: "1", Start: 310, End: 320},
	}
	strs := []*bed.STR{
		bed.NewSTR("1", 305, 315, "s1", "AC"),
		bed.NewSTR("X", 10, 20, "s2", "AT"), // no genes on X
	}

	p := partitionRecords(genes, exons, strs)

	// Chromosome order follows first appearance among gene records
	assert.Equal(t, []string{"2", "1"}, p.order)

	// Every record lands in exactly one partition, in original order
	require.Len(t, p.genes["2"], 2)
	assert.Equal(t, "G1", p.genes["2"][0].ID)
	assert.Equal(t, "G3", p.genes["2"][1].ID)
	require.Len(t, p.genes["1"], 1)
	assert.Equal(t, "G2", p.genes["1"][0].ID)

	assert.Len(t, p.exons["2"], 1)
	assert.Len(t, p.exons["1"], 1)

	// STR-only chromosomes are stored but never visited downstream
	assert.Len(t, p.strs["X"], 1)
	assert.NotContains(t, p.order, "X")
}

func TestPartitionRecordsEmpty(t *testing.T) {
	p := partitionRecords(nil, nil, nil)
	assert.Empty(t, p.order)
	assert.Empty(t, p.genes)
}
