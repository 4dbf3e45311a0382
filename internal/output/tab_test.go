package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/strdensity/internal/density"
)

func sampleResult() *density.GeneResult {
	return &density.GeneResult{
		GeneID:             "ENSG00000133703",
		GeneName:           "KRAS",
		TotalGeneOverlap:   10,
		GeneDensity:        0.09901,
		TotalExonOverlap:   10,
		ExonDensity:        0.322581,
		TotalIntronOverlap: 0,
		IntronDensity:      0,
		STRTypes:           map[string]int{"10-mer": 1},
	}
}

func TestTabWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(sampleResult()))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"gene_id\tgene_name\ttotal_gene_overlap\tgene_density\ttotal_exon_overlap\texon_density\ttotal_intron_overlap\tintron_density\tstr_types",
		lines[0])
	assert.Equal(t,
		"ENSG00000133703\tKRAS\t10\t0.09901\t10\t0.322581\t0\t0\t10-mer:1",
		lines[1])
}

func TestTabWriter_EmptyHistogram(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	r := sampleResult()
	r.STRTypes = nil

	require.NoError(t, w.Write(r))
	require.NoError(t, w.Flush())

	assert.True(t, strings.HasSuffix(strings.TrimRight(buf.String(), "\n"), "\t"),
		"empty histogram should serialize as an empty final field")
}
