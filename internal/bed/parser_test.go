package bed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSTR_RepeatType(t *testing.T) {
	tests := []struct {
		sequence string
		want     string
	}{
		{"ACAC", "4-mer"},
		{"GTGT", "4-mer"},
		{"A", "1-mer"},
		{"CAGCAGCAG", "9-mer"},
	}

	for _, tt := range tests {
		s := NewSTR("1", 100, 110, "str1", tt.sequence)
		assert.Equal(t, tt.want, s.RepeatType, "NewSTR(%q).RepeatType", tt.sequence)
	}
}

func TestParser_Parse(t *testing.T) {
	bedContent := `chr1	10000	10044	Human_STR_1	ACAC
chr1	10500	10520	Human_STR_2	GT
chr2	20000	20030	Human_STR_3	CAG
`

	p := &Parser{}
	strs, err := p.parse(strings.NewReader(bedContent))
	require.NoError(t, err)
	require.Len(t, strs, 3)

	first := strs[0]
	assert.Equal(t, "1", first.Chrom)
	assert.Equal(t, int64(10000), first.Start)
	assert.Equal(t, int64(10044), first.End)
	assert.Equal(t, "Human_STR_1", first.Name)
	assert.Equal(t, "ACAC", first.Sequence)
	assert.Equal(t, "4-mer", first.RepeatType)

	assert.Equal(t, "2-mer", strs[1].RepeatType)
	assert.Equal(t, "2", strs[2].Chrom)
}

func TestParser_ParseEmpty(t *testing.T) {
	p := &Parser{}

	_, err := p.parse(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty or invalid")
}

func TestParser_ParseMalformed(t *testing.T) {
	p := &Parser{}

	// Too few columns
	_, err := p.parse(strings.NewReader("chr1\t100\t200\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")

	// Non-numeric end
	_, err = p.parse(strings.NewReader("chr1\t100\txyz\tstr1\tAC\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse end")
}

func TestParser_LoadMissingFile(t *testing.T) {
	p := NewParser("testdata/does-not-exist.bed")
	_, err := p.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open BED file")
}
