package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDensity(t *testing.T) {
	assert.InDelta(t, 0.09901, roundDensity(10.0/101.0), 1e-9)
	assert.InDelta(t, 0.322581, roundDensity(10.0/31.0), 1e-9)
	assert.Equal(t, 0.0, roundDensity(0))
}

func TestDensity(t *testing.T) {
	assert.InDelta(t, 0.09901, density(10, 101), 1e-9)

	// Non-positive normalizers degrade to 0, not NaN
	assert.Equal(t, 0.0, density(10, 0))
	assert.Equal(t, 0.0, density(10, -5))
	assert.Equal(t, 0.0, density(0, 100))
}

func TestSTRTypesString(t *testing.T) {
	r := &GeneResult{STRTypes: map[string]int{
		"10-mer": 1,
		"2-mer":  5,
		"4-mer":  2,
	}}

	// Ordered by repeat-unit length, not lexically
	assert.Equal(t, "2-mer:5;4-mer:2;10-mer:1", r.STRTypesString())
}

func TestSTRTypesStringEmpty(t *testing.T) {
	r := &GeneResult{STRTypes: map[string]int{}}
	assert.Equal(t, "", r.STRTypesString())

	r = &GeneResult{}
	assert.Equal(t, "", r.STRTypesString())
}

func TestParseSTRTypes(t *testing.T) {
	assert.Equal(t, map[string]int{"2-mer": 5, "10-mer": 1}, ParseSTRTypes("2-mer:5;10-mer:1"))
	assert.Empty(t, ParseSTRTypes(""))
	assert.Empty(t, ParseSTRTypes("garbage"))

	// Round trip
	r := &GeneResult{STRTypes: map[string]int{"2-mer": 5, "4-mer": 2, "10-mer": 1}}
	assert.Equal(t, r.STRTypes, ParseSTRTypes(r.STRTypesString()))
}

func TestRepeatUnitLength(t *testing.T) {
	assert.Equal(t, 4, repeatUnitLength("4-mer"))
	assert.Equal(t, 10, repeatUnitLength("10-mer"))
	assert.Equal(t, 0, repeatUnitLength("bogus"))
}
