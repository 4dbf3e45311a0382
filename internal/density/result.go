package density

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// densityPrecision is the number of decimal places densities are
// rounded to for output stability.
const densityPrecision = 6

// GeneResult holds the per-gene density computation output.
type GeneResult struct {
	GeneID             string
	GeneName           string
	TotalGeneOverlap   int64
	GeneDensity        float64
	TotalExonOverlap   int64
	ExonDensity        float64
	TotalIntronOverlap int64
	IntronDensity      float64
	STRTypes           map[string]int // repeat type -> count
}

// roundDensity rounds a density value to densityPrecision decimal places.
func roundDensity(v float64) float64 {
	const scale = 1e6
	return math.Round(v*scale) / scale
}

// density returns overlap normalized by length, or 0 when the
// normalizer is not positive.
func density(overlap, length int64) float64 {
	if length <= 0 {
		return 0
	}
	return roundDensity(float64(overlap) / float64(length))
}

// STRTypesString serializes the repeat-type histogram as "key:count"
// pairs joined by ";", ordered by repeat-unit length so identical
// inputs always produce identical rows.
func (r *GeneResult) STRTypesString() string {
	if len(r.STRTypes) == 0 {
		return ""
	}

	keys := make([]string, 0, len(r.STRTypes))
	for k := range r.STRTypes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ki, kj := repeatUnitLength(keys[i]), repeatUnitLength(keys[j])
		if ki != kj {
			return ki < kj
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s:%d", k, r.STRTypes[k]))
	}
	return strings.Join(pairs, ";")
}

// ParseSTRTypes parses the serialized histogram form produced by
// STRTypesString back into a map. Malformed pairs are skipped.
func ParseSTRTypes(s string) map[string]int {
	types := make(map[string]int)
	if s == "" {
		return types
	}
	for _, pair := range strings.Split(s, ";") {
		key, count, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			continue
		}
		types[key] = n
	}
	return types
}

// repeatUnitLength parses the numeric prefix of a "<n>-mer" label.
func repeatUnitLength(repeatType string) int {
	prefix, _, found := strings.Cut(repeatType, "-")
	if !found {
		return 0
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return n
}
