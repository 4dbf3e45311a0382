// Package density computes per-gene STR density from gene, exon, and
// STR interval records.
package density

// Interval is a 1-based, end-inclusive genomic interval.
type Interval struct {
	Start int64
	End   int64
}

// Length returns the inclusive interval length.
func (iv Interval) Length() int64 {
	return iv.End - iv.Start + 1
}

// ContainsStrict reports whether inner falls within outer with an
// exclusive left boundary and an inclusive right boundary: an interval
// starting exactly at outer.Start is excluded, one ending exactly at
// outer.End is included.
func ContainsStrict(outer, inner Interval) bool {
	return inner.Start > outer.Start && inner.End <= outer.End
}

// containsInclusive reports whether inner falls within outer with both
// boundaries inclusive. Used for the exon-to-gene association.
func containsInclusive(outer, inner Interval) bool {
	return inner.Start >= outer.Start && inner.End <= outer.End
}

// OverlapLength returns the length of the overlapping span of a and b,
// or 0 when they do not overlap.
func OverlapLength(a, b Interval) int64 {
	return max(0, min(a.End, b.End)-max(a.Start, b.Start))
}
