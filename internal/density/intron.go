package density

// deriveIntrons returns the interior gaps between consecutive exons.
// Exons must be sorted by ascending start. A gap exists between exon i
// and exon i+1 only when at least one base separates them; adjacent
// exons (end+1 == next start) yield no intron. Nothing is emitted
// before the first exon or after the last.
func deriveIntrons(exons []Interval) []Interval {
	var introns []Interval
	for i := 0; i+1 < len(exons); i++ {
		if exons[i].End+1 < exons[i+1].Start {
			introns = append(introns, Interval{
				Start: exons[i].End + 1,
				End:   exons[i+1].Start - 1,
			})
		}
	}
	return introns
}
