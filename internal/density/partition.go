package density

import (
	"github.com/inodb/strdensity/internal/annotation"
	"github.com/inodb/strdensity/internal/bed"
)

// chromPartition groups gene, exon, and STR records by chromosome so
// per-gene scans only visit same-chromosome candidates. Record order
// within each chromosome is file order; order lists chromosomes by
// first appearance among the gene records, which fixes the output row
// order.
type chromPartition struct {
	genes map[string][]*annotation.Gene
	exons map[string][]*annotation.Exon
	strs  map[string][]*bed.STR
	order []string
}

func partitionRecords(genes []*annotation.Gene, exons []*annotation.Exon, strs []*bed.STR) *chromPartition {
	p := &chromPartition{
		genes: make(map[string][]*annotation.Gene),
		exons: make(map[string][]*annotation.Exon),
		strs:  make(map[string][]*bed.STR),
	}

	for _, g := range genes {
		if _, seen := p.genes[g.Chrom]; !seen {
			p.order = append(p.order, g.Chrom)
		}
		p.genes[g.Chrom] = append(p.genes[g.Chrom], g)
	}
	for _, e := range exons {
		p.exons[e.Chrom] = append(p.exons[e.Chrom], e)
	}
	for _, s := range strs {
		p.strs[s.Chrom] = append(p.strs[s.Chrom], s)
	}

	return p
}
