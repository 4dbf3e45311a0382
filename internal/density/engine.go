package density

import (
	"sort"

	"go.uber.org/zap"

	"github.com/inodb/strdensity/internal/annotation"
	"github.com/inodb/strdensity/internal/bed"
)

// Engine computes per-gene STR densities.
//
// Overlap policy: for every region kind (gene, exon, intron) the engine
// selects STRs by strict containment (exclusive left boundary, inclusive
// right) and accumulates the raw end-start difference of each selected
// STR. This reproduces the established behavior of the pipeline this
// tool replaces; it is not the bounded-overlap length that OverlapLength
// computes.
type Engine struct {
	logger  *zap.Logger
	workers int
}

// NewEngine creates an engine with no-op logging and default worker count.
func NewEngine() *Engine {
	return &Engine{logger: zap.NewNop()}
}

// SetLogger sets the logger used for per-chromosome progress reporting.
func (e *Engine) SetLogger(l *zap.Logger) {
	e.logger = l
}

// SetWorkers sets the number of per-gene workers. 0 means NumCPU.
func (e *Engine) SetWorkers(n int) {
	e.workers = n
}

// Run computes one GeneResult per gene. Results are ordered by
// chromosome first appearance among the gene records, then by gene
// order within the chromosome, regardless of worker scheduling.
func (e *Engine) Run(genes []*annotation.Gene, exons []*annotation.Exon, strs []*bed.STR) []*GeneResult {
	p := partitionRecords(genes, exons, strs)

	items := make(chan workItem, 64)
	go func() {
		defer close(items)
		seq := 0
		for _, chrom := range p.order {
			for _, g := range p.genes[chrom] {
				items <- workItem{
					seq:   seq,
					gene:  g,
					exons: p.exons[chrom],
					strs:  p.strs[chrom],
				}
				seq++
			}
		}
	}()

	results := e.parallelCompute(items, e.workers)

	out := make([]*GeneResult, 0, len(genes))
	curChrom := ""
	chromGenes := 0
	orderedCollect(results, func(r workResult) {
		if r.chrom != curChrom {
			if curChrom != "" {
				e.logger.Info("processed chromosome",
					zap.String("chrom", curChrom),
					zap.Int("genes", chromGenes))
			}
			curChrom = r.chrom
			chromGenes = 0
		}
		chromGenes++
		out = append(out, r.result)
	})
	if curChrom != "" {
		e.logger.Info("processed chromosome",
			zap.String("chrom", curChrom),
			zap.Int("genes", chromGenes))
	}

	return out
}

// computeGene produces the density result for a single gene against its
// chromosome's exon and STR records. Total contract: every well-formed
// input yields a result, degenerate inputs degrade to zeros.
func computeGene(gene *annotation.Gene, exons []*annotation.Exon, strs []*bed.STR) *GeneResult {
	geneIv := Interval{Start: gene.Start, End: gene.End}

	res := &GeneResult{
		GeneID:   gene.ID,
		GeneName: gene.Name,
		STRTypes: make(map[string]int),
	}

	// Gene region: strictly contained STRs, typed histogram
	for _, s := range strs {
		if ContainsStrict(geneIv, Interval{Start: s.Start, End: s.End}) {
			res.TotalGeneOverlap += s.End - s.Start
			res.STRTypes[s.RepeatType]++
		}
	}
	res.GeneDensity = density(res.TotalGeneOverlap, geneIv.Length())

	// Exons belong to the gene by inclusive coordinate containment;
	// there is no stored parent reference in the source data.
	var exonIvs []Interval
	for _, ex := range exons {
		iv := Interval{Start: ex.Start, End: ex.End}
		if containsInclusive(geneIv, iv) {
			exonIvs = append(exonIvs, iv)
		}
	}
	sort.Slice(exonIvs, func(i, j int) bool {
		return exonIvs[i].Start < exonIvs[j].Start
	})

	var totalExonLen int64
	for _, iv := range exonIvs {
		totalExonLen += iv.Length()
		res.TotalExonOverlap += regionOverlap(iv, strs)
	}
	res.ExonDensity = density(res.TotalExonOverlap, totalExonLen)

	// Introns are the interior gaps between consecutive exons
	var totalIntronLen int64
	for _, iv := range deriveIntrons(exonIvs) {
		totalIntronLen += iv.Length()
		res.TotalIntronOverlap += regionOverlap(iv, strs)
	}
	res.IntronDensity = density(res.TotalIntronOverlap, totalIntronLen)

	return res
}

// regionOverlap sums end-start over the STRs strictly contained in the
// region interval.
func regionOverlap(region Interval, strs []*bed.STR) int64 {
	var total int64
	for _, s := range strs {
		if ContainsStrict(region, Interval{Start: s.Start, End: s.End}) {
			total += s.End - s.Start
		}
	}
	return total
}
