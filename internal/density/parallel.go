package density

import (
	"runtime"
	"sync"

	"github.com/inodb/strdensity/internal/annotation"
	"github.com/inodb/strdensity/internal/bed"
)

// workItem holds one gene plus its chromosome's exon and STR subsets.
type workItem struct {
	seq   int
	gene  *annotation.Gene
	exons []*annotation.Exon
	strs  []*bed.STR
}

// workResult holds the computed density result for a single gene.
type workResult struct {
	seq    int
	chrom  string
	result *GeneResult
}

// parallelCompute computes work items using a pool of workers. Results
// arrive on the returned channel in completion order (not sequence
// order); use orderedCollect to consume them in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
func (e *Engine) parallelCompute(items <-chan workItem, workers int) <-chan workResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan workResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- workResult{
					seq:    item.seq,
					chrom:  item.gene.Chrom,
					result: computeGene(item.gene, item.exons, item.strs),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// orderedCollect calls fn for each result in sequence-number order.
// Out-of-order results are buffered in a pending map and emitted as
// soon as the next expected sequence number is available. Blocks until
// the results channel is closed.
func orderedCollect(results <-chan workResult, fn func(workResult)) {
	pending := make(map[int]workResult)
	nextSeq := 0

	for r := range results {
		pending[r.seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			fn(rr)
		}
	}
}
