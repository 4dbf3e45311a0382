package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedCollect(t *testing.T) {
	results := make(chan workResult, 8)

	// Deliver results out of order
	for _, seq := range []int{3, 0, 2, 1, 4} {
		results <- workResult{seq: seq, result: &GeneResult{GeneID: string(rune('A' + seq))}}
	}
	close(results)

	var got []string
	orderedCollect(results, func(r workResult) {
		got = append(got, r.result.GeneID)
	})

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, got)
}
