package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsStrict(t *testing.T) {
	outer := Interval{Start: 100, End: 200}

	tests := []struct {
		name  string
		inner Interval
		want  bool
	}{
		{"fully inside", Interval{130, 140}, true},
		{"starts at outer start", Interval{100, 140}, false},
		{"starts one past outer start", Interval{101, 140}, true},
		{"ends at outer end", Interval{150, 200}, true},
		{"ends past outer end", Interval{150, 201}, false},
		{"entirely before", Interval{10, 20}, false},
		{"entirely after", Interval{300, 310}, false},
		{"equals outer", Interval{100, 200}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsStrict(outer, tt.inner))
		})
	}
}

func TestContainsInclusive(t *testing.T) {
	outer := Interval{Start: 100, End: 200}

	assert.True(t, containsInclusive(outer, Interval{100, 200}))
	assert.True(t, containsInclusive(outer, Interval{120, 150}))
	assert.False(t, containsInclusive(outer, Interval{99, 150}))
	assert.False(t, containsInclusive(outer, Interval{120, 201}))
}

func TestOverlapLength(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want int64
	}{
		{"partial overlap", Interval{100, 150}, Interval{130, 180}, 20},
		{"contained", Interval{100, 200}, Interval{130, 140}, 10},
		{"disjoint", Interval{100, 150}, Interval{200, 250}, 0},
		{"touching endpoints", Interval{100, 150}, Interval{150, 250}, 0},
		{"identical", Interval{100, 150}, Interval{100, 150}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapLength(tt.a, tt.b))
			// Symmetric
			assert.Equal(t, tt.want, OverlapLength(tt.b, tt.a))
		})
	}
}

func TestIntervalLength(t *testing.T) {
	assert.Equal(t, int64(101), Interval{100, 200}.Length())
	assert.Equal(t, int64(1), Interval{5, 5}.Length())
}
