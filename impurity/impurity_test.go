package impurity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGini(t *testing.T) {
	g := Gini()
	tests := []struct {
		name   string
		counts []int
		total  int
		score  float64
	}{
		{"empty distribution", nil, 0, 0.0},
		{"pure distribution", []int{7, 0}, 7, 0.0},
		{"balanced 2 classes", []int{5, 5}, 10, 0.5},
		{"balanced 4 classes", []int{2, 2, 2, 2}, 8, 0.75},
		{"unbalanced", []int{3, 1}, 4, 0.375},
		{"classes without samples", []int{4, 0, 0}, 4, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.score, g.Score(tt.counts, tt.total), 1e-9)
		})
	}
}

func TestCriterionFunc(t *testing.T) {
	var gotCounts []int
	var gotTotal int
	c := CriterionFunc(func(counts []int, total int) float64 {
		gotCounts, gotTotal = counts, total
		return 0.25
	})
	assert.Equal(t, 0.25, c.Score([]int{1, 2}, 3))
	assert.Equal(t, []int{1, 2}, gotCounts)
	assert.Equal(t, 3, gotTotal)
}
