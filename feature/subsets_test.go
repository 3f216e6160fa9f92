package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubsets(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected [][]string
	}{
		{"no values", nil, nil},
		{"single value", []string{"a"}, nil},
		{
			"two values keep only the one with the first value",
			[]string{"a", "b"},
			[][]string{{"a"}},
		},
		{
			"three values enumerate every single-value subset",
			[]string{"a", "b", "c"},
			[][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			"four values deduplicate complements at half size",
			[]string{"a", "b", "c", "d"},
			[][]string{
				{"a"}, {"b"}, {"c"}, {"d"},
				{"a", "b"}, {"a", "c"}, {"a", "d"},
			},
		},
		{
			"five values keep every subset up to half size",
			[]string{"a", "b", "c", "d", "e"},
			[][]string{
				{"a"}, {"b"}, {"c"}, {"d"}, {"e"},
				{"a", "b"}, {"a", "c"}, {"a", "d"}, {"a", "e"},
				{"b", "c"}, {"b", "d"}, {"b", "e"},
				{"c", "d"}, {"c", "e"}, {"d", "e"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Subsets(tt.values))
		})
	}
}

func TestSubsetsIsDeterministic(t *testing.T) {
	values := []string{"w", "x", "y", "z"}
	first := Subsets(values)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Subsets(values))
	}
}
