package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKinds(t *testing.T) {
	n := Num(1.5)
	assert.False(t, n.IsMissing())
	number, ok := n.Number()
	assert.True(t, ok)
	assert.Equal(t, 1.5, number)
	_, ok = n.Category()
	assert.False(t, ok)

	c := Cat("red")
	assert.False(t, c.IsMissing())
	category, ok := c.Category()
	assert.True(t, ok)
	assert.Equal(t, "red", category)
	_, ok = c.Number()
	assert.False(t, ok)

	m := Missing()
	assert.True(t, m.IsMissing())
	_, ok = m.Number()
	assert.False(t, ok)
	_, ok = m.Category()
	assert.False(t, ok)
	assert.Equal(t, "?", m.String())
}

func TestZeroValueIsMissing(t *testing.T) {
	var v Value
	assert.True(t, v.IsMissing())
}

func TestFeatureValid(t *testing.T) {
	tests := []struct {
		name    string
		feature *Feature
		value   Value
		valid   bool
	}{
		{"numeric accepts numbers", NewNumeric("size"), Num(2), true},
		{"numeric accepts missing", NewNumeric("size"), Missing(), true},
		{"numeric rejects categories", NewNumeric("size"), Cat("big"), false},
		{"ordinal accepts numbers", NewOrdinal("grade"), Num(3), true},
		{"ordinal rejects categories", NewOrdinal("grade"), Cat("high"), false},
		{"categorical accepts known categories", NewCategorical("color", []string{"red", "blue"}), Cat("blue"), true},
		{"categorical accepts missing", NewCategorical("color", []string{"red", "blue"}), Missing(), true},
		{"categorical rejects unknown categories", NewCategorical("color", []string{"red", "blue"}), Cat("green"), false},
		{"categorical rejects numbers", NewCategorical("color", []string{"red", "blue"}), Num(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := tt.feature.Valid(tt.value)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFeatureAccessors(t *testing.T) {
	f := NewCategorical("color", []string{"red", "blue"})
	assert.Equal(t, "color", f.Name())
	assert.Equal(t, Categorical, f.Type())
	assert.Equal(t, []string{"red", "blue"}, f.Categories())
	assert.Nil(t, NewNumeric("size").Categories())
}
