package yaml

import (
	"testing"

	"github.com/jackhart/ramify/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMetadata = `
features:
  size: numeric
  age: continuous
  grade: ordinal
  color:
    - red
    - blue
`

func TestReadFeatures(t *testing.T) {
	features, err := ReadFeatures([]byte(testMetadata))
	require.NoError(t, err)
	require.Len(t, features, 4)

	byName := make(map[string]*feature.Feature)
	for _, f := range features {
		byName[f.Name()] = f
	}
	require.Contains(t, byName, "size")
	assert.Equal(t, feature.Numeric, byName["size"].Type())
	require.Contains(t, byName, "age")
	assert.Equal(t, feature.Numeric, byName["age"].Type())
	require.Contains(t, byName, "grade")
	assert.Equal(t, feature.Ordinal, byName["grade"].Type())
	require.Contains(t, byName, "color")
	assert.Equal(t, feature.Categorical, byName["color"].Type())
	assert.Equal(t, []string{"red", "blue"}, byName["color"].Categories())
}

func TestReadFeaturesErrors(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
	}{
		{"no features property", "something: else"},
		{"unknown type", "features:\n  size: complex"},
		{"invalid declaration", "features:\n  size: 42"},
		{"broken yml", "features: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFeatures([]byte(tt.metadata))
			assert.Error(t, err)
		})
	}
}

func TestReadFeaturesFromFileMissing(t *testing.T) {
	_, err := ReadFeaturesFromFile("does-not-exist.yml")
	assert.Error(t, err)
}
