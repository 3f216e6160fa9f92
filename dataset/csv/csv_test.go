package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jackhart/ramify/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeatures() []*feature.Feature {
	return []*feature.Feature{
		feature.NewNumeric("size"),
		feature.NewCategorical("color", []string{"red", "blue"}),
	}
}

func TestReadSet(t *testing.T) {
	t.Run("parses samples and labels", func(t *testing.T) {
		csv := "size,color,class\n1,red,a\n2.5,blue,b\n?,?,a\n"
		s, err := ReadSet(strings.NewReader(csv), testFeatures(), "class")
		require.NoError(t, err)
		assert.Equal(t, 3, s.Count())
		assert.Equal(t, []feature.Value{feature.Num(2.5), feature.Cat("blue")}, s.Row(1))
		assert.Equal(t, "b", s.Label(1))
		assert.True(t, s.Row(2)[0].IsMissing())
		assert.True(t, s.Row(2)[1].IsMissing())
	})
	t.Run("matches columns by header name", func(t *testing.T) {
		csv := "class,color,size\na,red,1\n"
		s, err := ReadSet(strings.NewReader(csv), testFeatures(), "class")
		require.NoError(t, err)
		assert.Equal(t, []feature.Value{feature.Num(1), feature.Cat("red")}, s.Row(0))
		assert.Equal(t, "a", s.Label(0))
	})
	t.Run("rejects headers missing a feature", func(t *testing.T) {
		_, err := ReadSet(strings.NewReader("size,class\n1,a\n"), testFeatures(), "class")
		assert.Error(t, err)
	})
	t.Run("rejects headers missing the label column", func(t *testing.T) {
		_, err := ReadSet(strings.NewReader("size,color\n1,red\n"), testFeatures(), "class")
		assert.Error(t, err)
	})
	t.Run("rejects missing labels", func(t *testing.T) {
		_, err := ReadSet(strings.NewReader("size,color,class\n1,red,?\n"), testFeatures(), "class")
		assert.Error(t, err)
	})
	t.Run("rejects unparseable numbers", func(t *testing.T) {
		_, err := ReadSet(strings.NewReader("size,color,class\nbig,red,a\n"), testFeatures(), "class")
		assert.Error(t, err)
	})
	t.Run("rejects unknown categories", func(t *testing.T) {
		_, err := ReadSet(strings.NewReader("size,color,class\n1,green,a\n"), testFeatures(), "class")
		assert.Error(t, err)
	})
}

func TestReadMatrix(t *testing.T) {
	t.Run("parses unlabeled samples ignoring extra columns", func(t *testing.T) {
		csv := "id,size,color\nx1,1,red\nx2,?,blue\n"
		rows, err := ReadMatrix(strings.NewReader(csv), testFeatures())
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []feature.Value{feature.Num(1), feature.Cat("red")}, rows[0])
		assert.True(t, rows[1][0].IsMissing())
	})
	t.Run("rejects headers missing a feature", func(t *testing.T) {
		_, err := ReadMatrix(strings.NewReader("size\n1\n"), testFeatures())
		assert.Error(t, err)
	})
}

func TestWriteSet(t *testing.T) {
	csv := "size,color,class\n1,red,a\n2.5,blue,b\n?,?,a\n"
	s, err := ReadSet(strings.NewReader(csv), testFeatures(), "class")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSet(&buf, s, "class"))

	reread, err := ReadSet(&buf, testFeatures(), "class")
	require.NoError(t, err)
	require.Equal(t, s.Count(), reread.Count())
	for i := 0; i < s.Count(); i++ {
		assert.Equal(t, s.Row(i), reread.Row(i))
		assert.Equal(t, s.Label(i), reread.Label(i))
	}
}
