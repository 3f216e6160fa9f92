package tree

import (
	"testing"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) *Tree {
	t.Helper()
	root := NewNode("root", []int{3, 3})
	root.SplitFeature = 0
	root.Rule = feature.Threshold{Value: 3}
	left, right := NewNode("root_0_l", []int{3, 0}), NewNode("root_0_r", []int{0, 3})
	require.NoError(t, root.SetChildren(left, right))
	return New(root, []string{"a", "b"}, []*feature.Feature{feature.NewNumeric("size")})
}

func TestPredict(t *testing.T) {
	tr := testTree(t)
	t.Run("predicts the class of the routed leaf", func(t *testing.T) {
		p, err := tr.Predict([]feature.Value{feature.Num(7)})
		require.NoError(t, err)
		class, prob := p.PredictedValue()
		assert.Equal(t, "b", class)
		assert.Equal(t, 1.0, prob)
	})
	t.Run("predicts from internal nodes on missing values", func(t *testing.T) {
		p, err := tr.Predict([]feature.Value{feature.Missing()})
		require.NoError(t, err)
		assert.Equal(t, 6, p.Weight())
		assert.InDelta(t, 0.5, p.ProbabilityOf("a"), 1e-9)
	})
	t.Run("fails on leaves without samples", func(t *testing.T) {
		empty := New(NewNode("root", []int{0, 0}), []string{"a", "b"}, nil)
		_, err := empty.Predict(nil)
		assert.Equal(t, ErrCannotPredict, err)
	})
}

func TestTest(t *testing.T) {
	tr := testTree(t)
	features := []*feature.Feature{feature.NewNumeric("size")}
	s, err := dataset.New(features, [][]feature.Value{
		{feature.Num(1)},
		{feature.Num(2)},
		{feature.Num(7)},
		{feature.Num(8)},
	}, []string{"a", "b", "b", "b"})
	require.NoError(t, err)
	successRate, errCount, err := tr.Test(s)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, successRate, 1e-9)
	assert.Equal(t, 0, errCount)
}

func TestWalk(t *testing.T) {
	tr := testTree(t)
	t.Run("top down visits parents first", func(t *testing.T) {
		var names []string
		require.NoError(t, tr.Walk(false, func(n *Node) error {
			names = append(names, n.Name)
			return nil
		}))
		assert.Equal(t, []string{"root", "root_0_l", "root_0_r"}, names)
	})
	t.Run("bottom up visits parents last", func(t *testing.T) {
		var names []string
		require.NoError(t, tr.Walk(true, func(n *Node) error {
			names = append(names, n.Name)
			return nil
		}))
		assert.Equal(t, []string{"root_0_l", "root_0_r", "root"}, names)
	})
}
