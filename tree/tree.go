package tree

import (
	"fmt"
	"strings"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/feature"
)

/*
Tree represents a grown classification tree. It is composed of the
root Node of the tree, the fixed ordering of the class labels its
nodes' class counts are aligned to, and the features its split rules
index into.
*/
type Tree struct {
	Root     *Node
	Classes  []string
	Features []*feature.Feature
}

/*
New takes a root Node, a class ordering and a slice of features and
returns a tree composed of the nodes reachable from the given root
that predicts a class among the given ones.
*/
func New(root *Node, classes []string, features []*feature.Feature) *Tree {
	return &Tree{root, classes, features}
}

/*
Predict takes a feature vector aligned to the tree's features and
returns a prediction according to the tree, or an error if the
prediction cannot be made.
*/
func (t *Tree) Predict(x []feature.Value) (*Prediction, error) {
	if t == nil || t.Root == nil {
		return nil, fmt.Errorf("nil tree cannot predict samples")
	}
	leaf := t.Root.Traverse(x)
	return NewPrediction(t.Classes, leaf.ClassCounts)
}

/*
Test takes a dataset.Set and returns three values:
  - the prediction success rate of the tree over the given set
  - the number of samples for which no prediction could be made
    because of ErrCannotPredict errors
  - an error if a prediction could not be made for reasons other than
    the tree not being able to do so. If this is not nil, the other
    values will be 0.0 and 0 respectively.
*/
func (t *Tree) Test(s dataset.Set) (float64, int, error) {
	if t == nil {
		return 0.0, 0, nil
	}
	var result float64
	var errCount int
	for i := 0; i < s.Count(); i++ {
		p, err := t.Predict(s.Row(i))
		if err != nil {
			if err != ErrCannotPredict {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		pv, _ := p.PredictedValue()
		if pv == s.Label(i) {
			result += 1.0
		}
	}
	return result / float64(s.Count()), errCount, nil
}

/*
Walk takes a bottomup boolean and an error-returning function on a
node, and goes through the tree running the function with every node.
Walk will call the function with a parent node before calling it for
its children if bottomup is false, and after its children if bottomup
is true. If a call to the function returns an error, the walk is
aborted and the error is returned.
*/
func (t *Tree) Walk(bottomup bool, f func(*Node) error) error {
	return walk(t.Root, bottomup, f)
}

func walk(n *Node, bottomup bool, f func(*Node) error) error {
	if n == nil {
		return nil
	}
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	left, right := n.Branches()
	if err := walk(left, bottomup, f); err != nil {
		return err
	}
	if err := walk(right, bottomup, f); err != nil {
		return err
	}
	if bottomup {
		return f(n)
	}
	return nil
}

func (t *Tree) String() string {
	return t.subtreeString(t.Root)
}

func (t *Tree) subtreeString(n *Node) string {
	result := fmt.Sprintf("[%s]\n", n.Name)
	if !n.Leaf() {
		result = fmt.Sprintf("%s{ %s %v }\n", result, t.splitFeatureName(n), n.Rule)
	}
	if p, err := NewPrediction(t.Classes, n.ClassCounts); err == nil {
		result = fmt.Sprintf("%s{ %v }\n", result, p)
	}
	if n.Leaf() {
		return fmt.Sprintf("%s \n", result)
	}
	result = fmt.Sprintf("%s|\n", result)
	left, right := n.Branches()
	for i, child := range []*Node{left, right} {
		for j, line := range strings.Split(t.subtreeString(child), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == 1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}

func (t *Tree) splitFeatureName(n *Node) string {
	if n.SplitFeature >= 0 && n.SplitFeature < len(t.Features) {
		return t.Features[n.SplitFeature].Name()
	}
	return fmt.Sprintf("feature %d", n.SplitFeature)
}
