package tree

import (
	"fmt"

	"github.com/jackhart/ramify/feature"
)

/*
Node is a node of a binary classification tree. A node either is a
leaf or has a split and exactly two children: there is no way to
attach a single child.
*/
type Node struct {
	// Name identifies the node for debugging and display purposes
	// only, it has no effect on the algorithm.
	Name string
	// SplitFeature is the index of the feature column whose value
	// the Rule evaluates to route samples. It is only meaningful
	// when Rule is not nil.
	SplitFeature int
	// Rule is the split predicate routing samples to the left or
	// right child. It is nil if and only if the node is a leaf.
	Rule feature.Rule
	// ClassCounts holds the number of training samples per class
	// represented by this node, over the tree's class ordering.
	ClassCounts []int
	// NSubset is the total number of training samples represented
	// by this node. It equals the sum of ClassCounts.
	NSubset int

	left  *Node
	right *Node
}

/*
NewNode takes a name and a class-count distribution and returns a leaf
node representing those counts. The total number of samples of the
node is computed as the sum of the given counts.
*/
func NewNode(name string, classCounts []int) *Node {
	var total int
	for _, c := range classCounts {
		total += c
	}
	return &Node{Name: name, ClassCounts: classCounts, NSubset: total}
}

/*
Leaf returns whether the node is a leaf, that is, whether it has no
split rule. A node without a rule never has children.
*/
func (n *Node) Leaf() bool {
	return n.Rule == nil
}

/*
Branches returns the left and right children of the node. Both are
nil for leaves.
*/
func (n *Node) Branches() (left, right *Node) {
	return n.left, n.right
}

/*
SetChildren attaches the given pair of children to the node. It
returns an error if either child is nil, if the node already has
children or if the node has no split rule set: children can only be
attached as a complete pair under a committed split.
*/
func (n *Node) SetChildren(left, right *Node) error {
	if left == nil || right == nil {
		return fmt.Errorf("node %s: children can only be attached in pairs", n.Name)
	}
	if n.left != nil || n.right != nil {
		return fmt.Errorf("node %s: children already attached", n.Name)
	}
	if n.Rule == nil {
		return fmt.Errorf("node %s: cannot attach children without a split rule", n.Name)
	}
	n.left, n.right = left, right
	return nil
}

/*
ClearChildren detaches both children of the node and clears its split
rule and feature, atomically turning it back into a leaf.
*/
func (n *Node) ClearChildren() {
	n.left, n.right = nil, nil
	n.Rule = nil
	n.SplitFeature = 0
}

/*
Traverse takes a feature vector aligned to the indexing used during
growth and returns the node of the subtree rooted at this node that
the vector is routed to. On leaves it returns the node itself;
otherwise it evaluates the split rule on the vector's value for the
split feature and descends into the selected child. When the rule
cannot decide a side, because the value is missing or incompatible
with the rule, the current node is returned as if it were a leaf.
*/
func (n *Node) Traverse(x []feature.Value) *Node {
	if n.Leaf() {
		return n
	}
	v := feature.Missing()
	if n.SplitFeature >= 0 && n.SplitFeature < len(x) {
		v = x[n.SplitFeature]
	}
	switch n.Rule.Evaluate(v) {
	case feature.Left:
		return n.left.Traverse(x)
	case feature.Right:
		return n.right.Traverse(x)
	}
	return n
}

func (n *Node) String() string {
	if n.Leaf() {
		return fmt.Sprintf("Node(name=%q, counts=%v)", n.Name, n.ClassCounts)
	}
	return fmt.Sprintf("Node(name=%q, feature=%d, rule=%v)", n.Name, n.SplitFeature, n.Rule)
}
