/*
Package json provides methods to serialize grown trees to JSON and
parse them back, including their split rules, which are encoded as a
tagged object with the rule kind and its threshold or member set.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jackhart/ramify/feature"
	"github.com/jackhart/ramify/tree"
)

type jsonTree struct {
	Classes  []string       `json:"classes"`
	Features []*jsonFeature `json:"features"`
	Root     *jsonNode      `json:"root"`
}

type jsonFeature struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Categories []string `json:"categories,omitempty"`
}

type jsonNode struct {
	Name         string    `json:"name,omitempty"`
	ClassCounts  []int     `json:"counts"`
	SplitFeature int       `json:"feature,omitempty"`
	Rule         *jsonRule `json:"rule,omitempty"`
	Left         *jsonNode `json:"left,omitempty"`
	Right        *jsonNode `json:"right,omitempty"`
}

type jsonRule struct {
	Kind      string   `json:"kind"`
	Threshold float64  `json:"threshold,omitempty"`
	Members   []string `json:"members,omitempty"`
}

const (
	thresholdRuleKind  = "threshold"
	membershipRuleKind = "membership"
)

/*
WriteTree takes an io.Writer and a tree and writes the tree to the
writer encoded as JSON, returning an error if the tree cannot be
encoded or written.
*/
func WriteTree(w io.Writer, t *tree.Tree) error {
	jt, err := marshalableTree(t)
	if err != nil {
		return fmt.Errorf("encoding tree: %v", err)
	}
	if err = json.NewEncoder(w).Encode(jt); err != nil {
		return fmt.Errorf("encoding tree: %v", err)
	}
	return nil
}

/*
ReadTree takes an io.Reader with a JSON-encoded tree and returns the
tree parsed from it or an error.
*/
func ReadTree(r io.Reader) (*tree.Tree, error) {
	jt := &jsonTree{}
	if err := json.NewDecoder(r).Decode(jt); err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	return unmarshalTree(jt)
}

/*
EncodeNode takes a *tree.Node and returns a slice of bytes with the
node and its subtree encoded as JSON or an error if the encoding could
not be performed.
*/
func EncodeNode(n *tree.Node) ([]byte, error) {
	return json.Marshal(marshalableNode(n))
}

/*
DecodeNode receives a slice of bytes and returns a *tree.Node decoded
from it or an error if the decoding could not be performed.
*/
func DecodeNode(data []byte) (*tree.Node, error) {
	jn := &jsonNode{}
	if err := json.Unmarshal(data, jn); err != nil {
		return nil, err
	}
	return unmarshalNode(jn)
}

func marshalableTree(t *tree.Tree) (*jsonTree, error) {
	jt := &jsonTree{Classes: t.Classes, Root: marshalableNode(t.Root)}
	for _, f := range t.Features {
		jf := &jsonFeature{Name: f.Name(), Type: f.Type().String(), Categories: f.Categories()}
		jt.Features = append(jt.Features, jf)
	}
	return jt, nil
}

func marshalableNode(n *tree.Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{
		Name:        n.Name,
		ClassCounts: n.ClassCounts,
	}
	if !n.Leaf() {
		jn.SplitFeature = n.SplitFeature
		jn.Rule = marshalableRule(n.Rule)
		left, right := n.Branches()
		jn.Left = marshalableNode(left)
		jn.Right = marshalableNode(right)
	}
	return jn
}

func marshalableRule(r feature.Rule) *jsonRule {
	switch rule := r.(type) {
	case feature.Threshold:
		return &jsonRule{Kind: thresholdRuleKind, Threshold: rule.Value}
	case feature.Membership:
		return &jsonRule{Kind: membershipRuleKind, Members: rule.Members}
	}
	return nil
}

func unmarshalTree(jt *jsonTree) (*tree.Tree, error) {
	features := make([]*feature.Feature, 0, len(jt.Features))
	for _, jf := range jt.Features {
		switch jf.Type {
		case feature.Numeric.String():
			features = append(features, feature.NewNumeric(jf.Name))
		case feature.Ordinal.String():
			features = append(features, feature.NewOrdinal(jf.Name))
		case feature.Categorical.String():
			features = append(features, feature.NewCategorical(jf.Name, jf.Categories))
		default:
			return nil, fmt.Errorf("decoding tree: feature %s has unknown type %q", jf.Name, jf.Type)
		}
	}
	root, err := unmarshalNode(jt.Root)
	if err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	return tree.New(root, jt.Classes, features), nil
}

func unmarshalNode(jn *jsonNode) (*tree.Node, error) {
	if jn == nil {
		return nil, nil
	}
	n := tree.NewNode(jn.Name, jn.ClassCounts)
	if jn.Rule == nil {
		if jn.Left != nil || jn.Right != nil {
			return nil, fmt.Errorf("node %s has children but no split rule", jn.Name)
		}
		return n, nil
	}
	if jn.Left == nil || jn.Right == nil {
		return nil, fmt.Errorf("node %s has a split rule but lacks a pair of children", jn.Name)
	}
	n.SplitFeature = jn.SplitFeature
	switch jn.Rule.Kind {
	case thresholdRuleKind:
		n.Rule = feature.Threshold{Value: jn.Rule.Threshold}
	case membershipRuleKind:
		n.Rule = feature.Membership{Members: jn.Rule.Members}
	default:
		return nil, fmt.Errorf("node %s has unknown rule kind %q", jn.Name, jn.Rule.Kind)
	}
	left, err := unmarshalNode(jn.Left)
	if err != nil {
		return nil, err
	}
	right, err := unmarshalNode(jn.Right)
	if err != nil {
		return nil, err
	}
	if err = n.SetChildren(left, right); err != nil {
		return nil, err
	}
	return n, nil
}
