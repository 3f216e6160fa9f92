/*
Package redisstore provides persistence of grown trees on a redis
database. Every node is kept under its own key, identified by its
path from the root, so that subtrees can be loaded without parsing
one monolithic document.
*/
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackhart/ramify/feature"
	"github.com/jackhart/ramify/tree"
	redis "gopkg.in/redis.v5"
)

/*
Store persists trees on a redis database, prefixing every key it uses
with a configurable prefix so that multiple trees can share a
database.
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

type metaRecord struct {
	Classes  []string        `json:"classes"`
	Features []featureRecord `json:"features"`
}

type featureRecord struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Categories []string `json:"categories,omitempty"`
}

type nodeRecord struct {
	Name      string   `json:"name,omitempty"`
	Counts    []int    `json:"counts"`
	Feature   int      `json:"feature,omitempty"`
	RuleKind  string   `json:"kind,omitempty"`
	Threshold float64  `json:"threshold,omitempty"`
	Members   []string `json:"members,omitempty"`
}

const (
	thresholdRuleKind  = "threshold"
	membershipRuleKind = "membership"
)

/*
New takes a redis client and a key prefix and returns a Store that
keeps trees on the redis database behind the client, under the
following keys:
  - prefix:meta holds the class ordering and the features of the tree
  - prefix:node:PATH holds one node, where PATH is the sequence of l/r
    branch choices leading to the node from the root (empty for the
    root itself)
*/
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
Save takes a context and a tree and writes the whole tree to redis,
replacing any tree previously saved under the store's prefix. It
returns an error if a node cannot be encoded or written, or if the
context expires midway.
*/
func (s *Store) Save(ctx context.Context, t *tree.Tree) error {
	meta := metaRecord{Classes: t.Classes}
	for _, f := range t.Features {
		meta.Features = append(meta.Features, featureRecord{Name: f.Name(), Type: f.Type().String(), Categories: f.Categories()})
	}
	data, err := json.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("saving tree metadata: %v", err)
	}
	if err = s.rc.Set(s.metaKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("saving tree metadata: %v", err)
	}
	return s.saveNode(ctx, t.Root, "")
}

func (s *Store) saveNode(ctx context.Context, n *tree.Node, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	record := nodeRecord{Name: n.Name, Counts: n.ClassCounts}
	if !n.Leaf() {
		record.Feature = n.SplitFeature
		switch rule := n.Rule.(type) {
		case feature.Threshold:
			record.RuleKind = thresholdRuleKind
			record.Threshold = rule.Value
		case feature.Membership:
			record.RuleKind = membershipRuleKind
			record.Members = rule.Members
		default:
			return fmt.Errorf("saving node %q: unsupported rule type %T", path, n.Rule)
		}
	}
	data, err := json.Marshal(&record)
	if err != nil {
		return fmt.Errorf("saving node %q: encoding node: %v", path, err)
	}
	if err = s.rc.Set(s.nodeKey(path), data, 0).Err(); err != nil {
		return fmt.Errorf("saving node %q in redis: %v", path, err)
	}
	if n.Leaf() {
		return nil
	}
	left, right := n.Branches()
	if err = s.saveNode(ctx, left, path+"l"); err != nil {
		return err
	}
	return s.saveNode(ctx, right, path+"r")
}

/*
Load takes a context and reads back the tree saved under the store's
prefix, or returns an error if no tree is saved there or a node cannot
be retrieved or decoded.
*/
func (s *Store) Load(ctx context.Context) (*tree.Tree, error) {
	data, err := s.rc.Get(s.metaKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("retrieving tree metadata: %v", err)
	}
	meta := metaRecord{}
	if err = json.Unmarshal([]byte(data), &meta); err != nil {
		return nil, fmt.Errorf("decoding tree metadata: %v", err)
	}
	features := make([]*feature.Feature, 0, len(meta.Features))
	for _, fr := range meta.Features {
		switch fr.Type {
		case feature.Numeric.String():
			features = append(features, feature.NewNumeric(fr.Name))
		case feature.Ordinal.String():
			features = append(features, feature.NewOrdinal(fr.Name))
		case feature.Categorical.String():
			features = append(features, feature.NewCategorical(fr.Name, fr.Categories))
		default:
			return nil, fmt.Errorf("decoding tree metadata: feature %s has unknown type %q", fr.Name, fr.Type)
		}
	}
	root, err := s.loadNode(ctx, "")
	if err != nil {
		return nil, err
	}
	return tree.New(root, meta.Classes, features), nil
}

func (s *Store) loadNode(ctx context.Context, path string) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.rc.Get(s.nodeKey(path)).Result()
	if err != nil {
		return nil, fmt.Errorf("retrieving node %q: %v", path, err)
	}
	record := nodeRecord{}
	if err = json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("retrieving node %q: decoding %q: %v", path, data, err)
	}
	n := tree.NewNode(record.Name, record.Counts)
	if record.RuleKind == "" {
		return n, nil
	}
	n.SplitFeature = record.Feature
	switch record.RuleKind {
	case thresholdRuleKind:
		n.Rule = feature.Threshold{Value: record.Threshold}
	case membershipRuleKind:
		n.Rule = feature.Membership{Members: record.Members}
	default:
		return nil, fmt.Errorf("retrieving node %q: unknown rule kind %q", path, record.RuleKind)
	}
	left, err := s.loadNode(ctx, path+"l")
	if err != nil {
		return nil, err
	}
	right, err := s.loadNode(ctx, path+"r")
	if err != nil {
		return nil, err
	}
	if err = n.SetChildren(left, right); err != nil {
		return nil, fmt.Errorf("retrieving node %q: %v", path, err)
	}
	return n, nil
}

/*
Delete removes the tree saved under the store's prefix from redis. It
is not an error to delete a store with no saved tree.
*/
func (s *Store) Delete(ctx context.Context) error {
	var cursor uint64
	pattern := fmt.Sprintf("%s:*", s.prefix)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		keys, next, err := s.rc.Scan(cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("scanning tree keys: %v", err)
		}
		if len(keys) > 0 {
			if err = s.rc.Del(keys...).Err(); err != nil {
				return fmt.Errorf("deleting tree keys: %v", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (s *Store) metaKey() string {
	return fmt.Sprintf("%s:meta", s.prefix)
}

func (s *Store) nodeKey(path string) string {
	return fmt.Sprintf("%s:node:%s", s.prefix, path)
}
