package ramify

import (
	"context"

	"github.com/jackhart/ramify/tree"
)

// GrowError represents an error related with the growth of a tree.
type GrowError string

func (ge GrowError) Error() string {
	return string(ge)
}

/*
ErrNotImplemented is the error returned by operations that are
declared but deliberately not implemented, such as post-pruning and
kernel-weighted growth. Callers must treat it as fatal: these
operations never partially succeed.
*/
const ErrNotImplemented = GrowError("not implemented")

/*
Prune applies a post-pruning pass to a grown tree, collapsing
subtrees whose removal does not degrade the tree.

Post-pruning is not implemented: Prune always returns
ErrNotImplemented without touching the tree.
*/
func (g *Grower) Prune(ctx context.Context, t *tree.Tree) error {
	return ErrNotImplemented
}
