package ramify

import (
	"context"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/tree"
)

/*
KernelGrower is the growth strategy for kernel-weighted
classification trees, where leaf statistics are interpreted as a
kernel over the training samples instead of plain class counts.

The strategy is not implemented: it is declared so that callers reach
a clear "not implemented" failure instead of silently growing a plain
classification tree with the wrong semantics.
*/
type KernelGrower struct {
	// Grower holds the growth parameters the kernel-weighted
	// variant shares with plain classification growth.
	Grower
}

/*
Grow always returns ErrNotImplemented.
*/
func (kg *KernelGrower) Grow(ctx context.Context, s dataset.Set) (*tree.Tree, error) {
	return nil, ErrNotImplemented
}
