/*
Package ramify grows binary classification trees from labeled datasets
with a CART-style greedy, impurity-minimizing split search.

Growth starts from a root node holding the class distribution of the
whole dataset and recursively partitions it: at every node the best
split over every feature column is searched, committed when it
strictly improves the node's impurity and stays below the configured
ceiling, and the two resulting children are grown in turn. Leaves keep
the class-count distributions used later to predict by traversal.
*/
package ramify

import (
	"context"
	"fmt"
	"time"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/feature"
	"github.com/jackhart/ramify/impurity"
	"github.com/jackhart/ramify/queue"
	"github.com/jackhart/ramify/tree"
)

// UnlimitedDepth is the MaxDepth value that disables the depth
// ceiling.
const UnlimitedDepth = -1

/*
Grower holds the parameters of a tree growth. The zero value is not
usable, use New to obtain a Grower with the default parameters and
adjust its fields before the first Grow or Seed call.
*/
type Grower struct {
	// Classes is the fixed ordering of class labels the class-count
	// distributions of every node are aligned to. When empty, the
	// sorted distinct labels of the first dataset seeded are
	// assigned to it.
	Classes []string
	// MinSize is the minimum number of samples a node must hold to
	// attempt a split, and the minimum number of samples either
	// resulting side must keep for the split to be committed.
	// Values below 1 behave as the default of 2.
	MinSize int
	// MaxDepth is the depth ceiling of the tree: nodes at this
	// depth are never split, so a MaxDepth of 0 keeps the root a
	// leaf. A negative value (UnlimitedDepth) disables the ceiling.
	MaxDepth int
	// MaxImpurity is the maximum acceptable impurity of a committed
	// split: a split whose weighted impurity is not strictly below
	// it is rejected.
	MaxImpurity float64
	// Criterion scores class-count distributions. It defaults to
	// the Gini index.
	Criterion impurity.Criterion
	// Candidates enumerates the candidate subsets for membership
	// splits given the distinct values of a categorical column. It
	// must be deterministic and include at least every single-value
	// subset. It defaults to feature.Subsets.
	Candidates func(values []string) [][]string
}

/*
New returns a Grower with the default growth parameters: a minimum
node size of 2, no depth ceiling, a maximum split impurity of
impurity.Max, the Gini criterion and feature.Subsets as categorical
candidate generator.
*/
func New() *Grower {
	return &Grower{
		MinSize:     2,
		MaxDepth:    UnlimitedDepth,
		MaxImpurity: impurity.Max,
		Criterion:   impurity.Gini(),
		Candidates:  feature.Subsets,
	}
}

/*
Grow takes a context and a dataset and grows a classification tree
from it, sequentially, returning the tree or an error if the dataset
is not usable or the context expires. Growth is interruptible at
whole-node boundaries: the context is checked before developing each
node.
*/
func (g *Grower) Grow(ctx context.Context, s dataset.Set) (*tree.Tree, error) {
	t, task, err := g.seed(s)
	if err != nil {
		return nil, err
	}
	if err = g.grow(ctx, task); err != nil {
		return nil, err
	}
	return t, nil
}

func (g *Grower) grow(ctx context.Context, task *queue.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tasks, err := g.BranchOut(ctx, task)
	if err != nil {
		return err
	}
	for _, st := range tasks {
		if err = g.grow(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

/*
Seed takes a context, a dataset and a queue and sets everything up so
that workers that consume from the queue afterwards grow a tree from
the training data in the dataset. Specifically it creates the root
node of the tree with the dataset's class distribution and pushes a
task to develop it on the queue. The function returns the tree that
can be grown or an error if the dataset is not usable or the task
cannot be pushed to the queue (in the amount of time allowed by the
given context).
*/
func (g *Grower) Seed(ctx context.Context, s dataset.Set, q queue.Queue) (*tree.Tree, error) {
	t, task, err := g.seed(s)
	if err != nil {
		return nil, err
	}
	if err = q.Push(ctx, task); err != nil {
		return nil, err
	}
	return t, nil
}

func (g *Grower) seed(s dataset.Set) (*tree.Tree, *queue.Task, error) {
	if s == nil {
		return nil, nil, fmt.Errorf("growing tree: no dataset given")
	}
	if g.Criterion == nil || g.Candidates == nil {
		return nil, nil, fmt.Errorf("growing tree: grower lacks an impurity criterion or a candidate generator")
	}
	classes := g.Classes
	if len(classes) == 0 {
		classes = s.Classes()
		g.Classes = classes
	}
	counts := s.ClassCounts(classes)
	root := tree.NewNode("root", counts)
	if root.NSubset != s.Count() {
		return nil, nil, fmt.Errorf("growing tree: dataset has labels outside the %d configured classes", len(classes))
	}
	task := &queue.Task{
		Node:     root,
		Set:      s,
		Impurity: g.Criterion.Score(counts, root.NSubset),
		Depth:    0,
	}
	return tree.New(root, classes, s.Features()), task, nil
}

/*
BranchOut takes a context and a task and develops the task's node:
it checks the stopping criteria, searches every feature column for the
impurity-minimizing split, and either commits the best one, attaching
a pair of children to the node and returning the tasks to develop
them, or leaves the node a leaf and returns no tasks.

The stopping criteria, checked before any search, are the node holding
fewer samples than the grower's MinSize, the node's distribution being
already pure, and the node lying at the grower's MaxDepth. A found
split is only committed when its impurity strictly improves the
node's own and is strictly below MaxImpurity; a committed split is
still discarded when either realized side would hold fewer samples
than MinSize.
*/
func (g *Grower) BranchOut(ctx context.Context, task *queue.Task) ([]*queue.Task, error) {
	if task == nil || task.Node == nil || task.Set == nil {
		return nil, fmt.Errorf("developing node: incomplete task")
	}
	n, s, t := task.Node, task.Set, task.Node.NSubset
	if t != s.Count() {
		return nil, fmt.Errorf("developing node %s: node represents %d samples but its dataset holds %d", n.Name, t, s.Count())
	}
	minSize := g.minSize()
	if t < minSize || task.Impurity == 0.0 {
		return nil, nil
	}
	if g.MaxDepth >= 0 && task.Depth >= g.MaxDepth {
		return nil, nil
	}
	classes := g.Classes
	if len(classes) == 0 {
		return nil, fmt.Errorf("developing node %s: grower has no class ordering", n.Name)
	}
	labels := make([]string, t)
	for i := 0; i < t; i++ {
		labels[i] = s.Label(i)
	}
	var best *split
	bestImpurity := task.Impurity
	for j, f := range s.Features() {
		candidate := g.bestSplit(s.Column(j), labels, f.Type(), classes)
		if candidate != nil && candidate.impurity < bestImpurity {
			candidate.feature = j
			best, bestImpurity = candidate, candidate.impurity
		}
	}
	if best == nil || bestImpurity >= g.MaxImpurity {
		return nil, nil
	}
	leftRows, rightRows := partition(s.Column(best.feature), best.rule)
	if len(leftRows) < minSize || len(rightRows) < minSize {
		return nil, nil
	}
	n.SplitFeature = best.feature
	n.Rule = best.rule
	left := tree.NewNode(fmt.Sprintf("%s_%d_l", n.Name, best.feature), best.leftCounts)
	right := tree.NewNode(fmt.Sprintf("%s_%d_r", n.Name, best.feature), best.rightCounts)
	if err := n.SetChildren(left, right); err != nil {
		n.ClearChildren()
		return nil, fmt.Errorf("developing node %s: %v", n.Name, err)
	}
	return []*queue.Task{
		{Node: left, Set: s.View(leftRows), Impurity: g.Criterion.Score(left.ClassCounts, left.NSubset), Depth: task.Depth + 1},
		{Node: right, Set: s.View(rightRows), Impurity: g.Criterion.Score(right.ClassCounts, right.NSubset), Depth: task.Depth + 1},
	}, nil
}

/*
Work takes a context, a grower, a queue and an emptyQueueSleep
duration and enters a loop in which it:
  - pulls a task from the queue,
  - branches its node out into new subnodes using BranchOut,
  - pushes the tasks for the new subnodes into the queue,
  - marks the task as completed on the queue.

If at some point no task can be pulled from the queue and the sum of
tasks running and pending on the queue is 0, the worker ends returning
nil. If no task can be pulled but the sum is not 0, then the worker
will sleep for the given emptyQueueSleep duration and then retry.

Several workers may process the same queue concurrently: tasks for
sibling subtrees share no data, and the split chosen for a node does
not depend on the order nodes are developed in, so the grown tree is
identical to the one grown sequentially.

Work will return a non-nil error if the given context times out or is
cancelled, if BranchOut returns a non-nil error or if an operation
with the given queue returns a non-nil error.
*/
func Work(ctx context.Context, g *Grower, q queue.Queue, emptyQueueSleep time.Duration) error {
	for {
		task, tctx, tcf, err := q.Pull(ctx)
		if err != nil {
			return err
		}
		if task == nil {
			r, p, err := q.Count(ctx)
			if err != nil {
				return err
			}
			if r+p == 0 {
				break
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(emptyQueueSleep):
			}
			continue
		}
		mctx, cancel := mergeCtxCancel(tctx, ctx)
		err = workTask(mctx, g, task, q)
		cancel()
		tcf()
		if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func workTask(ctx context.Context, g *Grower, task *queue.Task, q queue.Queue) error {
	defer func() {
		q.Drop(ctx, task.ID())
	}()
	tasks, err := g.BranchOut(ctx, task)
	if err != nil {
		return err
	}
	for _, st := range tasks {
		if err = q.Push(ctx, st); err != nil {
			return err
		}
	}
	return q.Complete(ctx, task.ID())
}

func mergeCtxCancel(ctx1, ctx2 context.Context) (context.Context, context.CancelFunc) {
	mctx, cancel := context.WithCancel(ctx1)
	go func() {
		select {
		case <-mctx.Done():
		case <-ctx2.Done():
			cancel()
		}
	}()
	return mctx, cancel
}

func (g *Grower) minSize() int {
	if g.MinSize < 1 {
		return 2
	}
	return g.MinSize
}

func partition(column []feature.Value, rule feature.Rule) (leftRows, rightRows []int) {
	for i, v := range column {
		if rule.Evaluate(v) == feature.Right {
			rightRows = append(rightRows, i)
		} else {
			// Left and Undecided: samples whose value cannot be
			// evaluated stay on the left branch during growth.
			leftRows = append(leftRows, i)
		}
	}
	return leftRows, rightRows
}
