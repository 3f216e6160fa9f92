package queue

import (
	"fmt"

	"github.com/jackhart/ramify/dataset"
	"github.com/jackhart/ramify/tree"
)

// Task represents a tree.Node to be developed
// during the growth of a tree.
type Task struct {
	// The node to be developed
	Node *tree.Node
	// The view of the training data with the
	// samples represented by the node
	Set dataset.Set
	// The impurity of the node's own class
	// distribution, the score a split must
	// strictly improve on
	Impurity float64
	// The depth of the node in the tree, 0 for
	// the root
	Depth int
}

// ID returns a string that identifies the
// task, the name of its Node. Node names encode
// the path from the root so they are unique
// within a tree.
func (t *Task) ID() string {
	return t.Node.Name
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %s}", t.ID())
}
