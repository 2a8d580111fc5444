package catalog

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Dump renders the tree shape with one branch per node, labelled
// "key (h=height)". The left child is added first, so siblings read in
// key order.
func (t *AVLTree) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	tp := treeprint.NewWithRoot(nodeLabel(t.root))
	addBranches(tp, t.root)
	fmt.Fprint(w, tp.String())
}

func nodeLabel(n *avlNode) string {
	return fmt.Sprintf("%s (h=%d)", n.key, n.height)
}

func addBranches(tp treeprint.Tree, n *avlNode) {
	if n.left != nil {
		addBranches(tp.AddBranch(nodeLabel(n.left)), n.left)
	}
	if n.right != nil {
		addBranches(tp.AddBranch(nodeLabel(n.right)), n.right)
	}
}
