package catalog

// Height-balanced (AVL) search tree keyed by course number.
// - Single-writer API (caller coordinates concurrency).
// - Recursive insert returns the new subtree root; no parent links.
// - O(log n) Insert/Find; in-order iteration with early-stop callback.

type avlNode struct {
	key    string
	course *Course
	height int // subtree height; a leaf is 1, a nil child counts as 0
	left   *avlNode
	right  *avlNode
}

type AVLTree struct {
	root *avlNode
	size int
}

// NewAVLTree constructs an empty tree.
func NewAVLTree() *AVLTree {
	return &AVLTree{}
}

// Size returns the number of distinct course numbers currently stored.
func (t *AVLTree) Size() int { return t.size }

// Height returns the height of the whole tree, 0 when empty.
func (t *AVLTree) Height() int { return height(t.root) }

func height(n *avlNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor(n *avlNode) int {
	return height(n.left) - height(n.right)
}

func updateHeight(n *avlNode) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// Find returns the course stored under 'key' or nil.
func (t *AVLTree) Find(key string) *Course {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.course
		}
	}
	return nil
}

// Insert stores 'course' under 'key', rebalancing as needed. Inserting an
// existing key overwrites that node's course in place; tree shape and
// heights are untouched on that path.
func (t *AVLTree) Insert(key string, course *Course) {
	t.root = t.insert(t.root, key, course)
}

func (t *AVLTree) insert(n *avlNode, key string, course *Course) *avlNode {
	if n == nil {
		t.size++
		return &avlNode{key: key, course: course, height: 1}
	}

	switch {
	case key < n.key:
		n.left = t.insert(n.left, key, course)
	case key > n.key:
		n.right = t.insert(n.right, key, course)
	default:
		n.course = course // duplicate key: latest write wins
		return n
	}

	updateHeight(n)
	bf := balanceFactor(n)

	switch {
	case bf > 1 && key < n.left.key:
		// Left-Left
		return rotateRight(n)
	case bf < -1 && key > n.right.key:
		// Right-Right
		return rotateLeft(n)
	case bf > 1 && key > n.left.key:
		// Left-Right
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case bf < -1 && key < n.right.key:
		// Right-Left
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

/******************** Rotations ********************/

// Heights are recomputed demoted node first, promoted node second; the
// promoted node's height depends on the demoted node's new height.

func rotateRight(y *avlNode) *avlNode {
	x := y.left
	y.left = x.right
	x.right = y
	updateHeight(y)
	updateHeight(x)
	return x
}

func rotateLeft(x *avlNode) *avlNode {
	y := x.right
	x.right = y.left
	y.left = x
	updateHeight(x)
	updateHeight(y)
	return y
}

/******************** Traversal & teardown ********************/

// ForEachAscending applies fn to every course in ascending key order.
// If fn returns false, iteration stops early. Read-only and restartable;
// must not run concurrently with Insert.
func (t *AVLTree) ForEachAscending(fn func(*Course) bool) {
	ascend(t.root, fn)
}

func ascend(n *avlNode, fn func(*Course) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.course) {
		return false
	}
	return ascend(n.right, fn)
}

// Destroy unlinks every node, children before parents, then drops the
// root. Safe on an empty tree; used to discard a partially loaded
// catalog without leaving reachable nodes behind.
func (t *AVLTree) Destroy() {
	destroy(t.root)
	t.root = nil
	t.size = 0
}

func destroy(n *avlNode) {
	if n == nil {
		return
	}
	destroy(n.left)
	destroy(n.right)
	n.left, n.right = nil, nil
	n.course = nil
}
