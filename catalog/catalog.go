package catalog

import (
	"io"
	"log/slog"
	"sync"
)

// Catalog is the embedding-facing store: one AVL tree behind a single
// exclusive lock held for the full duration of each public operation.
// Rotations briefly present an intermediate tree shape, so readers must
// never overlap an insert.
type Catalog struct {
	mu   sync.Mutex
	tree *AVLTree
	log  *slog.Logger
}

// NewCatalog constructs an empty catalog. A nil logger means slog.Default().
func NewCatalog(log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{tree: NewAVLTree(), log: log}
}

// Load replaces the catalog contents with the records read from r. On a
// failed load the partially built tree is destroyed and the catalog is
// left empty rather than half-populated.
func (c *Catalog) Load(r io.Reader) (LoadStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := NewAVLTree()
	stats, err := LoadCourses(r, fresh, c.log)
	if err != nil {
		fresh.Destroy()
		fresh = NewAVLTree()
	}
	c.tree.Destroy()
	c.tree = fresh
	return stats, err
}

// LoadFile opens path and loads it with Load.
func (c *Catalog) LoadFile(path string) (LoadStats, error) {
	tree := NewAVLTree()
	stats, err := LoadCoursesFile(path, tree, c.log)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree.Destroy()
	if err != nil {
		tree.Destroy()
		c.tree = NewAVLTree()
		return stats, err
	}
	c.tree = tree
	return stats, nil
}

// Find returns the course stored under number, normalizing the argument
// first, or nil when the course is unknown.
func (c *Catalog) Find(number string) *Course {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.Find(NormalizeCourseNumber(number))
}

// ForEach visits every course in ascending course-number order. If fn
// returns false, iteration stops early.
func (c *Catalog) ForEach(fn func(*Course) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree.ForEachAscending(fn)
}

// Len returns the number of courses currently stored.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.Size()
}

// DumpTree writes the balanced tree shape to w.
func (c *Catalog) DumpTree(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree.Dump(w)
}
