package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpEmptyTree(t *testing.T) {
	var buf strings.Builder
	NewAVLTree().Dump(&buf)
	assert.Equal(t, "(empty)\n", buf.String())
}

func TestDumpShowsKeysAndHeights(t *testing.T) {
	tree := NewAVLTree()
	for _, k := range []string{"B", "A", "C"} {
		tree.Insert(k, course(k, k))
	}

	var buf strings.Builder
	tree.Dump(&buf)
	out := buf.String()

	assert.Contains(t, out, "B (h=2)")
	assert.Contains(t, out, "A (h=1)")
	assert.Contains(t, out, "C (h=1)")
	assert.Less(t, strings.Index(out, "A (h=1)"), strings.Index(out, "C (h=1)"),
		"left child should print before right child")
}
