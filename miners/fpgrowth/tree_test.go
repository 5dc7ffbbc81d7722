package fpgrowth

import "testing"
import "github.com/stretchr/testify/assert"

func TestTreeInsert(x *testing.T) {
	t := assert.New(x)
	tree := NewTree()
	tree.Insert([]int32{1, 0, 2})
	tree.Insert([]int32{1, 0})
	tree.Insert([]int32{1, 2})
	tree.Insert([]int32{0, 2})
	t.Equal(6, tree.Nodes)
	t.Equal([]int32{1, 0, 2}, tree.Items)
	t.Equal(3, tree.Root.Kids[1].Count)
	t.Equal(2, tree.Root.Kids[1].Kids[0].Count)
	t.Equal(1, tree.Root.Kids[0].Count)

	counts := make([]int, 0, 3)
	paths := make([][]int32, 0, 3)
	t.Nil(tree.Chain(2, func(n *Node) error {
		counts = append(counts, n.Count)
		paths = append(paths, n.Ancestors())
		return nil
	}))
	t.Equal([]int{1, 1, 1}, counts)
	t.Equal([][]int32{{1, 0}, {1}, {0}}, paths)
}

func TestAncestorsOfTopLevel(x *testing.T) {
	t := assert.New(x)
	tree := NewTree()
	tree.Insert([]int32{4})
	t.Equal([]int32{}, tree.Heads[4].Ancestors())
	t.True(tree.Heads[4] == tree.Tails[4])
}
