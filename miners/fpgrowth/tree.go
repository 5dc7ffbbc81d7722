package fpgrowth

import (
	"fmt"
)

// Node is a prefix tree node. Next threads together every node carrying
// the same item, in the order the nodes were created.
type Node struct {
	Item   int32
	Count  int
	Parent *Node
	Kids   map[int32]*Node
	Next   *Node
}

func (n *Node) String() string {
	return fmt.Sprintf("<Node %d %d>", n.Item, n.Count)
}

// Ancestors are the items on the path from the root down to (but not
// including) this node.
func (n *Node) Ancestors() []int32 {
	depth := 0
	for p := n.Parent; p != nil && p.Parent != nil; p = p.Parent {
		depth++
	}
	items := make([]int32, depth)
	for p := n.Parent; p != nil && p.Parent != nil; p = p.Parent {
		depth--
		items[depth] = p.Item
	}
	return items
}

// Tree is a prefix tree over ordered transactions with a header table of
// node chains, one chain per item.
type Tree struct {
	Root  *Node
	Heads map[int32]*Node
	Tails map[int32]*Node
	Items []int32 // header items, in order of first insertion
	Nodes int
}

func NewTree() *Tree {
	return &Tree{
		Root:  &Node{Item: -1, Kids: make(map[int32]*Node)},
		Heads: make(map[int32]*Node),
		Tails: make(map[int32]*Node),
		Items: make([]int32, 0, 10),
	}
}

// Insert walks tx down from the root, bumping the count of every node on
// the way and creating the nodes that are missing.
func (t *Tree) Insert(tx []int32) {
	cur := t.Root
	for _, item := range tx {
		kid, has := cur.Kids[item]
		if has {
			kid.Count++
		} else {
			kid = &Node{
				Item:   item,
				Count:  1,
				Parent: cur,
				Kids:   make(map[int32]*Node),
			}
			cur.Kids[item] = kid
			t.link(kid)
		}
		cur = kid
	}
}

func (t *Tree) link(n *Node) {
	t.Nodes++
	if tail, has := t.Tails[n.Item]; has {
		tail.Next = n
	} else {
		t.Heads[n.Item] = n
		t.Items = append(t.Items, n.Item)
	}
	t.Tails[n.Item] = n
}

// Chain calls do with each node carrying item.
func (t *Tree) Chain(item int32, do func(*Node) error) error {
	for n := t.Heads[item]; n != nil; n = n.Next {
		if err := do(n); err != nil {
			return err
		}
	}
	return nil
}
