package fpgrowth

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/encoding"
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/support"
)

// Miner builds one prefix tree over the transactions, filtered to
// frequent items and ordered by descending item support. Every level is
// then filled in a single pass over the header chains: each node adds its
// count to every itemset made of its item and a subset of its ancestors.
//
// This does not build conditional trees. It finds the same itemsets since
// an itemset is counted exactly once per transaction, at the node of its
// last item in tree order.
type Miner struct {
	*miners.Base
	Tree *Tree
}

func NewMiner(ev *support.Evaluator) *Miner {
	m := &Miner{}
	m.Base = miners.NewBase(ev, m.grow)
	return m
}

func (m *Miner) grow(int) error {
	if m.Tree != nil {
		return nil
	}
	for k := 1; k <= m.MaxK(); k++ {
		m.Levels.Level(k)
	}
	counts, err := m.itemCounts()
	if err != nil {
		return err
	}
	tree := NewTree()
	for _, tx := range m.Ev.Transactions() {
		if ordered := m.order(tx, counts); len(ordered) > 0 {
			tree.Insert(ordered)
		}
	}
	errors.Logf("DEBUG", "fp-tree has %d nodes over %d frequent items", tree.Nodes, len(tree.Items))
	for _, item := range tree.Items {
		if err := m.growItem(tree, item, counts[item]); err != nil {
			return err
		}
	}
	m.Tree = tree
	return nil
}

// itemCounts maps each frequent item to its support count.
func (m *Miner) itemCounts() (map[int32]int, error) {
	counts := make(map[int32]int)
	for code := 0; code < m.Ev.Items.Len(); code++ {
		count, err := m.Ev.Count([]int32{int32(code)})
		if err != nil {
			return nil, err
		}
		if m.Ev.Frequent(count) {
			counts[int32(code)] = count
		}
	}
	return counts, nil
}

// order drops the infrequent items of tx and sorts the rest by descending
// support. tx is in ascending code order and the sort is stable, so ties
// stay in code order.
func (m *Miner) order(tx []int32, counts map[int32]int) []int32 {
	ordered := make([]int32, 0, len(tx))
	for _, item := range tx {
		if _, has := counts[item]; has {
			ordered = append(ordered, item)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})
	return ordered
}

func (m *Miner) growItem(tree *Tree, item int32, count int) error {
	single := []int32{item}
	if err := m.Ev.Remember(single, count); err != nil {
		return err
	}
	m.Levels.Level(1).Add(m.Ev.Sets.Encode(single))

	keys := make([]int32, 0, 10)
	found := make(map[int32]int)
	err := tree.Chain(item, func(n *Node) error {
		ancestors := n.Ancestors()
		for size := 1; size <= len(ancestors) && size+1 <= m.MaxK(); size++ {
			err := miners.Combinations(ancestors, size, func(sub []int32) error {
				items := make([]int32, 0, size+1)
				items = append(items, sub...)
				items = append(items, item)
				key := m.Ev.Sets.Encode(encoding.Canonical(items))
				if _, has := found[key]; !has {
					keys = append(keys, key)
				}
				found[key] += n.Count
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, key := range keys {
		count := found[key]
		if !m.Ev.Frequent(count) {
			continue
		}
		items, err := m.Ev.Sets.Decode(key)
		if err != nil {
			return err
		}
		if err := m.Ev.Remember(items, count); err != nil {
			return err
		}
		m.Levels.Level(len(items)).Add(key)
	}
	return nil
}
