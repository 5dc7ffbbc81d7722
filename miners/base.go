package miners

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/support"
)

// Base carries the parts every miner shares: the evaluator, the level table
// and the range checked, cached access to it. Concrete miners supply Grow,
// which must leave level k in the table when it returns without error. The
// levels a failed Grow created are dropped, so the next request grows them
// again.
type Base struct {
	Ev     *support.Evaluator
	Levels *Levels
	Grow   func(k int) error
}

func NewBase(ev *support.Evaluator, grow func(k int) error) *Base {
	maxK := ev.Config().MaxK
	if maxK <= 0 {
		maxK = ev.Longest()
	}
	return &Base{
		Ev:     ev,
		Levels: NewLevels(maxK),
		Grow:   grow,
	}
}

func (b *Base) Evaluator() *support.Evaluator {
	return b.Ev
}

func (b *Base) MaxK() int {
	return b.Levels.MaxK()
}

func (b *Base) Level(k int) (*Level, error) {
	if err := b.Levels.Check(k); err != nil {
		return nil, err
	}
	if !b.Levels.Has(k) {
		built := b.Levels.Built()
		if err := b.Grow(k); err != nil {
			b.Levels.Restore(built)
			return nil, err
		}
		if !b.Levels.Has(k) {
			b.Levels.Restore(built)
			return nil, errors.Errorf("miner did not produce level %d", k)
		}
	}
	return b.Levels.Level(k), nil
}

func (b *Base) FrequentK(k int) ([][]int32, error) {
	lvl, err := b.Level(k)
	if err != nil {
		return nil, err
	}
	itemsets := make([][]int32, 0, lvl.Size())
	for _, key := range lvl.Keys() {
		items, err := b.Ev.Sets.Decode(key)
		if err != nil {
			return nil, err
		}
		itemsets = append(itemsets, items)
	}
	return itemsets, nil
}

// All is every frequent itemset of every size, longest first. Ties are
// broken by comparing the item labels.
func (b *Base) All() ([][]int32, error) {
	all := make([][]int32, 0, 10)
	for k := 1; k <= b.MaxK(); k++ {
		itemsets, err := b.FrequentK(k)
		if err != nil {
			return nil, err
		}
		all = append(all, itemsets...)
	}
	labels := make(map[int32]string, b.Ev.Items.Len())
	label := func(code int32) string {
		if l, has := labels[code]; has {
			return l
		}
		l, _ := b.Ev.Items.Decode(code)
		labels[code] = l
		return l
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, c := all[i], all[j]
		if len(a) != len(c) {
			return len(a) > len(c)
		}
		for x := range a {
			if a[x] != c[x] {
				return label(a[x]) < label(c[x])
			}
		}
		return false
	})
	return all, nil
}
