package apriori

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/support"
)

// Miner grows level k by joining pairs of frequent (k-1)-itemsets which
// share k-2 items. Only itemsets built from frequent itemsets are ever
// counted.
type Miner struct {
	*miners.Base
}

func NewMiner(ev *support.Evaluator) *Miner {
	m := &Miner{}
	m.Base = miners.NewBase(ev, m.grow)
	return m
}

func (m *Miner) grow(k int) error {
	if k == 1 {
		return m.singletons()
	}
	prev, err := m.Level(k - 1)
	if err != nil {
		return err
	}
	parents, err := m.FrequentK(k - 1)
	if err != nil {
		return err
	}
	lvl := m.Levels.Level(k)
	tried := make(map[int32]bool)
	candidates := 0
	for i := 0; i < len(parents)-1; i++ {
		for j := i + 1; j < len(parents); j++ {
			if shared(parents[i], parents[j]) != k-2 {
				continue
			}
			candidate := join(parents[i], parents[j])
			key := m.Ev.Sets.Encode(candidate)
			if tried[key] {
				continue
			}
			tried[key] = true
			if !m.closed(prev, candidate) {
				continue
			}
			candidates++
			count, err := m.Ev.Count(candidate)
			if err != nil {
				return err
			}
			if m.Ev.Frequent(count) {
				lvl.Add(key)
			}
		}
	}
	errors.Logf("DEBUG", "apriori k=%d candidates %d frequent %d", k, candidates, lvl.Size())
	return nil
}

func (m *Miner) singletons() error {
	lvl := m.Levels.Level(1)
	for _, tx := range m.Ev.Transactions() {
		for _, item := range tx {
			items := []int32{item}
			count, err := m.Ev.Count(items)
			if err != nil {
				return err
			}
			if m.Ev.Frequent(count) {
				lvl.Add(m.Ev.Sets.Encode(items))
			}
		}
	}
	return nil
}

// closed checks that every (k-1)-subset of the candidate is frequent. A
// candidate failing this cannot be frequent.
func (m *Miner) closed(prev *miners.Level, candidate []int32) bool {
	sub := make([]int32, 0, len(candidate)-1)
	for skip := range candidate {
		sub = sub[:0]
		for i, item := range candidate {
			if i != skip {
				sub = append(sub, item)
			}
		}
		key, has := m.Ev.Sets.Lookup(sub)
		if !has || !prev.Has(key) {
			return false
		}
	}
	return true
}

// shared counts the items two sorted itemsets have in common.
func shared(a, b []int32) int {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] == b[j] {
			count++
			i++
			j++
		} else if a[i] < b[j] {
			i++
		} else {
			j++
		}
	}
	return count
}

// join is the sorted union of two sorted itemsets.
func join(a, b []int32) []int32 {
	u := make([]int32, 0, len(a)+1)
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if j >= len(b) || (i < len(a) && a[i] < b[j]) {
			u = append(u, a[i])
			i++
		} else if i >= len(a) || b[j] < a[i] {
			u = append(u, b[j])
			j++
		} else {
			u = append(u, a[i])
			i++
			j++
		}
	}
	return u
}
