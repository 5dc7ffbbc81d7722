package brute

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/support"
)

// Miner enumerates every k sized subset of every transaction and keeps
// the frequent ones. It is exponential in the transaction length and is
// the baseline the other miners are checked against.
type Miner struct {
	*miners.Base
}

func NewMiner(ev *support.Evaluator) *Miner {
	m := &Miner{}
	m.Base = miners.NewBase(ev, m.grow)
	return m
}

func (m *Miner) grow(k int) error {
	lvl := m.Levels.Level(k)
	candidates := 0
	for _, tx := range m.Ev.Transactions() {
		err := miners.Combinations(tx, k, func(items []int32) error {
			candidates++
			count, err := m.Ev.Count(items)
			if err != nil {
				return err
			}
			if m.Ev.Frequent(count) {
				lvl.Add(m.Ev.Sets.Encode(items))
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	errors.Logf("DEBUG", "brute k=%d candidates %d frequent %d", k, candidates, lvl.Size())
	return nil
}
