package rules

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/support"
)

// Generator turns the frequent itemsets of a Miner into association rules.
// The rule list is computed once and then returned as is.
type Generator struct {
	miner    miners.Miner
	ev       *support.Evaluator
	rules    []*lattice.Rule
	computed bool
}

func New(miner miners.Miner) *Generator {
	return &Generator{
		miner: miner,
		ev:    miner.Evaluator(),
	}
}

// Rules tests every split of every frequent itemset with at least two
// items in both directions. A direction whose confidence meets the
// minimum confidence is a rule.
func (g *Generator) Rules() ([]*lattice.Rule, error) {
	if g.computed {
		return g.rules, nil
	}
	itemsets, err := g.miner.All()
	if err != nil {
		return nil, err
	}
	rules := make([]*lattice.Rule, 0, len(itemsets))
	for _, items := range itemsets {
		if len(items) < 2 {
			continue
		}
		err := Bipartitions(items, func(front, back []int32) error {
			for _, dir := range [][2][]int32{{front, back}, {back, front}} {
				rule, err := g.rule(items, dir[0], dir[1])
				if err != nil {
					return err
				} else if rule != nil {
					rules = append(rules, rule)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	errors.Logf("DEBUG", "%d rules from %d frequent itemsets", len(rules), len(itemsets))
	g.rules = rules
	g.computed = true
	return g.rules, nil
}

func (g *Generator) rule(union, condition, prediction []int32) (*lattice.Rule, error) {
	conf, err := g.ev.ConfidenceOf(condition, union)
	if err != nil {
		return nil, err
	}
	if conf < g.ev.Config().Confidence {
		return nil, nil
	}
	cond, err := g.ev.Decode(condition)
	if err != nil {
		return nil, err
	}
	pred, err := g.ev.Decode(prediction)
	if err != nil {
		return nil, err
	}
	return &lattice.Rule{
		Condition:  cond,
		Prediction: pred,
		Confidence: conf,
	}, nil
}

// Bipartitions calls do once for each way of splitting items into two non
// empty parts, 2^(n-1)-1 calls in all. The last item always lands in back
// and the bits of a counter pick which of the others go in front, so no
// split is produced twice. Both parts keep the relative order of items and
// are fresh slices.
func Bipartitions(items []int32, do func(front, back []int32) error) error {
	n := len(items)
	if n < 2 {
		return nil
	}
	if n > 62 {
		return errors.Errorf("cannot split an itemset of %d items", n)
	}
	splits := uint64(1)<<uint(n-1) - 1
	for mask := uint64(1); mask <= splits; mask++ {
		front := make([]int32, 0, n-1)
		back := make([]int32, 0, n-1)
		for i, item := range items {
			if i < n-1 && mask&(1<<uint(i)) != 0 {
				front = append(front, item)
			} else {
				back = append(back, item)
			}
		}
		if err := do(front, back); err != nil {
			return err
		}
	}
	return nil
}
