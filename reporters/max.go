package reporters

import (
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/miners"
)

// Max passes on only the maximal itemsets, those with no frequent proper
// superset. It relies on itemsets arriving longest first. Rules pass
// through untouched.
type Max struct {
	Reporter miners.Reporter
	maximal  []map[string]bool
}

func NewMax(reporter miners.Reporter) (*Max, error) {
	m := &Max{
		Reporter: reporter,
		maximal:  make([]map[string]bool, 0, 10),
	}
	return m, nil
}

func (r *Max) ReportItemset(i *lattice.Itemset) error {
	for _, sup := range r.maximal {
		if len(sup) > len(i.Items) && subset(i.Items, sup) {
			return nil
		}
	}
	items := make(map[string]bool, len(i.Items))
	for _, item := range i.Items {
		items[item] = true
	}
	r.maximal = append(r.maximal, items)
	return r.Reporter.ReportItemset(i)
}

func subset(items []string, of map[string]bool) bool {
	for _, item := range items {
		if !of[item] {
			return false
		}
	}
	return true
}

func (r *Max) ReportRule(rule *lattice.Rule) error {
	return r.Reporter.ReportRule(rule)
}

func (r *Max) Close() error {
	return r.Reporter.Close()
}
