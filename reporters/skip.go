package reporters

import (
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/miners"
)

// Skip passes on every n-th itemset and every n-th rule.
type Skip struct {
	Skip     int
	Reporter miners.Reporter
	itemsets int
	rules    int
}

func NewSkip(n int, rptr miners.Reporter) *Skip {
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) ReportItemset(i *lattice.Itemset) error {
	r.itemsets++
	if r.itemsets%r.Skip == 0 {
		return r.Reporter.ReportItemset(i)
	}
	return nil
}

func (r *Skip) ReportRule(rule *lattice.Rule) error {
	r.rules++
	if r.rules%r.Skip == 0 {
		return r.Reporter.ReportRule(rule)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
