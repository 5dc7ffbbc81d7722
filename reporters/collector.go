package reporters

import (
	"github.com/timtadh/assoc/lattice"
)

type Collector struct {
	Itemsets []*lattice.Itemset
	Rules    []*lattice.Rule
}

func (c *Collector) ReportItemset(i *lattice.Itemset) error {
	c.Itemsets = append(c.Itemsets, i)
	return nil
}

func (c *Collector) ReportRule(r *lattice.Rule) error {
	c.Rules = append(c.Rules, r)
	return nil
}

func (c *Collector) Close() error {
	return nil
}
