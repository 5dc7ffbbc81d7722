package reporters

import (
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/miners"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) ReportItemset(i *lattice.Itemset) error {
	for _, rpt := range r.Reporters {
		err := rpt.ReportItemset(i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) ReportRule(rule *lattice.Rule) error {
	for _, rpt := range r.Reporters {
		err := rpt.ReportRule(rule)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
