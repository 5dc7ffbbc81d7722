package reporters

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/miners"
)

// Unique drops itemsets and rules whose name it has already passed on.
type Unique struct {
	fmtr     lattice.Formatter
	Seen     *set.SortedSet
	Reporter miners.Reporter
	dropped  int
}

func NewUnique(fmtr lattice.Formatter, reporter miners.Reporter) (*Unique, error) {
	u := &Unique{
		fmtr:     fmtr,
		Seen:     set.NewSortedSet(100),
		Reporter: reporter,
	}
	return u, nil
}

func (r *Unique) first(name string) (bool, error) {
	label := types.String(name)
	if r.Seen.Has(label) {
		r.dropped++
		return false, nil
	}
	return true, r.Seen.Add(label)
}

func (r *Unique) ReportItemset(i *lattice.Itemset) error {
	if first, err := r.first("itemset " + r.fmtr.ItemsetName(i)); err != nil {
		return err
	} else if first {
		return r.Reporter.ReportItemset(i)
	}
	return nil
}

func (r *Unique) ReportRule(rule *lattice.Rule) error {
	if first, err := r.first("rule " + r.fmtr.RuleName(rule)); err != nil {
		return err
	} else if first {
		return r.Reporter.ReportRule(rule)
	}
	return nil
}

func (r *Unique) Close() error {
	if r.dropped > 0 {
		errors.Logf("INFO", "unique dropped %d duplicates", r.dropped)
	}
	return r.Reporter.Close()
}
