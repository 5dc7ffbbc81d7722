package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/lattice"
)

type Log struct {
	fmtr     lattice.Formatter
	level    string
	prefix   string
	itemsets int
	rules    int
}

func NewLog(fmtr lattice.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) ReportItemset(i *lattice.Itemset) error {
	lr.itemsets++
	return lr.log(lr.itemsets, lr.fmtr.ItemsetName(i), i.Count)
}

func (lr *Log) ReportRule(r *lattice.Rule) error {
	lr.rules++
	return lr.log(lr.rules, lr.fmtr.RuleName(r), r.Confidence)
}

func (lr *Log) log(count int, name string, value interface{}) error {
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v %v", lr.prefix, count, name, value)
	} else {
		errors.Logf(lr.level, "%v %v %v", count, name, value)
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
