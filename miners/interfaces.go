package miners

import (
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/support"
)

// A Miner finds the frequent itemsets of the transaction database held by
// its Evaluator. Itemsets are canonical code lists. Results for a level are
// computed at most once.
type Miner interface {
	Evaluator() *support.Evaluator
	MaxK() int
	FrequentK(k int) ([][]int32, error)
	All() ([][]int32, error)
}

type Reporter interface {
	ReportItemset(*lattice.Itemset) error
	ReportRule(*lattice.Rule) error
	Close() error
}
