package support

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/encoding"
	"github.com/timtadh/assoc/lattice"
	"github.com/timtadh/assoc/stats"
	"github.com/timtadh/assoc/stores/counts"
)

// Evaluator owns the encoded transaction database, the encoders and the
// support count cache. Every count a miner or the rule generator sees goes
// through here so the numbers do not depend on the algorithm.
//
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	config  *config.Config
	Items   *encoding.Items
	Sets    *encoding.Sets
	txs     [][]int32
	longest int
	counter Counter
	cache   counts.Store
	scans   int
}

func New(conf *config.Config, transactions [][]string) (*Evaluator, error) {
	cache, err := conf.CountStore("support-counts")
	if err != nil {
		return nil, err
	}
	items := encoding.NewItems()
	txs := items.EncodeTransactions(transactions)
	longest := 0
	lengths := make([]float64, 0, len(txs))
	for _, tx := range txs {
		if len(tx) > longest {
			longest = len(tx)
		}
		lengths = append(lengths, float64(len(tx)))
	}
	var counter Counter
	if conf.Index {
		counter = NewBitmaps(txs)
	} else {
		counter = NewScan(txs)
	}
	errors.Logf("DEBUG", "encoded %d transactions over %d distinct items (longest %d, mean %v, stddev %v)",
		len(txs), items.Len(), longest,
		stats.Round(stats.Mean(lengths), 2), stats.Round(stats.StdDev(lengths), 2))
	return &Evaluator{
		config:  conf,
		Items:   items,
		Sets:    encoding.NewSets(),
		txs:     txs,
		longest: longest,
		counter: counter,
		cache:   cache,
	}, nil
}

func (e *Evaluator) Config() *config.Config {
	return e.config
}

func (e *Evaluator) N() int {
	return len(e.txs)
}

// Longest is the size of the largest transaction after duplicate items
// are collapsed. No itemset larger than this can have nonzero support.
func (e *Evaluator) Longest() int {
	return e.longest
}

func (e *Evaluator) Transactions() [][]int32 {
	return e.txs
}

// Scans is the number of times the database has been counted against,
// ie. the number of cache misses so far.
func (e *Evaluator) Scans() int {
	return e.scans
}

func (e *Evaluator) Cached() int {
	return e.cache.Size()
}

// Count returns the support count of a canonical itemset.
func (e *Evaluator) Count(items []int32) (int, error) {
	key := e.Sets.Encode(items)
	count, has, err := e.cache.Get(key)
	if err != nil {
		return 0, err
	} else if has {
		return count, nil
	}
	count = e.counter.Count(items)
	e.scans++
	if err := e.cache.Put(key, count); err != nil {
		return 0, err
	}
	return count, nil
}

// Remember caches a count computed without scanning the database. An
// itemset that is already cached keeps its count.
func (e *Evaluator) Remember(items []int32, count int) error {
	key := e.Sets.Encode(items)
	if has, err := e.cache.Has(key); err != nil {
		return err
	} else if has {
		return nil
	}
	return e.cache.Put(key, count)
}

// Frequent reports whether a support count meets the minimum support. An
// itemset that occurs nowhere is never frequent.
func (e *Evaluator) Frequent(count int) bool {
	if count <= 0 || len(e.txs) == 0 {
		return false
	}
	return float64(count)/float64(len(e.txs)) >= e.config.Support
}

func (e *Evaluator) SupportCount(labels []string) (int, error) {
	return e.Count(e.Items.EncodeLabels(labels))
}

func (e *Evaluator) Support(labels []string) (float64, error) {
	if len(e.txs) == 0 {
		return 0, &lattice.NoTransactions{}
	}
	count, err := e.SupportCount(labels)
	if err != nil {
		return 0, err
	}
	return float64(count) / float64(len(e.txs)), nil
}

// Confidence of the rule condition -> prediction. The condition must have
// nonzero support.
func (e *Evaluator) Confidence(condition, prediction []string) (float64, error) {
	union := make([]string, 0, len(condition)+len(prediction))
	union = append(union, condition...)
	union = append(union, prediction...)
	return e.ConfidenceOf(e.Items.EncodeLabels(condition), e.Items.EncodeLabels(union))
}

// ConfidenceOf takes the canonical condition and the canonical union of
// the condition and the prediction.
func (e *Evaluator) ConfidenceOf(condition, union []int32) (float64, error) {
	base, err := e.Count(condition)
	if err != nil {
		return 0, err
	}
	if base == 0 {
		labels, err := e.Items.DecodeLabels(condition)
		if err != nil {
			return 0, err
		}
		return 0, &lattice.ZeroSupport{Condition: labels}
	}
	both, err := e.Count(union)
	if err != nil {
		return 0, err
	}
	return float64(both) / float64(base), nil
}

func (e *Evaluator) Decode(items []int32) ([]string, error) {
	return e.Items.DecodeLabels(items)
}

func (e *Evaluator) Close() error {
	return e.cache.Delete()
}
