package support

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// A Counter counts the transactions containing every item of a canonical
// itemset. Counters never cache; the Evaluator does.
type Counter interface {
	Count(items []int32) int
}

// Scan tests each transaction for containment. Transactions must be in
// canonical (sorted, duplicate free) order.
type Scan struct {
	txs [][]int32
}

func NewScan(txs [][]int32) *Scan {
	return &Scan{txs: txs}
}

func (s *Scan) Count(items []int32) int {
	count := 0
	for _, tx := range s.txs {
		if Contains(tx, items) {
			count++
		}
	}
	return count
}

// Contains reports whether every item of sub is in tx. Both must be
// sorted ascending.
func Contains(tx, sub []int32) bool {
	if len(sub) > len(tx) {
		return false
	}
	i := 0
	for _, item := range sub {
		for i < len(tx) && tx[i] < item {
			i++
		}
		if i >= len(tx) || tx[i] != item {
			return false
		}
		i++
	}
	return true
}

// Bitmaps is an inverted index from item to the transactions holding it.
// The support count of an itemset is the cardinality of the intersection
// of its items' bitmaps.
type Bitmaps struct {
	n     int
	index []*roaring.Bitmap
}

func NewBitmaps(txs [][]int32) *Bitmaps {
	b := &Bitmaps{n: len(txs), index: make([]*roaring.Bitmap, 0, 100)}
	for tid, tx := range txs {
		for _, item := range tx {
			for int(item) >= len(b.index) {
				b.index = append(b.index, roaring.New())
			}
			b.index[item].Add(uint32(tid))
		}
	}
	return b
}

func (b *Bitmaps) Count(items []int32) int {
	if len(items) == 0 {
		return b.n
	}
	var result *roaring.Bitmap
	for _, item := range items {
		if item < 0 || int(item) >= len(b.index) {
			return 0
		}
		if result == nil {
			result = b.index[item]
		} else {
			result = roaring.And(result, b.index[item])
		}
		if result.IsEmpty() {
			return 0
		}
	}
	return int(result.GetCardinality())
}
