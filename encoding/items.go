package encoding

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/assoc/lattice"
)

// Items is a bijection between item labels and dense integer codes. Codes
// are handed out in first-seen order starting at 0 and are never reused.
type Items struct {
	codes  *hashtable.LinearHash // types.String -> int32
	labels []string
}

func NewItems() *Items {
	return &Items{
		codes:  hashtable.NewLinearHash(),
		labels: make([]string, 0, 100),
	}
}

func (e *Items) Len() int {
	return len(e.labels)
}

func (e *Items) Encode(label string) int32 {
	key := types.String(label)
	if code, err := e.codes.Get(key); err == nil {
		return code.(int32)
	}
	code := int32(len(e.labels))
	e.labels = append(e.labels, label)
	e.codes.Put(key, code)
	return code
}

// Lookup finds the code of a label without assigning one.
func (e *Items) Lookup(label string) (int32, bool) {
	code, err := e.codes.Get(types.String(label))
	if err != nil {
		return -1, false
	}
	return code.(int32), true
}

func (e *Items) Decode(code int32) (string, error) {
	if code < 0 || int(code) >= len(e.labels) {
		return "", &lattice.UnknownCode{Table: "item", Code: code}
	}
	return e.labels[code], nil
}

// EncodeLabels encodes every label and returns the codes sorted ascending
// with duplicates removed. This is the canonical form of an itemset.
func (e *Items) EncodeLabels(labels []string) []int32 {
	codes := make([]int32, 0, len(labels))
	for _, label := range labels {
		codes = append(codes, e.Encode(label))
	}
	return Canonical(codes)
}

func (e *Items) EncodeTransactions(txs [][]string) [][]int32 {
	encoded := make([][]int32, 0, len(txs))
	for _, tx := range txs {
		encoded = append(encoded, e.EncodeLabels(tx))
	}
	return encoded
}

func (e *Items) DecodeLabels(codes []int32) ([]string, error) {
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		label, err := e.Decode(code)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, nil
}

func (e *Items) DecodeTransactions(txs [][]int32) ([][]string, error) {
	decoded := make([][]string, 0, len(txs))
	for _, tx := range txs {
		labels, err := e.DecodeLabels(tx)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, labels)
	}
	return decoded, nil
}

// Canonical sorts codes ascending and drops repeats, in place.
func Canonical(codes []int32) []int32 {
	if len(codes) <= 1 {
		return codes
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	out := codes[:1]
	for _, c := range codes[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}
