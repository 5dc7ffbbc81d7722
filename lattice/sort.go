package lattice

import (
	"sort"
)

// Sort orders itemsets by length, longest first. Itemsets of equal length
// are ordered lexicographically by their labels so output never depends on
// which algorithm produced the itemsets.
func Sort(itemsets []*Itemset) {
	sort.SliceStable(itemsets, func(i, j int) bool {
		a, b := itemsets[i], itemsets[j]
		if len(a.Items) != len(b.Items) {
			return len(a.Items) > len(b.Items)
		}
		return lessLabels(a.Items, b.Items)
	})
}

func lessLabels(a, b []string) bool {
	for x := 0; x < len(a) && x < len(b); x++ {
		if a[x] != b[x] {
			return a[x] < b[x]
		}
	}
	return len(a) < len(b)
}
