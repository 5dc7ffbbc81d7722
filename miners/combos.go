package miners

// Combinations calls do with every k sized subset of items, keeping the
// relative order of items. The slice passed to do is reused between calls.
func Combinations(items []int32, k int, do func([]int32) error) error {
	n := len(items)
	if k <= 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	sub := make([]int32, k)
	for {
		for i, x := range idx {
			sub[i] = items[x]
		}
		if err := do(sub); err != nil {
			return err
		}
		// find the rightmost index that can still move right
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
