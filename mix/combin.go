package mix

import "math"

// forEachCombination calls fn with every k-subset of pool in lexicographic
// order of positions. The members slice is reused between calls; fn must
// copy it to keep it. Iteration stops early when fn returns false.
//
// Complexity: O(C(len(pool), k)·k).
func forEachCombination(pool []int, k int, fn func(members []int) bool) {
	n := len(pool)
	if k <= 0 || k > n {
		return
	}

	var (
		pos     = make([]int, k) // positions into pool, strictly increasing
		members = make([]int, k)
		i       int
	)
	for i = 0; i < k; i++ {
		pos[i] = i
	}
	for {
		for i = 0; i < k; i++ {
			members[i] = pool[pos[i]]
		}
		if !fn(members) {
			return
		}

		// Advance: find the rightmost position that can still move right.
		i = k - 1
		for i >= 0 && pos[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		pos[i]++
		for j := i + 1; j < k; j++ {
			pos[j] = pos[j-1] + 1
		}
	}
}

// binomial returns C(n, k) as a float64 so large counts saturate instead of
// overflowing.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}

	return math.Round(r)
}
