package shiftmap

import "cmp"

// Sort stably sorts s[from:to] in place with a three-way comparator. It runs
// in O(n·log²n) worst case and allocates no auxiliary storage: small blocks
// are insertion-sorted, then merged pairwise with a symmetric rotation merge.
// Equal elements keep their relative order.
func Sort[T any](s []T, from, to int, compare func(a, b T) int) {
	n := to - from
	if n < 2 {
		return
	}

	blockSize := 20
	a, b := from, from+blockSize
	for b <= to {
		insertionSort(s, a, b, compare)
		a = b
		b += blockSize
	}
	insertionSort(s, a, to, compare)

	for blockSize < n {
		a, b = from, from+2*blockSize
		for b <= to {
			symMerge(s, a, a+blockSize, b, compare)
			a = b
			b += 2 * blockSize
		}
		if m := a + blockSize; m < to {
			symMerge(s, a, m, to, compare)
		}
		blockSize *= 2
	}
}

// SortOrdered is Sort with the natural ordering of T, the nil-comparator
// case of the contract.
func SortOrdered[T cmp.Ordered](s []T, from, to int) {
	Sort(s, from, to, cmp.Compare[T])
}

func insertionSort[T any](s []T, a, b int, compare func(a, b T) int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && compare(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// symMerge merges the sorted runs s[a:m] and s[m:b] using the SymMerge
// algorithm (Kim & Kutzner): find the rotation point by binary search on the
// symmetric diagonal, rotate, recurse on both halves.
func symMerge[T any](s []T, a, m, b int, compare func(a, b T) int) {
	// A run of length 1 degenerates to a binary insertion; handling it here
	// keeps the recursion O(log n) deep for the unbalanced final merge.
	if m-a == 1 {
		i, j := m, b
		for i < j {
			h := int(uint(i+j) >> 1)
			if compare(s[h], s[a]) < 0 {
				i = h + 1
			} else {
				j = h
			}
		}

		for k := a; k < i-1; k++ {
			s[k], s[k+1] = s[k+1], s[k]
		}

		return
	}

	if b-m == 1 {
		i, j := a, m
		for i < j {
			h := int(uint(i+j) >> 1)
			if compare(s[m], s[h]) >= 0 {
				i = h + 1
			} else {
				j = h
			}
		}

		for k := m; k > i; k-- {
			s[k], s[k-1] = s[k-1], s[k]
		}

		return
	}

	mid := int(uint(a+b) >> 1)
	n := mid + m

	var start, r int
	if m > mid {
		start, r = n-b, mid
	} else {
		start, r = a, m
	}

	p := n - 1
	for start < r {
		c := int(uint(start+r) >> 1)
		if compare(s[p-c], s[c]) >= 0 {
			start = c + 1
		} else {
			r = c
		}
	}

	end := n - start
	if start < m && m < end {
		rotate(s, start, m, end)
	}
	if a < start && start < mid {
		symMerge(s, a, start, mid, compare)
	}
	if mid < end && end < b {
		symMerge(s, mid, end, b, compare)
	}
}

// rotate exchanges the blocks s[a:m] and s[m:b] in place by juggling swaps.
func rotate[T any](s []T, a, m, b int) {
	i := m - a
	j := b - m

	for i != j {
		if i > j {
			swapRange(s, m-i, m, j)
			i -= j
		} else {
			swapRange(s, m-i, m+j-i, i)
			j -= i
		}
	}

	swapRange(s, m-i, m, i)
}

func swapRange[T any](s []T, a, b, n int) {
	for i := 0; i < n; i++ {
		s[a+i], s[b+i] = s[b+i], s[a+i]
	}
}
