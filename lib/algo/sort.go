package algo

import (
	"errors"
	"math"

	"github.com/samber/lo"

	"github.com/benz9527/xalgo/lib/infra"
)

var ErrRadixSortNegative = errors.New("[algo] radix sort with negative element")

// BubbleSort sorts arr in place and stops after a pass without swaps.
// O(n) for the nearly sorted, O(n^2) otherwise.
func BubbleSort[K infra.OrderedKey](arr []K) []K {
	for i := len(arr); i > 0; i-- {
		noSwaps := true
		for j := 0; j < i-1; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				noSwaps = false
			}
		}
		if noSwaps {
			break
		}
	}
	return arr
}

// InsertionSort sorts arr in place. O(n^2).
func InsertionSort[K infra.OrderedKey](arr []K) []K {
	for i := 1; i < len(arr); i++ {
		cur := arr[i]
		j := i - 1
		for ; j >= 0 && arr[j] > cur; j-- {
			arr[j+1] = arr[j]
		}
		arr[j+1] = cur
	}
	return arr
}

// SelectionSort sorts arr in place. O(n^2).
func SelectionSort[K infra.OrderedKey](arr []K) []K {
	for i := 0; i < len(arr); i++ {
		least := i
		for j := i + 1; j < len(arr); j++ {
			if arr[j] < arr[least] {
				least = j
			}
		}
		if least != i {
			arr[i], arr[least] = arr[least], arr[i]
		}
	}
	return arr
}

func merge[K infra.OrderedKey](left, right []K) []K {
	res := make([]K, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if right[r] < left[l] {
			res = append(res, right[r])
			r++
			continue
		}
		res = append(res, left[l])
		l++
	}
	res = append(res, left[l:]...)
	return append(res, right[r:]...)
}

// MergeSort returns a new sorted slice, arr is untouched. O(n log n).
func MergeSort[K infra.OrderedKey](arr []K) []K {
	if len(arr) <= 1 {
		res := make([]K, len(arr))
		copy(res, arr)
		return res
	}
	mid := len(arr) / 2
	return merge(MergeSort(arr[:mid]), MergeSort(arr[mid:]))
}

// pivot moves all elements less than arr[start] before it and
// returns its final position.
func pivot[K infra.OrderedKey](arr []K, start, end int) int {
	pv, swapIdx := arr[start], start
	for i := start + 1; i <= end; i++ {
		if arr[i] < pv {
			swapIdx++
			arr[swapIdx], arr[i] = arr[i], arr[swapIdx]
		}
	}
	arr[start], arr[swapIdx] = arr[swapIdx], arr[start]
	return swapIdx
}

func quickSort[K infra.OrderedKey](arr []K, left, right int) {
	for left < right {
		p := pivot(arr, left, right)
		// Recurse into the smaller part to bound the stack depth.
		if p-left < right-p {
			quickSort(arr, left, p-1)
			left = p + 1
		} else {
			quickSort(arr, p+1, right)
			right = p - 1
		}
	}
}

// QuickSort sorts arr in place, the first element is the pivot.
// O(n log n) on average.
func QuickSort[K infra.OrderedKey](arr []K) []K {
	quickSort(arr, 0, len(arr)-1)
	return arr
}

// RadixSort returns a new slice sorted by base 10 digits from the least
// significant one. No comparisons. O(nk), k is the digit count of the max.
func RadixSort[K infra.Integer](arr []K) ([]K, error) {
	if len(arr) <= 0 {
		return arr, nil
	}
	if lo.SomeBy(arr, func(v K) bool { return v < 0 }) {
		return nil, infra.WrapErrorStack(ErrRadixSortNegative)
	}

	res := make([]K, len(arr))
	copy(res, arr)
	maxVal := uint64(lo.Max(res))
	buckets := make([][]K, 10)
	for div := uint64(1); maxVal/div > 0; div *= 10 {
		for i := range buckets {
			buckets[i] = buckets[i][:0]
		}
		for _, v := range res {
			digit := (uint64(v) / div) % 10
			buckets[digit] = append(buckets[digit], v)
		}
		res = lo.Flatten(buckets)
		if div > math.MaxUint64/10 {
			break
		}
	}
	return res, nil
}
