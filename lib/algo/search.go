package algo

import (
	"github.com/samber/lo"

	"github.com/benz9527/xalgo/lib/infra"
)

// LinearSearch returns the index of the first target in arr or -1. O(n).
func LinearSearch[K comparable](arr []K, target K) int {
	return lo.IndexOf(arr, target)
}

// BinarySearch returns an index of target in the ascending arr or -1. O(log n).
func BinarySearch[K infra.OrderedKey](arr []K, target K) int {
	left, right := 0, len(arr)-1
	for left <= right {
		mid := int(uint(left+right) >> 1)
		switch infra.CompareOrderedKey(arr[mid], target) {
		case 0:
			return mid
		case -1:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1
}
