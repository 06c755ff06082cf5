package algo

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestLinearSearch(t *testing.T) {
	arr := []int{5, 3, 9, 3, 1}
	require.Equal(t, 1, LinearSearch(arr, 3))
	require.Equal(t, 4, LinearSearch(arr, 1))
	require.Equal(t, -1, LinearSearch(arr, 42))
	require.Equal(t, -1, LinearSearch([]int(nil), 1))
	require.Equal(t, 0, LinearSearch([]string{"x", "y"}, "x"))
}

func TestBinarySearch(t *testing.T) {
	arr := []int{2, 5, 6, 9, 13, 15, 28}
	for i, v := range arr {
		require.Equal(t, i, BinarySearch(arr, v))
	}
	require.Equal(t, 5, BinarySearch(arr, 15))
	require.Equal(t, -1, BinarySearch(arr, 1))
	require.Equal(t, -1, BinarySearch(arr, 10))
	require.Equal(t, -1, BinarySearch(arr, 29))
	require.Equal(t, -1, BinarySearch([]int{}, 1))
	require.Equal(t, 1, BinarySearch([]float64{0.5, 1.5, 2.5}, 1.5))
	require.Equal(t, 2, BinarySearch([]string{"a", "b", "c"}, "c"))
}

func TestInPlaceSorts(t *testing.T) {
	sorts := []struct {
		name string
		fn   func([]int) []int
	}{
		{"bubble", BubbleSort[int]},
		{"insertion", InsertionSort[int]},
		{"selection", SelectionSort[int]},
		{"quick", QuickSort[int]},
	}
	rnd := rand.New(rand.NewSource(9527))
	inputs := [][]int{
		{},
		{1},
		{2, 1},
		{11, 3, 32, 24, 1, -3},
		lo.Range(50),
		lo.Reverse(lo.Range(50)),
		{4, 4, 1, 4, 1},
		lo.Times(200, func(int) int { return rnd.Intn(100) - 50 }),
	}
	for _, s := range sorts {
		t.Run(s.name, func(tt *testing.T) {
			for _, in := range inputs {
				arr := slices.Clone(in)
				expected := slices.Clone(in)
				slices.Sort(expected)
				res := s.fn(arr)
				require.Equal(tt, expected, res)
				require.Equal(tt, expected, arr, "sorted in place")
			}
		})
	}
}

func TestMergeSort(t *testing.T) {
	in := []int{11, 3, 32, 24, 1, -3}
	res := MergeSort(in)
	require.Equal(t, []int{-3, 1, 3, 11, 24, 32}, res)
	require.Equal(t, []int{11, 3, 32, 24, 1, -3}, in, "input untouched")
	require.Equal(t, []int{}, MergeSort([]int{}))
	require.Equal(t, []string{"a", "b", "c"}, MergeSort([]string{"c", "a", "b"}))

	shuffled := lo.Shuffle(lo.Range(300))
	require.Equal(t, lo.Range(300), MergeSort(shuffled))
}

func TestRadixSort(t *testing.T) {
	res, err := RadixSort([]int{23, 345, 5467, 12, 2345, 9852})
	require.NoError(t, err)
	require.Equal(t, []int{12, 23, 345, 2345, 5467, 9852}, res)

	bytesRes, err := RadixSort([]uint8{255, 0, 10, 9, 100})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 9, 10, 100, 255}, bytesRes)

	bigRes, err := RadixSort([]uint64{18446744073709551615, 1, 10000000000000000000})
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 10000000000000000000, 18446744073709551615}, bigRes)

	res, err = RadixSort([]int{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, res)

	empty, err := RadixSort([]int{})
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = RadixSort([]int{3, -1})
	require.ErrorIs(t, err, ErrRadixSortNegative)
}
