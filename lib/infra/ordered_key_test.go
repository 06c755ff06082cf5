package infra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareOrderedKey(t *testing.T) {
	require.Equal(t, int64(0), CompareOrderedKey(1, 1))
	require.Equal(t, int64(1), CompareOrderedKey(2, 1))
	require.Equal(t, int64(-1), CompareOrderedKey(1, 2))
	require.Equal(t, int64(-1), CompareOrderedKey("a", "b"))
	require.Equal(t, int64(1), CompareOrderedKey(uint8(255), uint8(0)))
	require.Equal(t, int64(-1), CompareOrderedKey(-math.MaxFloat64, 0.0))

	var cmp OrderedKeyComparator[string] = CompareOrderedKey[string]
	require.Equal(t, int64(0), cmp("xalgo", "xalgo"))
}
