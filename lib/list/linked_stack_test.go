package list

import (
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPop(t *testing.T) {
	s := NewStack[int]()
	v, ok := s.Pop()
	require.False(t, ok)
	require.Zero(t, v)
	_, ok = s.Peek()
	require.False(t, ok)
	require.Empty(t, s.Values())

	for i, v := range lo.Range(5) {
		require.Equal(t, int64(i+1), s.Push(v))
	}
	require.Equal(t, []int{4, 3, 2, 1, 0}, s.Values())

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 4, top)
	require.Equal(t, int64(5), s.Len())

	popped := make([]int, 0, 5)
	for s.Len() > 0 {
		v, ok := s.Pop()
		require.True(t, ok)
		popped = append(popped, v)
		require.NoError(t, s.(*linkedStack[int]).l.validate())
	}
	require.Equal(t, lo.Reverse(lo.Range(5)), popped)

	_, ok = s.Pop()
	require.False(t, ok)
	require.Equal(t, int64(0), s.Len())

	// reusable after drained
	require.Equal(t, int64(1), s.Push(9))
	top, ok = s.Peek()
	require.True(t, ok)
	require.Equal(t, 9, top)
}

func TestStack_Interleaved(t *testing.T) {
	s := NewStack[string]()
	model := make([]string, 0, 8)
	for _, op := range []string{"a", "b", "-", "c", "-", "-", "-", "d", "e"} {
		if op == "-" {
			v, ok := s.Pop()
			if len(model) == 0 {
				require.False(t, ok)
				continue
			}
			require.True(t, ok)
			require.Equal(t, model[len(model)-1], v)
			model = model[:len(model)-1]
		} else {
			s.Push(op)
			model = append(model, op)
		}
		require.Equal(t, lo.Reverse(slices.Clone(model)), s.Values())
		require.NoError(t, s.(*linkedStack[string]).l.validate())
	}
}
