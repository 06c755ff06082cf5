package list

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestQueue_EnqueueDequeue(t *testing.T) {
	q := NewQueue[int]()
	v, ok := q.Dequeue()
	require.False(t, ok)
	require.Zero(t, v)
	_, ok = q.Peek()
	require.False(t, ok)
	_, ok = q.PeekLast()
	require.False(t, ok)

	for i, v := range lo.Range(5) {
		require.Equal(t, int64(i+1), q.Enqueue(v))
	}
	require.Equal(t, lo.Range(5), q.Values())

	first, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 0, first)
	last, ok := q.PeekLast()
	require.True(t, ok)
	require.Equal(t, 4, last)

	dequeued := make([]int, 0, 5)
	for q.Len() > 0 {
		v, ok := q.Dequeue()
		require.True(t, ok)
		dequeued = append(dequeued, v)
		require.NoError(t, q.(*linkedQueue[int]).l.validate())
	}
	require.Equal(t, lo.Range(5), dequeued)

	_, ok = q.Dequeue()
	require.False(t, ok)
	_, ok = q.PeekLast()
	require.False(t, ok, "last has to be reset once drained")
}

func TestQueue_SingleElement(t *testing.T) {
	q := NewQueue[string]()
	require.Equal(t, int64(1), q.Enqueue("x"))
	first, _ := q.Peek()
	last, _ := q.PeekLast()
	require.Equal(t, first, last)

	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, "x", v)
	require.Equal(t, int64(0), q.Len())
	require.NoError(t, q.(*linkedQueue[string]).l.validate())

	require.Equal(t, int64(1), q.Enqueue("y"))
	last, ok = q.PeekLast()
	require.True(t, ok)
	require.Equal(t, "y", last)
}
