package list

var _ Queue[struct{}] = (*linkedQueue[struct{}])(nil)

type linkedQueue[T any] struct {
	l *singlyLinkedList[T]
}

func NewQueue[T any]() Queue[T] {
	return &linkedQueue[T]{
		l: &singlyLinkedList[T]{},
	}
}

func (q *linkedQueue[T]) Len() int64 {
	return q.l.Len()
}

func (q *linkedQueue[T]) Enqueue(v T) int64 {
	return q.l.Push(v).Len()
}

func (q *linkedQueue[T]) Dequeue() (T, bool) {
	v, ok := q.Peek()
	if ok {
		q.l.Shift()
	}
	return v, ok
}

func (q *linkedQueue[T]) Peek() (T, bool) {
	return nodeValue(q.l.Head())
}

func (q *linkedQueue[T]) PeekLast() (T, bool) {
	return nodeValue(q.l.Tail())
}

func (q *linkedQueue[T]) Values() []T {
	return q.l.Values()
}
