package list

var _ Stack[struct{}] = (*linkedStack[struct{}])(nil)

type linkedStack[T any] struct {
	l *singlyLinkedList[T]
}

func NewStack[T any]() Stack[T] {
	return &linkedStack[T]{
		l: &singlyLinkedList[T]{},
	}
}

func (s *linkedStack[T]) Len() int64 {
	return s.l.Len()
}

func (s *linkedStack[T]) Push(v T) int64 {
	return s.l.Unshift(v).Len()
}

func (s *linkedStack[T]) Pop() (T, bool) {
	v, ok := s.Peek()
	if ok {
		s.l.Shift()
	}
	return v, ok
}

func (s *linkedStack[T]) Peek() (T, bool) {
	return nodeValue(s.l.Head())
}

func (s *linkedStack[T]) Values() []T {
	return s.l.Values()
}
