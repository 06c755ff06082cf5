package list

import (
	"fmt"
)

// SinglyNode is owned by its predecessor, the head node is owned
// by the list.
type SinglyNode[T any] struct {
	next  *SinglyNode[T]
	Value T // It should be placed at the end of the struct to avoid taking too much padding.
}

func newSinglyNode[T any](v T) *SinglyNode[T] {
	return &SinglyNode[T]{
		Value: v,
	}
}

func (n *SinglyNode[T]) HasNext() bool {
	if n == nil {
		return false
	}
	return n.next != nil
}

func (n *SinglyNode[T]) Next() *SinglyNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

func nodeValue[T any](n *SinglyNode[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Value, true
}

func (n *SinglyNode[T]) String() string {
	if n == nil {
		return "nil"
	}
	if n.next == nil {
		return fmt.Sprintf("SinglyNode{val: %v, next: nil}", n.Value)
	}
	return fmt.Sprintf("SinglyNode{val: %v, next: %v}", n.Value, n.next.Value)
}
