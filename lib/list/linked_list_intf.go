package list

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

var (
	ErrSinglyLinkedListInvalidIndex = errors.New("[singly-linked-list] invalid index")
	ErrSinglyLinkedListNotFound     = errors.New("[singly-linked-list] node not found")
)

// SinglyLinkedList is an ordered sequence with a forward link only.
// Note that the singly linked list is not thread safe, all mutations
// have to be serialized by the caller.
// The nodes returned by Head, Tail, Get and Set are borrowed views.
// They are only valid until the next mutation of the same list.
type SinglyLinkedList[T any] interface {
	fmt.Stringer
	zapcore.ObjectMarshaler

	Len() int64
	// Head returns the first node or nil if the list is empty.
	Head() *SinglyNode[T]
	// Tail returns the last node or nil if the list is empty.
	Tail() *SinglyNode[T]
	// Push appends a new node with value v at the end of the list. O(1).
	Push(v T) SinglyLinkedList[T]
	// Pop removes the last node. O(n), the node before the tail
	// is only reachable by walking from the head.
	// It is a no-op on an empty list.
	Pop() SinglyLinkedList[T]
	// Shift removes the first node. O(1).
	// It is a no-op on an empty list.
	Shift() SinglyLinkedList[T]
	// Unshift prepends a new node with value v. O(1).
	Unshift(v T) SinglyLinkedList[T]
	// Get returns the node at idx, or ErrSinglyLinkedListNotFound
	// if idx is out of [0, Len()).
	Get(idx int64) (*SinglyNode[T], error)
	// Set overwrites the value at idx and returns the affected node.
	Set(v T, idx int64) (*SinglyNode[T], error)
	// Insert places v at idx and shifts the subsequent nodes later.
	// idx has to be in [0, Len()], otherwise a nil list and
	// ErrSinglyLinkedListInvalidIndex are returned and the list is left untouched.
	Insert(v T, idx int64) (SinglyLinkedList[T], error)
	// Remove removes the node at idx. idx has to be in [0, Len()),
	// otherwise a nil list and ErrSinglyLinkedListInvalidIndex are
	// returned and the list is left untouched.
	Remove(idx int64) (SinglyLinkedList[T], error)
	// Reverse flips the links in place.
	Reverse() SinglyLinkedList[T]
	// Values copies all values from head to tail.
	Values() []T
	// Foreach traverses the list from head to tail and executes
	// function fn for each node.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, n *SinglyNode[T]) error) error
}

// Stack is a LIFO built on the singly linked list, the head is the top.
// It is not thread safe.
type Stack[T any] interface {
	Len() int64
	// Push adds v at the top and returns the new length. O(1).
	Push(v T) int64
	// Pop removes the top and returns its value, false if empty. O(1).
	Pop() (T, bool)
	// Peek returns the top value without removing it, false if empty.
	Peek() (T, bool)
	// Values copies all values from top to bottom.
	Values() []T
}

// Queue is a FIFO built on the singly linked list, enqueue at the
// tail and dequeue from the head. It is not thread safe.
type Queue[T any] interface {
	Len() int64
	// Enqueue adds v at the end and returns the new length. O(1).
	Enqueue(v T) int64
	// Dequeue removes the first element and returns its value,
	// false if empty. O(1).
	Dequeue() (T, bool)
	// Peek returns the first value without removing it.
	Peek() (T, bool)
	// PeekLast returns the last value without removing it.
	PeekLast() (T, bool)
	// Values copies all values from first to last.
	Values() []T
}
