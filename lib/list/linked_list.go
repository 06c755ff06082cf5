package list

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/xlog"
)

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

type singlyLinkedListOptions struct {
	logger xlog.XLogger
}

type SinglyLinkedListOption func(*singlyLinkedListOptions) error

// WithSinglyLinkedListLogger records the rejected index operations
// in debug level.
func WithSinglyLinkedListLogger(logger xlog.XLogger) SinglyLinkedListOption {
	return func(opts *singlyLinkedListOptions) error {
		if logger == nil {
			return infra.NewErrorStack("[singly-linked-list] nil logger")
		}
		opts.logger = logger
		return nil
	}
}

// Invariants after every public operation:
//  1. len == 0 iff head == nil iff tail == nil.
//  2. Following next from head len times reaches nil and the
//     last visited node is tail.
type singlyLinkedList[T any] struct {
	head   *SinglyNode[T]
	tail   *SinglyNode[T] // Not an owner, head chain owns it.
	len    int64
	logger xlog.XLogger
}

// NewSinglyLinkedList panics on an invalid option.
func NewSinglyLinkedList[T any](opts ...SinglyLinkedListOption) SinglyLinkedList[T] {
	cfg := &singlyLinkedListOptions{}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	return &singlyLinkedList[T]{
		logger: cfg.logger,
	}
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[T]) Head() *SinglyNode[T] {
	return l.head
}

func (l *singlyLinkedList[T]) Tail() *SinglyNode[T] {
	return l.tail
}

func (l *singlyLinkedList[T]) Push(v T) SinglyLinkedList[T] {
	n := newSinglyNode(v)
	if l.len == 0 {
		// empty list, new node is the first and the last one
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.len++
	return l
}

func (l *singlyLinkedList[T]) Pop() SinglyLinkedList[T] {
	switch l.len {
	case 0:
		return l
	case 1:
		l.head, l.tail = nil, nil
	default:
		prev := l.head
		for prev.next != l.tail {
			prev = prev.next
		}
		prev.next = nil
		l.tail = prev
	}
	l.len--
	return l
}

func (l *singlyLinkedList[T]) Shift() SinglyLinkedList[T] {
	if l.len == 0 {
		return l
	}

	first := l.head
	l.head = first.next
	// avoid memory leaks
	first.next = nil
	l.len--
	if l.len == 0 {
		l.tail = nil
	}
	return l
}

func (l *singlyLinkedList[T]) Unshift(v T) SinglyLinkedList[T] {
	n := newSinglyNode(v)
	if l.len == 0 {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head = n
	}
	l.len++
	return l
}

func (l *singlyLinkedList[T]) isValidIndex(idx int64) bool {
	return idx >= 0 && idx < l.len
}

// get expects a valid index.
func (l *singlyLinkedList[T]) get(idx int64) *SinglyNode[T] {
	n := l.head
	for i := int64(0); i < idx; i++ {
		n = n.next
	}
	return n
}

func (l *singlyLinkedList[T]) reject(sentinel error, op string, idx int64) error {
	if l.logger != nil {
		l.logger.Debug("[singly-linked-list] rejected",
			zap.String("op", op),
			zap.Int64("index", idx),
			zap.Object("list", l),
		)
	}
	return infra.WrapErrorStackWithMessage(sentinel,
		op+" index "+strconv.FormatInt(idx, 10)+" with length "+strconv.FormatInt(l.len, 10),
	)
}

func (l *singlyLinkedList[T]) Get(idx int64) (*SinglyNode[T], error) {
	if !l.isValidIndex(idx) {
		return nil, l.reject(ErrSinglyLinkedListNotFound, "get", idx)
	}
	return l.get(idx), nil
}

func (l *singlyLinkedList[T]) Set(v T, idx int64) (*SinglyNode[T], error) {
	if !l.isValidIndex(idx) {
		return nil, l.reject(ErrSinglyLinkedListNotFound, "set", idx)
	}
	n := l.get(idx)
	n.Value = v
	return n, nil
}

func (l *singlyLinkedList[T]) Insert(v T, idx int64) (SinglyLinkedList[T], error) {
	if idx < 0 || idx > l.len {
		return nil, l.reject(ErrSinglyLinkedListInvalidIndex, "insert", idx)
	}

	switch idx {
	case 0:
		return l.Unshift(v), nil
	case l.len:
		return l.Push(v), nil
	default:
	}

	prev := l.get(idx - 1)
	n := newSinglyNode(v)
	n.next = prev.next
	prev.next = n
	l.len++
	return l, nil
}

func (l *singlyLinkedList[T]) Remove(idx int64) (SinglyLinkedList[T], error) {
	if !l.isValidIndex(idx) {
		return nil, l.reject(ErrSinglyLinkedListInvalidIndex, "remove", idx)
	}

	switch idx {
	case 0:
		return l.Shift(), nil
	case l.len - 1:
		return l.Pop(), nil
	default:
	}

	prev := l.get(idx - 1)
	target := prev.next
	prev.next = target.next
	// avoid memory leaks
	target.next = nil
	l.len--
	return l, nil
}

func (l *singlyLinkedList[T]) Reverse() SinglyLinkedList[T] {
	if l.len <= 1 {
		return l
	}

	var (
		prev *SinglyNode[T]
		cur  = l.head
	)
	l.tail = l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
	return l
}

func (l *singlyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.Value)
	}
	return values
}

// Foreach, the fn must not mutate the list structure.
func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, n *SinglyNode[T]) error) error {
	if fn == nil || l.len == 0 {
		return nil
	}

	var idx int64 = 0
	for n := l.head; n != nil; n = n.next {
		if err := fn(idx, n); err != nil {
			return err
		}
		idx++
	}
	return nil
}

func valueOrNil[T any](n *SinglyNode[T]) string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", n.Value)
}

func (l *singlyLinkedList[T]) String() string {
	return fmt.Sprintf("SinglyLinkedList{head: %s, tail: %s, length: %d}",
		valueOrNil(l.head), valueOrNil(l.tail), l.len,
	)
}

func (l *singlyLinkedList[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("head", valueOrNil(l.head))
	enc.AddString("tail", valueOrNil(l.tail))
	enc.AddInt64("length", l.len)
	return nil
}

// validate walks the whole chain, at most len+1 steps.
func (l *singlyLinkedList[T]) validate() error {
	if (l.len == 0) != (l.head == nil) || (l.len == 0) != (l.tail == nil) {
		return infra.NewErrorStack("[singly-linked-list] emptiness of length, head and tail mismatched")
	}

	var (
		last  *SinglyNode[T]
		count int64
	)
	for n := l.head; n != nil; n = n.next {
		if count >= l.len {
			return infra.NewErrorStack("[singly-linked-list] chain is longer than length, cycle detected")
		}
		last = n
		count++
	}
	if count != l.len {
		return infra.NewErrorStack("[singly-linked-list] chain is shorter than length")
	}
	if last != l.tail {
		return infra.NewErrorStack("[singly-linked-list] tail is not the last reachable node")
	}
	return nil
}
