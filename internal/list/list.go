// Package list provides a generic doubly-linked list whose concatenation
// operations splice nodes instead of copying them.
//
// Display lists are rebuilt on every reflow and are assembled by repeatedly
// appending child lists into parent lists, so AppendList and PrependList run
// in O(1) regardless of length.
//
// The list is not thread-safe; callers must handle synchronization.
package list

import "iter"

// node is a node in a doubly-linked list.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly-linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

// New creates a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// PushBack adds a value at the back.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// PushFront adds a value at the front.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.len++
}

// Front returns the first value. ok is false if the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// Back returns the last value. ok is false if the list is empty.
func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}
	return l.tail.value, true
}

// AppendList moves every node of other to the back of l, leaving other empty.
func (l *List[T]) AppendList(other *List[T]) {
	if other == nil || other.head == nil || other == l {
		return
	}
	if l.tail == nil {
		l.head = other.head
	} else {
		l.tail.next = other.head
		other.head.prev = l.tail
	}
	l.tail = other.tail
	l.len += other.len
	other.Clear()
}

// PrependList moves every node of other to the front of l, leaving other empty.
func (l *List[T]) PrependList(other *List[T]) {
	if other == nil || other.head == nil || other == l {
		return
	}
	if l.head == nil {
		l.tail = other.tail
	} else {
		other.tail.next = l.head
		l.head.prev = other.tail
	}
	l.head = other.head
	l.len += other.len
	other.Clear()
}

// Clear removes all values from the list.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// All iterates front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward iterates back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Filter returns a new list holding the values for which keep returns true,
// in their original order. l is not modified.
func (l *List[T]) Filter(keep func(T) bool) *List[T] {
	out := &List[T]{}
	for v := range l.All() {
		if keep(v) {
			out.PushBack(v)
		}
	}
	return out
}

// Slice copies the values into a new slice, front to back.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
