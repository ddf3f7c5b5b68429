// Package list provides the small ordered-list primitive the kernel cache and scratch-image
// pool are built on.
//
// The original clBLAS uses an intrusive, circular, doubly-linked list with an
// offset-based "container-of" trick so a single list node type can thread through several
// unrelated structs. Go has no pointer arithmetic to make that safe, and does not need it:
// a non-intrusive list built on the standard container/list, with a generic value type,
// gives the same external contract (ordered iteration, search by predicate, O(1) removal
// given an element handle) without unsafe casts.
package list

import "container/list"

// List is an ordered collection of values of type T, searchable by predicate and removable
// in O(1) once an Element handle is known.
type List[T any] struct {
	inner *list.List
}

// Element is an opaque handle to a value inside a List, returned by PushBack and consumed
// by Remove.
type Element[T any] struct {
	e *list.Element
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{inner: list.New()}
}

// Len returns the number of elements currently in the list.
func (l *List[T]) Len() int {
	return l.inner.Len()
}

// PushBack appends value and returns a handle for O(1) removal.
func (l *List[T]) PushBack(value T) Element[T] {
	return Element[T]{e: l.inner.PushBack(value)}
}

// Remove deletes the element referenced by handle.
func (l *List[T]) Remove(handle Element[T]) {
	l.inner.Remove(handle.e)
}

// Find returns the first element for which match returns true, in insertion order, and
// whether one was found.
func (l *List[T]) Find(match func(T) bool) (Element[T], bool) {
	for e := l.inner.Front(); e != nil; e = e.Next() {
		if match(e.Value.(T)) {
			return Element[T]{e: e}, true
		}
	}
	return Element[T]{}, false
}

// Value returns the value stored at handle.
func (l *List[T]) Value(handle Element[T]) T {
	return handle.e.Value.(T)
}

// Each calls fn for every value in insertion order. fn may return false to stop iteration.
func (l *List[T]) Each(fn func(T) bool) {
	for e := l.inner.Front(); e != nil; e = e.Next() {
		if !fn(e.Value.(T)) {
			return
		}
	}
}

// Front returns the first element and whether the list is non-empty.
func (l *List[T]) Front() (Element[T], bool) {
	e := l.inner.Front()
	if e == nil {
		return Element[T]{}, false
	}
	return Element[T]{e: e}, true
}
