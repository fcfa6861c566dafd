// Package seq provides small ordered sequence containers used to hold
// per-day work time ranges.
package seq

import (
	"errors"
	"fmt"
	"iter"
)

// ErrImmutable is returned by mutating operations on immutable sequences.
var ErrImmutable = errors.New("sequence is immutable")

// Sequence is an ordered, index-accessible, iterable container.
type Sequence[T any] interface {
	// Len returns the number of elements in the sequence.
	Len() int

	// At returns the element at index i.
	// It returns an error if i is out of range.
	At(i int) (T, error)

	// First returns the first element of the sequence.
	// It returns an error if the sequence is empty.
	First() (T, error)

	// All returns an iterator over index/element pairs in order.
	All() iter.Seq2[int, T]

	// Push appends an element to the sequence.
	Push(v T) error

	// Set replaces the element at index i.
	Set(i int, v T) error

	// Delete removes the element at index i.
	Delete(i int) error
}

type List[T any] struct {
	items []T
}

var _ Sequence[int] = (*List[int])(nil)

func NewList[T any](values ...T) *List[T] {
	return &List[T]{items: append([]T(nil), values...)}
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("index %d out of range", i)
	}
	return l.items[i], nil
}

func (l *List[T]) First() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, errors.New("sequence is empty")
	}
	return l.items[0], nil
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (l *List[T]) Push(v T) error {
	l.items = append(l.items, v)
	return nil
}

func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("index %d out of range", i)
	}
	l.items[i] = v
	return nil
}

func (l *List[T]) Delete(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("index %d out of range", i)
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Tuple is an immutable sequence of one or more elements.
type Tuple[T any] struct {
	items []T
}

var _ Sequence[int] = (*Tuple[int])(nil)

// NewTuple constructs a tuple from at least one element.
func NewTuple[T any](first T, rest ...T) *Tuple[T] {
	items := make([]T, 0, 1+len(rest))
	items = append(items, first)
	items = append(items, rest...)
	return &Tuple[T]{items: items}
}

func (t *Tuple[T]) Len() int {
	return len(t.items)
}

func (t *Tuple[T]) At(i int) (T, error) {
	if i < 0 || i >= len(t.items) {
		var zero T
		return zero, fmt.Errorf("index %d out of range", i)
	}
	return t.items[i], nil
}

func (t *Tuple[T]) First() (T, error) {
	// Tuples are never empty
	return t.items[0], nil
}

func (t *Tuple[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range t.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (t *Tuple[T]) Push(T) error {
	return ErrImmutable
}

func (t *Tuple[T]) Set(int, T) error {
	return ErrImmutable
}

func (t *Tuple[T]) Delete(int) error {
	return ErrImmutable
}
