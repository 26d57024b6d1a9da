package cursor

import "context"

// Count returns an infinite iterator start, start+step, start+2*step, ...
func Count[T Number](start, step T) Iterator[T] {
	return &countIter[T]{next: start, step: step}
}

// Repeat returns an infinite iterator producing v.
func Repeat[T any](v T) Iterator[T] {
	return &repeatIter[T]{v: v, n: -1}
}

// RepeatN returns an iterator producing v n times. n <= 0 produces nothing.
func RepeatN[T any](v T, n int) Iterator[T] {
	return &repeatIter[T]{v: v, n: max(n, 0)}
}

// NTimes returns an iterator producing n empty values, for "do this n times" loops.
func NTimes(n int) Iterator[struct{}] {
	return RepeatN(struct{}{}, n)
}

// Iterate returns the infinite iterator fn(start), fn(fn(start)), ...
func Iterate[T any](start T, fn func(T) T) Iterator[T] {
	return &iterateIter[T]{cur: start, fn: fn}
}

type countIter[T Number] struct {
	next T
	step T
}

func (it *countIter[T]) Next(_ context.Context) (T, bool, error) {
	v := it.next
	it.next += it.step
	return v, true, nil
}

func (it *countIter[T]) Close() error { return nil }

// repeatIter repeats forever when n is negative.
type repeatIter[T any] struct {
	v T
	n int
}

func (it *repeatIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.n == 0 {
		var zero T
		return zero, false, nil
	}
	if it.n > 0 {
		it.n--
	}
	return it.v, true, nil
}

func (it *repeatIter[T]) Close() error { return nil }

type iterateIter[T any] struct {
	cur T
	fn  func(T) T
}

func (it *iterateIter[T]) Next(_ context.Context) (T, bool, error) {
	it.cur = it.fn(it.cur)
	return it.cur, true, nil
}

func (it *iterateIter[T]) Close() error { return nil }
