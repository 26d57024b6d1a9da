package cursor

import (
	"cmp"
	"context"
	"iter"
	"maps"
	"slices"
)

// FromSlice returns a random-access iterator over items.
// The slice is not copied; callers must not modify it while iterating.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// Of returns a random-access iterator over its arguments.
func Of[T any](items ...T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// Empty returns an iterator that produces nothing.
func Empty[T any]() Iterator[T] {
	return &sliceIter[T]{}
}

// FromOptional returns an iterator producing v when ok is true, nothing otherwise.
func FromOptional[T any](v T, ok bool) Iterator[T] {
	if !ok {
		return Empty[T]()
	}
	return &sliceIter[T]{items: []T{v}}
}

// FromString returns a random-access iterator over the runes of s.
func FromString(s string) Iterator[rune] {
	return &sliceIter[rune]{items: []rune(s)}
}

// FromMap returns an iterator over the entries of m in ascending key order.
func FromMap[K cmp.Ordered, V any](m map[K]V) Iterator[Pair[K, V]] {
	keys := slices.Sorted(maps.Keys(m))
	entries := make([]Pair[K, V], len(keys))
	for i, k := range keys {
		entries[i] = Pair[K, V]{First: k, Second: m[k]}
	}
	return &sliceIter[Pair[K, V]]{items: entries}
}

// FromSeq adapts a range-over-func sequence. Values are pulled lazily, so
// infinite sequences are fine. Close stops the sequence.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	return &seqIter[T]{seq: seq}
}

// FromPairs adapts a two-value sequence into an iterator of pairs.
func FromPairs[K, V any](seq iter.Seq2[K, V]) Iterator[Pair[K, V]] {
	return FromSeq(func(yield func(Pair[K, V]) bool) {
		for k, v := range seq {
			if !yield(Pair[K, V]{First: k, Second: v}) {
				return
			}
		}
	})
}

// FromChan returns an iterator that receives from ch until it is closed.
// Next returns ctx.Err() if ctx is done while waiting.
func FromChan[T any](ch <-chan T) Iterator[T] {
	return &chanIter[T]{ch: ch}
}

// FromFunc returns an iterator driven by fn. Once fn reports exhaustion or
// an error it is not called again.
func FromFunc[T any](fn func(ctx context.Context) (T, bool, error)) Iterator[T] {
	return &funcIter[T]{fn: fn}
}

// Concat returns an iterator producing the values of each iterator in turn.
func Concat[T any](its ...Iterator[T]) Iterator[T] {
	return &concatIter[T]{iters: its}
}

// --- Iterator implementations ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

func (it *sliceIter[T]) Len() int { return len(it.items) - it.index }

func (it *sliceIter[T]) Slice(i, j int) []T {
	n := it.Len()
	i = min(max(i, 0), n)
	j = min(max(j, i), n)
	lo, hi := it.index+i, it.index+j
	return it.items[lo:hi:hi]
}

func (it *sliceIter[T]) Advance(n int) {
	it.index += min(max(n, 0), it.Len())
}

type seqIter[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	done bool
}

func (it *seqIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	if it.next == nil {
		it.next, it.stop = iter.Pull(it.seq)
	}
	v, ok := it.next()
	if !ok {
		it.finish()
		return zero, false, nil
	}
	return v, true, nil
}

func (it *seqIter[T]) finish() {
	it.done = true
	if it.stop != nil {
		it.stop()
	}
}

func (it *seqIter[T]) Close() error {
	it.finish()
	return nil
}

type chanIter[T any] struct {
	ch <-chan T
}

func (it *chanIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case v, open := <-it.ch:
		return v, open, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *chanIter[T]) Close() error { return nil }

type funcIter[T any] struct {
	fn   func(ctx context.Context) (T, bool, error)
	done bool
}

func (it *funcIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	v, ok, err := it.fn(ctx)
	if err != nil || !ok {
		it.done = true
		return zero, false, err
	}
	return v, true, nil
}

func (it *funcIter[T]) Close() error { return nil }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, src := range it.iters {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
