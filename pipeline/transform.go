package pipeline

import (
	"cmp"
	"context"

	"github.com/kbukum/seqkit/chunk"
	"github.com/kbukum/seqkit/cursor"
)

// Map transforms each value using fn.
func Map[I, O any](p *Pipeline[I], fn func(I) O) *Pipeline[O] {
	return MapErr(p, func(_ context.Context, v I) (O, error) { return fn(v), nil })
}

// MapErr transforms each value using a fallible fn. An error ends the
// pipeline and is returned by the terminal.
func MapErr[I, O any](p *Pipeline[I], fn func(context.Context, I) (O, error)) *Pipeline[O] {
	return derive[I, O](p, &mapIter[I, O]{source: p.source("map"), fn: fn})
}

// StarMap applies fn to the two halves of each pair.
func StarMap[A, B, O any](p *Pipeline[cursor.Pair[A, B]], fn func(A, B) O) *Pipeline[O] {
	return Map(p, func(pr cursor.Pair[A, B]) O { return fn(pr.First, pr.Second) })
}

// FlatMap transforms each value into an iterator and flattens the results.
func FlatMap[I, O any](p *Pipeline[I], fn func(I) cursor.Iterator[O]) *Pipeline[O] {
	return derive[I, O](p, &flatMapIter[I, O]{source: p.source("flat_map"), fn: fn})
}

// Flatten concatenates the slices produced by p.
func Flatten[T any](p *Pipeline[[]T]) *Pipeline[T] {
	return derive[[]T, T](p, &flatMapIter[[]T, T]{source: p.source("flatten"), fn: cursor.FromSlice[T]})
}

// Chunk groups values into slices of n; the last group may be shorter.
func Chunk[T any](p *Pipeline[T], n int) *Pipeline[[]T] {
	src := p.source("chunk")
	it, err := chunk.Chunk(src, n, chunk.WithStrategy(p.s.strategy))
	if err != nil {
		return derive(p, failWith[[]T](err, src))
	}
	return derive(p, it)
}

// ChunkPadded groups values into slices of exactly n, padding the last
// group with fill.
func ChunkPadded[T any](p *Pipeline[T], n int, fill T) *Pipeline[[]T] {
	src := p.source("chunk_padded")
	it, err := chunk.Padded(src, n, fill, chunk.WithStrategy(p.s.strategy))
	if err != nil {
		return derive(p, failWith[[]T](err, src))
	}
	return derive(p, it)
}

// ChunkExact groups values into slices of exactly n and drops a short
// last group.
func ChunkExact[T any](p *Pipeline[T], n int) *Pipeline[[]T] {
	src := p.source("chunk_exact")
	it, err := chunk.Exact(src, n, chunk.WithStrategy(p.s.strategy))
	if err != nil {
		return derive(p, failWith[[]T](err, src))
	}
	return derive(p, it)
}

// Sliding yields overlapping windows of length values.
func Sliding[T any](p *Pipeline[T], length int) *Pipeline[[]T] {
	src := p.source("sliding")
	it, err := chunk.Sliding(src, length)
	if err != nil {
		return derive(p, failWith[[]T](err, src))
	}
	return derive(p, it)
}

// Zip pairs the values of a and b and stops with the shorter one.
// Settings are taken from a.
func Zip[A, B any](a *Pipeline[A], b *Pipeline[B]) *Pipeline[cursor.Pair[A, B]] {
	return derive[A, cursor.Pair[A, B]](a, &zipIter[A, B]{
		left:  a.source("zip"),
		right: b.source("zip"),
	})
}

// ZipLongest pairs the values of a and b until both end, filling the
// shorter side with fillA or fillB.
func ZipLongest[A, B any](a *Pipeline[A], b *Pipeline[B], fillA A, fillB B) *Pipeline[cursor.Pair[A, B]] {
	return derive[A, cursor.Pair[A, B]](a, &zipIter[A, B]{
		left:    a.source("zip_longest"),
		right:   b.source("zip_longest"),
		longest: true,
		fillA:   fillA,
		fillB:   fillB,
	})
}

// Enumerate pairs each value with its position, counting from start.
func Enumerate[T any](p *Pipeline[T], start int) *Pipeline[cursor.Pair[int, T]] {
	index := start
	return MapErr(p, func(_ context.Context, v T) (cursor.Pair[int, T], error) {
		pair := cursor.Pair[int, T]{First: index, Second: v}
		index++
		return pair, nil
	})
}

// Pairs yields each value together with its successor:
// [a b c] becomes (a,b) (b,c).
func Pairs[T any](p *Pipeline[T]) *Pipeline[cursor.Pair[T, T]] {
	return Map(Sliding(p, 2), func(w []T) cursor.Pair[T, T] {
		return cursor.Pair[T, T]{First: w[0], Second: w[1]}
	})
}

// Accumulate yields running results of fn: the first value, then
// fn(previous result, value) for each following value.
func Accumulate[T any](p *Pipeline[T], fn func(acc, v T) T) *Pipeline[T] {
	var acc T
	started := false
	return MapErr(p, func(_ context.Context, v T) (T, error) {
		if started {
			acc = fn(acc, v)
		} else {
			acc, started = v, true
		}
		return acc, nil
	})
}

// Uniq collapses runs of equal adjacent values into one.
func Uniq[T comparable](p *Pipeline[T]) *Pipeline[T] {
	return UniqFunc(p, func(v T) T { return v })
}

// UniqFunc collapses runs of adjacent values with equal keys, keeping the
// first value of each run.
func UniqFunc[T any, K comparable](p *Pipeline[T], key func(T) K) *Pipeline[T] {
	var last K
	seen := false
	return p.Where(func(v T) bool {
		k := key(v)
		if seen && k == last {
			return false
		}
		last, seen = k, true
		return true
	})
}

// Dedup sorts the values and removes duplicates.
func Dedup[T cmp.Ordered](p *Pipeline[T]) *Pipeline[T] {
	return Uniq(p.Sort(cmp.Compare[T]))
}

// DedupFunc sorts the values by key and keeps the first value for each
// distinct key.
func DedupFunc[T any, K cmp.Ordered](p *Pipeline[T], key func(T) K) *Pipeline[T] {
	sorted := p.Sort(func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return UniqFunc(sorted, key)
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source cursor.Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  cursor.Iterator[I]
	fn      func(I) cursor.Iterator[O]
	current cursor.Iterator[O]
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				var zero O
				return zero, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = it.current.Close()
			it.current = nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		it.current = it.fn(in)
	}
}

func (it *flatMapIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.source.Close()
}

type zipIter[A, B any] struct {
	left    cursor.Iterator[A]
	right   cursor.Iterator[B]
	longest bool
	fillA   A
	fillB   B
	done    bool
}

func (it *zipIter[A, B]) Next(ctx context.Context) (cursor.Pair[A, B], bool, error) {
	var zero cursor.Pair[A, B]
	if it.done {
		return zero, false, nil
	}
	a, okA, err := it.left.Next(ctx)
	if err != nil {
		it.done = true
		return zero, false, err
	}
	if !okA && !it.longest {
		it.done = true
		return zero, false, nil
	}
	b, okB, err := it.right.Next(ctx)
	if err != nil {
		it.done = true
		return zero, false, err
	}
	switch {
	case okA && okB:
		return cursor.Pair[A, B]{First: a, Second: b}, true, nil
	case !it.longest || (!okA && !okB):
		it.done = true
		return zero, false, nil
	case !okA:
		a = it.fillA
	default:
		b = it.fillB
	}
	return cursor.Pair[A, B]{First: a, Second: b}, true, nil
}

func (it *zipIter[A, B]) Close() error {
	errA := it.left.Close()
	errB := it.right.Close()
	if errA != nil {
		return errA
	}
	return errB
}
