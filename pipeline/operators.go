package pipeline

import (
	"context"
	"slices"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/reduce"
	"github.com/kbukum/seqkit/validation"
)

// Take keeps the first n values. The source is not pulled past them.
func (p *Pipeline[T]) Take(n int) *Pipeline[T] {
	src := p.source("take")
	if err := validation.NonNegative("n", n); err != nil {
		return derive(p, failWith[T](err, src))
	}
	return derive[T, T](p, &takeIter[T]{source: src, remaining: n})
}

// TakeWhile keeps values up to, not including, the first for which pred fails.
func (p *Pipeline[T]) TakeWhile(pred func(T) bool) *Pipeline[T] {
	return derive[T, T](p, &takeWhileIter[T]{source: p.source("take_while"), fn: pred})
}

// TakeLast keeps the last n values. The whole source is drained on the
// first pull, holding at most n values.
func (p *Pipeline[T]) TakeLast(n int) *Pipeline[T] {
	src := p.source("take_last")
	if err := validation.NonNegative("n", n); err != nil {
		return derive(p, failWith[T](err, src))
	}
	return derive[T, T](p, &bufferedIter[T]{source: src, load: func(ctx context.Context, it cursor.Iterator[T]) ([]T, error) {
		return lastN(ctx, it, n)
	}})
}

// Drop skips the first n values.
func (p *Pipeline[T]) Drop(n int) *Pipeline[T] {
	src := p.source("drop")
	if err := validation.NonNegative("n", n); err != nil {
		return derive(p, failWith[T](err, src))
	}
	return derive[T, T](p, &dropIter[T]{source: src, n: n})
}

// DropWhile skips values while pred holds and keeps everything after.
func (p *Pipeline[T]) DropWhile(pred func(T) bool) *Pipeline[T] {
	return derive[T, T](p, &dropWhileIter[T]{source: p.source("drop_while"), fn: pred})
}

// Slice keeps the values at positions [start, stop). stop < start keeps
// nothing.
func (p *Pipeline[T]) Slice(start, stop int) *Pipeline[T] {
	src := p.source("slice")
	if err := validation.New().NonNegative("start", start).NonNegative("stop", stop).Err(); err != nil {
		return derive(p, failWith[T](err, src))
	}
	return derive[T, T](p, &takeIter[T]{
		source:    &dropIter[T]{source: src, n: start},
		remaining: max(stop-start, 0),
	})
}

// Where keeps the values for which pred holds.
func (p *Pipeline[T]) Where(pred func(T) bool) *Pipeline[T] {
	return derive[T, T](p, &filterIter[T]{source: p.source("where"), fn: pred, keep: true})
}

// WhereNot drops the values for which pred holds.
func (p *Pipeline[T]) WhereNot(pred func(T) bool) *Pipeline[T] {
	return derive[T, T](p, &filterIter[T]{source: p.source("where_not"), fn: pred, keep: false})
}

// Sort orders the values by cmp, keeping equal values in encounter order.
// The source is drained on the first pull.
func (p *Pipeline[T]) Sort(cmp func(a, b T) int) *Pipeline[T] {
	return derive[T, T](p, &bufferedIter[T]{source: p.source("sort"), load: func(ctx context.Context, it cursor.Iterator[T]) ([]T, error) {
		items, err := drain(ctx, it)
		slices.SortStableFunc(items, cmp)
		return items, err
	}})
}

// Reverse produces the values in reverse order. The source is drained on
// the first pull.
func (p *Pipeline[T]) Reverse() *Pipeline[T] {
	return derive[T, T](p, &bufferedIter[T]{source: p.source("reverse"), load: func(ctx context.Context, it cursor.Iterator[T]) ([]T, error) {
		items, err := drain(ctx, it)
		slices.Reverse(items)
		return items, err
	}})
}

// Cycle repeats the values forever. The first pass is remembered; an empty
// source stays empty.
func (p *Pipeline[T]) Cycle() *Pipeline[T] {
	return derive[T, T](p, &cycleIter[T]{source: p.source("cycle")})
}

// Prelude produces items before the pipeline's values.
func (p *Pipeline[T]) Prelude(items ...T) *Pipeline[T] {
	return derive(p, cursor.Concat(cursor.FromSlice(items), p.source("prelude")))
}

// Postlude produces items after the pipeline's values.
func (p *Pipeline[T]) Postlude(items ...T) *Pipeline[T] {
	return derive(p, cursor.Concat(p.source("postlude"), cursor.FromSlice(items)))
}

// Tap calls fn for each value as it passes through unchanged.
func (p *Pipeline[T]) Tap(fn func(T)) *Pipeline[T] {
	return derive[T, T](p, &tapIter[T]{source: p.source("tap"), fn: func(_ context.Context, v T) error {
		fn(v)
		return nil
	}})
}

// TapErr is Tap with a fallible callback; an error ends the pipeline.
func (p *Pipeline[T]) TapErr(fn func(context.Context, T) error) *Pipeline[T] {
	return derive[T, T](p, &tapIter[T]{source: p.source("tap"), fn: fn})
}

// DropElements removes every value equal to one of values.
func DropElements[T comparable](p *Pipeline[T], values ...T) *Pipeline[T] {
	return p.WhereNot(func(v T) bool { return slices.Contains(values, v) })
}

// DropZero removes zero values. On a pipeline of pointers or interfaces
// it removes the nils.
func DropZero[T comparable](p *Pipeline[T]) *Pipeline[T] {
	return p.Where(reduce.Truthy[T])
}

// --- Iterator implementations ---

type takeIter[T any] struct {
	source    cursor.Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		it.remaining = 0
		return val, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type takeWhileIter[T any] struct {
	source cursor.Iterator[T]
	fn     func(T) bool
	done   bool
}

func (it *takeWhileIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.done {
		return result, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok || !it.fn(val) {
		it.done = true
		return result, false, err
	}
	return val, true, nil
}

func (it *takeWhileIter[T]) Close() error { return it.source.Close() }

type dropIter[T any] struct {
	source  cursor.Iterator[T]
	n       int
	skipped bool
}

func (it *dropIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.skipped {
		it.skipped = true
		if _, err := cursor.Advance(ctx, it.source, it.n); err != nil {
			return result, false, err
		}
	}
	return it.source.Next(ctx)
}

func (it *dropIter[T]) Close() error { return it.source.Close() }

type dropWhileIter[T any] struct {
	source  cursor.Iterator[T]
	fn      func(T) bool
	started bool
}

func (it *dropWhileIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.started || !it.fn(val) {
			it.started = true
			return val, true, nil
		}
	}
}

func (it *dropWhileIter[T]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source cursor.Iterator[T]
	fn     func(T) bool
	keep   bool
}

func (it *filterIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) == it.keep {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source cursor.Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }

// bufferedIter materializes its source on the first pull and then serves
// the loaded slice.
type bufferedIter[T any] struct {
	source cursor.Iterator[T]
	load   func(context.Context, cursor.Iterator[T]) ([]T, error)
	items  cursor.Iterator[T]
}

func (it *bufferedIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.items == nil {
		items, err := it.load(ctx, it.source)
		if err != nil {
			it.items = cursor.Empty[T]()
			var zero T
			return zero, false, err
		}
		it.items = cursor.FromSlice(items)
	}
	return it.items.Next(ctx)
}

func (it *bufferedIter[T]) Close() error { return it.source.Close() }

type cycleIter[T any] struct {
	source cursor.Iterator[T]
	saved  []T
	replay bool
	index  int
}

func (it *cycleIter[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.replay {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			it.saved = append(it.saved, val)
			return val, true, nil
		}
		it.replay = true
	}
	if len(it.saved) == 0 {
		var zero T
		return zero, false, nil
	}
	val := it.saved[it.index]
	it.index = (it.index + 1) % len(it.saved)
	return val, true, nil
}

func (it *cycleIter[T]) Close() error { return it.source.Close() }

// drain pulls every value without closing it.
func drain[T any](ctx context.Context, it cursor.Iterator[T]) ([]T, error) {
	var items []T
	if n, ok := cursor.LenOf(it); ok {
		items = make([]T, 0, n)
	}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil || !ok {
			return items, err
		}
		items = append(items, val)
	}
}

// lastN keeps the final n values in a ring buffer.
func lastN[T any](ctx context.Context, it cursor.Iterator[T], n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	ring := make([]T, 0, n)
	start := 0
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if len(ring) < n {
			ring = append(ring, val)
			continue
		}
		ring[start] = val
		start = (start + 1) % n
	}
	return append(ring[start:], ring[:start]...), nil
}
