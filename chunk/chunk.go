package chunk

import (
	"context"
	"slices"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/validation"
)

// tail decides what happens to a final group shorter than n.
type tail int

const (
	tailTruncate tail = iota
	tailPad
	tailDrop
)

// Chunk groups values into slices of n. The final group holds whatever is
// left (1..n values); nothing follows an exact fit.
//
// n must be positive. The returned iterator owns it.
func Chunk[T any](it cursor.Iterator[T], n int, opts ...Option) (cursor.Iterator[[]T], error) {
	if err := validation.Positive("n", n); err != nil {
		return nil, err
	}
	return newGroupIter(it, n, tailTruncate, *new(T), buildOptions(opts)), nil
}

// Padded groups values into slices of exactly n, filling the missing slots
// of a short final group with fill. An empty source yields nothing.
func Padded[T any](it cursor.Iterator[T], n int, fill T, opts ...Option) (cursor.Iterator[[]T], error) {
	if err := validation.Positive("n", n); err != nil {
		return nil, err
	}
	return newGroupIter(it, n, tailPad, fill, buildOptions(opts)), nil
}

// Exact groups values into slices of exactly n and drops a short final group.
func Exact[T any](it cursor.Iterator[T], n int, opts ...Option) (cursor.Iterator[[]T], error) {
	if err := validation.Positive("n", n); err != nil {
		return nil, err
	}
	return newGroupIter(it, n, tailDrop, *new(T), buildOptions(opts)), nil
}

func newGroupIter[T any](it cursor.Iterator[T], n int, policy tail, fill T, o options) cursor.Iterator[[]T] {
	g := &groupIter[T]{source: it, n: n, policy: policy, fill: fill}
	if o.strategy == Pull {
		return g
	}
	if ra, ok := it.(cursor.RandomAccess[T]); ok {
		g.ra = ra
		return &sizedGroupIter[T]{groupIter: g}
	}
	return g
}

// groupIter drains n values per group, by index range when ra is set.
type groupIter[T any] struct {
	source cursor.Iterator[T]
	ra     cursor.RandomAccess[T]
	n      int
	policy tail
	fill   T
	done   bool
}

func (it *groupIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}
	if it.ra != nil {
		return it.nextSlice()
	}
	return it.nextPull(ctx)
}

func (it *groupIter[T]) nextSlice() ([]T, bool, error) {
	avail := it.ra.Len()
	if avail >= it.n {
		group := slices.Clone(it.ra.Slice(0, it.n))
		it.ra.Advance(it.n)
		return group, true, nil
	}
	it.done = true
	if avail == 0 {
		return nil, false, nil
	}
	group := make([]T, 0, it.n)
	group = append(group, it.ra.Slice(0, avail)...)
	it.ra.Advance(avail)
	return it.finishShort(group)
}

func (it *groupIter[T]) nextPull(ctx context.Context) ([]T, bool, error) {
	group := make([]T, 0, it.n)
	for len(group) < it.n {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			it.done = true
			return nil, false, err
		}
		if !ok {
			it.done = true
			break
		}
		group = append(group, val)
	}
	if len(group) == it.n {
		return group, true, nil
	}
	if len(group) == 0 {
		return nil, false, nil
	}
	return it.finishShort(group)
}

// finishShort applies the tail policy to a final group with 0 < len < n.
func (it *groupIter[T]) finishShort(group []T) ([]T, bool, error) {
	switch it.policy {
	case tailPad:
		for len(group) < it.n {
			group = append(group, it.fill)
		}
		return group, true, nil
	case tailDrop:
		return nil, false, nil
	default:
		return group, true, nil
	}
}

func (it *groupIter[T]) Close() error { return it.source.Close() }

// sizedGroupIter reports how many groups remain over a random-access source.
type sizedGroupIter[T any] struct {
	*groupIter[T]
}

func (it *sizedGroupIter[T]) Len() int {
	if it.done {
		return 0
	}
	remaining := it.ra.Len()
	if it.policy == tailDrop {
		return remaining / it.n
	}
	return (remaining + it.n - 1) / it.n
}
