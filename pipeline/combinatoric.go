package pipeline

import (
	"context"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/validation"
)

// The combinatoric transforms drain their source into a pool on the first
// pull and then produce one tuple per pull, in lexicographic order of pool
// positions. Every tuple is a fresh slice. Equal values at different
// positions are treated as distinct. An infinite source never yields.

// Product yields every tuple of length repeat drawn from the values, with
// replacement and with order mattering. repeat 0 yields one empty tuple.
func Product[T any](p *Pipeline[T], repeat int) *Pipeline[[]T] {
	src := p.source("product")
	if err := validation.NonNegative("repeat", repeat); err != nil {
		return derive(p, failWith[[]T](err, src))
	}
	return derive[T, []T](p, newTupleIter(src, repeat, tupleWalk{init: zeroIndices, step: productStep}))
}

// Permutations yields every ordering of r distinct positions. A negative
// r selects the full length of the source.
func Permutations[T any](p *Pipeline[T], r int) *Pipeline[[]T] {
	return derive[T, []T](p, newTupleIter(p.source("permutations"), r, tupleWalk{init: ascendingIndices, step: permutationsStep}))
}

// Combinations yields every selection of r distinct positions, each in
// source order.
func Combinations[T any](p *Pipeline[T], r int) *Pipeline[[]T] {
	src := p.source("combinations")
	if err := validation.NonNegative("r", r); err != nil {
		return derive(p, failWith[[]T](err, src))
	}
	return derive[T, []T](p, newTupleIter(src, r, tupleWalk{init: ascendingIndices, step: combinationsStep}))
}

// CombinationsWithReplacement yields every selection of r positions where
// a position may repeat, each in source order.
func CombinationsWithReplacement[T any](p *Pipeline[T], r int) *Pipeline[[]T] {
	src := p.source("combinations_with_replacement")
	if err := validation.NonNegative("r", r); err != nil {
		return derive(p, failWith[[]T](err, src))
	}
	return derive[T, []T](p, newTupleIter(src, r, tupleWalk{init: zeroIndices, step: combinationsWithReplacementStep}))
}

// tupleWalk enumerates index tuples over a pool of n values.
type tupleWalk struct {
	// init returns the first tuple of length r, or false when there is none.
	init func(n, r int) ([]int, bool)
	// step advances idx in place, or reports false after the last tuple.
	step func(idx []int, n int) bool
}

func zeroIndices(n, r int) ([]int, bool) {
	return make([]int, r), r == 0 || n > 0
}

func ascendingIndices(n, r int) ([]int, bool) {
	if r > n {
		return nil, false
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	return idx, true
}

func productStep(idx []int, n int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		if idx[i] < n-1 {
			idx[i]++
			for j := i + 1; j < len(idx); j++ {
				idx[j] = 0
			}
			return true
		}
	}
	return false
}

func combinationsStep(idx []int, n int) bool {
	r := len(idx)
	for i := r - 1; i >= 0; i-- {
		if idx[i] != i+n-r {
			idx[i]++
			for j := i + 1; j < r; j++ {
				idx[j] = idx[j-1] + 1
			}
			return true
		}
	}
	return false
}

func combinationsWithReplacementStep(idx []int, n int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		if idx[i] != n-1 {
			v := idx[i] + 1
			for j := i; j < len(idx); j++ {
				idx[j] = v
			}
			return true
		}
	}
	return false
}

// permutationsStep moves to the next arrangement: the rightmost position
// that can take a larger unused index does, and the positions after it
// take the smallest unused indices in ascending order.
func permutationsStep(idx []int, n int) bool {
	used := make([]bool, n)
	for _, i := range idx {
		used[i] = true
	}
	for i := len(idx) - 1; i >= 0; i-- {
		used[idx[i]] = false
		for v := idx[i] + 1; v < n; v++ {
			if used[v] {
				continue
			}
			idx[i] = v
			used[v] = true
			next := 0
			for k := i + 1; k < len(idx); k++ {
				for used[next] {
					next++
				}
				idx[k] = next
				used[next] = true
			}
			return true
		}
	}
	return false
}

type tupleIter[T any] struct {
	source cursor.Iterator[T]
	r      int
	walk   tupleWalk
	pool   []T
	idx    []int
	loaded bool
	done   bool
}

func newTupleIter[T any](src cursor.Iterator[T], r int, walk tupleWalk) *tupleIter[T] {
	return &tupleIter[T]{source: src, r: r, walk: walk}
}

func (it *tupleIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}
	if !it.loaded {
		it.loaded = true
		pool, err := drain(ctx, it.source)
		if err != nil {
			it.done = true
			return nil, false, err
		}
		it.pool = pool
		r := it.r
		if r < 0 {
			r = len(pool)
		}
		idx, ok := it.walk.init(len(pool), r)
		if !ok {
			it.done = true
			return nil, false, nil
		}
		it.idx = idx
	} else if !it.walk.step(it.idx, len(it.pool)) {
		it.done = true
		return nil, false, nil
	}

	tuple := make([]T, len(it.idx))
	for k, i := range it.idx {
		tuple[k] = it.pool[i]
	}
	return tuple, true, nil
}

func (it *tupleIter[T]) Close() error { return it.source.Close() }
