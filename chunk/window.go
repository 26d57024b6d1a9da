package chunk

import (
	"context"
	"slices"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/validation"
)

// Sliding yields overlapping windows of length values, advancing by one.
// The first window appears once length values were pulled; a source with
// fewer than length values yields nothing.
//
//	Sliding([1 2 3 4], 3) -> [1 2 3] [2 3 4]
func Sliding[T any](it cursor.Iterator[T], length int) (cursor.Iterator[[]T], error) {
	if err := validation.Positive("length", length); err != nil {
		return nil, err
	}
	return &windowIter[T]{source: it, size: length, step: 1}, nil
}

// Window yields windows of size values, starting a new window every step
// values. step < size overlaps windows, step == size behaves like [Exact],
// step > size skips the values in between. Only full windows are yielded.
func Window[T any](it cursor.Iterator[T], size, step int) (cursor.Iterator[[]T], error) {
	if err := validation.New().Positive("size", size).Positive("step", step).Err(); err != nil {
		return nil, err
	}
	return &windowIter[T]{source: it, size: size, step: step}, nil
}

type windowIter[T any] struct {
	source cursor.Iterator[T]
	size   int
	step   int
	buffer []T
	skip   int
	done   bool
}

func (it *windowIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}
	if it.buffer == nil {
		it.buffer = make([]T, 0, it.size)
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			it.done = true
			return nil, false, err
		}
		if it.skip > 0 {
			it.skip--
			continue
		}
		it.buffer = append(it.buffer, val)
		if len(it.buffer) < it.size {
			continue
		}

		window := slices.Clone(it.buffer)
		if it.step < it.size {
			// keep the overlapping tail for the next window
			copy(it.buffer, it.buffer[it.step:])
			it.buffer = it.buffer[:it.size-it.step]
		} else {
			it.buffer = it.buffer[:0]
			it.skip = it.step - it.size
		}
		return window, true, nil
	}
}

func (it *windowIter[T]) Close() error { return it.source.Close() }
