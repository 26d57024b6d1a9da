package cursor

import (
	"context"
	"iter"
)

// Collect drains it into a slice and closes it. Values pulled before an
// error are returned alongside the error.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	defer it.Close()
	var result []T
	if n, ok := LenOf(it); ok {
		result = make([]T, 0, n)
	}
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Drain pulls every value from it and passes it to fn, then closes it.
// It stops at the first error from either side.
func Drain[T any](ctx context.Context, it Iterator[T], fn func(T) error) error {
	defer it.Close()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(val); err != nil {
			return err
		}
	}
}

// Advance skips up to n values and reports how many were skipped.
// The iterator is not closed.
func Advance[T any](ctx context.Context, it Iterator[T], n int) (int, error) {
	if ra, ok := it.(RandomAccess[T]); ok {
		skipped := min(max(n, 0), ra.Len())
		ra.Advance(skipped)
		return skipped, nil
	}
	for i := 0; i < n; i++ {
		_, ok, err := it.Next(ctx)
		if err != nil {
			return i, err
		}
		if !ok {
			return i, nil
		}
	}
	return max(n, 0), nil
}

// Seq returns a range-over-func view of it. The iterator is closed when the
// loop ends for any reason. Errors end the loop silently; use Collect or
// Drain when they matter.
func Seq[T any](ctx context.Context, it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			val, ok, err := it.Next(ctx)
			if err != nil || !ok {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}
