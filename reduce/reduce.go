package reduce

import (
	"context"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/validation"
)

// Truthy reports whether v differs from the zero value of its type.
func Truthy[T comparable](v T) bool {
	var zero T
	return v != zero
}

// Len returns the number of values it would produce. Sized iterators
// answer without being pulled.
func Len[T any](ctx context.Context, it cursor.Iterator[T]) (int, error) {
	defer it.Close()
	if n, ok := cursor.LenOf(it); ok {
		return n, nil
	}
	count := 0
	for {
		_, ok, err := it.Next(ctx)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
		count++
	}
}

// CountIf counts the values for which pred holds. pred is called once per
// value, in pull order.
func CountIf[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool) (int, error) {
	count := 0
	err := cursor.Drain(ctx, it, func(v T) error {
		if pred(v) {
			count++
		}
		return nil
	})
	return count, err
}

// IsEmpty reports whether it produces no values. At most one value is
// pulled and it is discarded.
func IsEmpty[T any](ctx context.Context, it cursor.Iterator[T]) (bool, error) {
	defer it.Close()
	if n, ok := cursor.LenOf(it); ok {
		return n == 0, nil
	}
	_, ok, err := it.Next(ctx)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// AllEqual reports whether every value equals the first one. It stops at
// the first mismatch. An empty iterator is all-equal.
func AllEqual[T comparable](ctx context.Context, it cursor.Iterator[T]) (bool, error) {
	return AllEqualFunc(ctx, it, func(a, b T) bool { return a == b })
}

// AllEqualFunc is AllEqual with a caller-supplied equality.
func AllEqualFunc[T any](ctx context.Context, it cursor.Iterator[T], eq func(a, b T) bool) (bool, error) {
	defer it.Close()
	first, ok, err := it.Next(ctx)
	if err != nil || !ok {
		return err == nil, err
	}
	for {
		v, ok, err := it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !eq(first, v) {
			return false, nil
		}
	}
}

// Single returns the only value of it. It pulls at most two values and
// fails with EMPTY_SEQUENCE or TOO_MANY_ELEMENTS otherwise.
func Single[T any](ctx context.Context, it cursor.Iterator[T]) (T, error) {
	v, ok, err := atMostOne(ctx, it, "single")
	if err != nil {
		return v, err
	}
	if !ok {
		return v, errors.EmptySequence("single")
	}
	return v, nil
}

// ToOptional returns the value of a zero-or-one element iterator. ok is
// false when it is empty; more than one value fails with TOO_MANY_ELEMENTS.
func ToOptional[T any](ctx context.Context, it cursor.Iterator[T]) (v T, ok bool, err error) {
	return atMostOne(ctx, it, "to_optional")
}

func atMostOne[T any](ctx context.Context, it cursor.Iterator[T], op string) (T, bool, error) {
	defer it.Close()
	var zero T
	v, ok, err := it.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	_, more, err := it.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if more {
		return zero, false, errors.TooManyElements(op)
	}
	return v, true, nil
}

// First returns the first value of it, if any.
func First[T any](ctx context.Context, it cursor.Iterator[T]) (T, bool, error) {
	defer it.Close()
	return it.Next(ctx)
}

// FirstOr returns the first value of it, or def when it is empty.
func FirstOr[T any](ctx context.Context, it cursor.Iterator[T], def T) (T, error) {
	v, ok, err := First(ctx, it)
	if err != nil {
		return v, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Nth returns the value at zero-based position n. ok is false when it ends
// first.
func Nth[T any](ctx context.Context, it cursor.Iterator[T], n int) (T, bool, error) {
	defer it.Close()
	var zero T
	if err := validation.NonNegative("n", n); err != nil {
		return zero, false, err
	}
	skipped, err := cursor.Advance(ctx, it, n)
	if err != nil || skipped < n {
		return zero, false, err
	}
	return it.Next(ctx)
}

// Consume pulls it to the end and discards every value.
func Consume[T any](ctx context.Context, it cursor.Iterator[T]) error {
	return cursor.Drain(ctx, it, func(T) error { return nil })
}

// ForEach calls fn for every value in pull order.
func ForEach[T any](ctx context.Context, it cursor.Iterator[T], fn func(T)) error {
	return cursor.Drain(ctx, it, func(v T) error {
		fn(v)
		return nil
	})
}
