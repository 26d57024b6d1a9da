package reduce

import (
	"context"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/errors"
)

// FindFirst returns the first value matching pred. Pulling stops at the
// match. When nothing matches it fails with NOT_FOUND.
func FindFirst[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool) (T, error) {
	v, ok, err := find(ctx, it, pred, true)
	if err == nil && !ok {
		err = errors.NotFound("find_first")
	}
	return v, err
}

// FindFirstOr is FindFirst returning def instead of failing.
func FindFirstOr[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool, def T) (T, error) {
	v, ok, err := find(ctx, it, pred, true)
	if err == nil && !ok {
		return def, nil
	}
	return v, err
}

// FindFirstNot returns the first value for which pred does not hold.
func FindFirstNot[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool) (T, error) {
	v, ok, err := find(ctx, it, pred, false)
	if err == nil && !ok {
		err = errors.NotFound("find_first_not")
	}
	return v, err
}

// FindFirstNotOr is FindFirstNot returning def instead of failing.
func FindFirstNotOr[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool, def T) (T, error) {
	v, ok, err := find(ctx, it, pred, false)
	if err == nil && !ok {
		return def, nil
	}
	return v, err
}

// Any reports whether pred holds for some value.
func Any[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool) (bool, error) {
	_, ok, err := find(ctx, it, pred, true)
	return ok, err
}

// All reports whether pred holds for every value. Empty is true.
func All[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool) (bool, error) {
	_, ok, err := find(ctx, it, pred, false)
	return !ok && err == nil, err
}

// None reports whether pred holds for no value. Empty is true.
func None[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool) (bool, error) {
	_, ok, err := find(ctx, it, pred, true)
	return !ok && err == nil, err
}

// find returns the first value whose pred result equals want.
func find[T any](ctx context.Context, it cursor.Iterator[T], pred func(T) bool, want bool) (T, bool, error) {
	defer it.Close()
	var zero T
	for {
		v, ok, err := it.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		if pred(v) == want {
			return v, true, nil
		}
	}
}
