package pipeline

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/reduce"
)

// Fold combines the values left to right starting from init.
func Fold[T, R any](ctx context.Context, p *Pipeline[T], init R, fn func(acc R, v T) R) (R, error) {
	return terminal(ctx, p, "fold", func(ctx context.Context, it cursor.Iterator[T]) (R, error) {
		acc := init
		err := cursor.Drain(ctx, it, func(v T) error {
			acc = fn(acc, v)
			return nil
		})
		return acc, err
	})
}

// ToSet collects the distinct values.
func ToSet[T comparable](ctx context.Context, p *Pipeline[T]) (map[T]struct{}, error) {
	return terminal(ctx, p, "to_set", func(ctx context.Context, it cursor.Iterator[T]) (map[T]struct{}, error) {
		set := make(map[T]struct{})
		err := cursor.Drain(ctx, it, func(v T) error {
			set[v] = struct{}{}
			return nil
		})
		return set, err
	})
}

// ToMap collects key/value pairs. A later pair overwrites an earlier one
// with the same key.
func ToMap[K comparable, V any](ctx context.Context, p *Pipeline[cursor.Pair[K, V]]) (map[K]V, error) {
	return terminal(ctx, p, "to_map", func(ctx context.Context, it cursor.Iterator[cursor.Pair[K, V]]) (map[K]V, error) {
		m := make(map[K]V)
		err := cursor.Drain(ctx, it, func(kv cursor.Pair[K, V]) error {
			m[kv.First] = kv.Second
			return nil
		})
		return m, err
	})
}

// GroupBy partitions the values by key. Keys keep the order in which they
// were first seen and each group keeps encounter order.
func GroupBy[T any, K comparable](ctx context.Context, p *Pipeline[T], key func(T) K) (*Groups[K, T], error) {
	return terminal(ctx, p, "group_by", func(ctx context.Context, it cursor.Iterator[T]) (*Groups[K, T], error) {
		g := newGroups[K, T]()
		err := cursor.Drain(ctx, it, func(v T) error {
			g.add(key(v), v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// Sum adds the values. An empty pipeline sums to zero.
func Sum[T cursor.Number](ctx context.Context, p *Pipeline[T]) (T, error) {
	return Fold(ctx, p, T(0), func(acc, v T) T { return acc + v })
}

// Max returns the largest value, or EMPTY_SEQUENCE.
func Max[T cmp.Ordered](ctx context.Context, p *Pipeline[T]) (T, error) {
	return extreme(ctx, p, "max", func(a, b T) bool { return cmp.Less(a, b) })
}

// Min returns the smallest value, or EMPTY_SEQUENCE.
func Min[T cmp.Ordered](ctx context.Context, p *Pipeline[T]) (T, error) {
	return extreme(ctx, p, "min", func(a, b T) bool { return cmp.Less(b, a) })
}

// MaxFunc returns the first largest value by cmp, or EMPTY_SEQUENCE.
func MaxFunc[T any](ctx context.Context, p *Pipeline[T], cmp func(a, b T) int) (T, error) {
	return extreme(ctx, p, "max", func(a, b T) bool { return cmp(a, b) < 0 })
}

// MinFunc returns the first smallest value by cmp, or EMPTY_SEQUENCE.
func MinFunc[T any](ctx context.Context, p *Pipeline[T], cmp func(a, b T) int) (T, error) {
	return extreme(ctx, p, "min", func(a, b T) bool { return cmp(a, b) > 0 })
}

// extreme keeps the current best until replace(best, v) reports that v
// beats it.
func extreme[T any](ctx context.Context, p *Pipeline[T], op string, replace func(best, v T) bool) (T, error) {
	return terminal(ctx, p, op, func(ctx context.Context, it cursor.Iterator[T]) (T, error) {
		var best T
		seen := false
		err := cursor.Drain(ctx, it, func(v T) error {
			if !seen || replace(best, v) {
				best, seen = v, true
			}
			return nil
		})
		if err != nil {
			return best, err
		}
		if !seen {
			return best, errors.EmptySequence(op)
		}
		return best, nil
	})
}

// AllEqual reports whether every value equals the first. Empty is true.
func AllEqual[T comparable](ctx context.Context, p *Pipeline[T]) (bool, error) {
	return terminal(ctx, p, "all_equal", reduce.AllEqual[T])
}

// CountValue returns how many values equal v.
func CountValue[T comparable](ctx context.Context, p *Pipeline[T], v T) (int, error) {
	return p.CountIf(ctx, func(x T) bool { return x == v })
}

// Quantities counts the occurrences of each distinct value.
func Quantities[T comparable](ctx context.Context, p *Pipeline[T]) (map[T]int, error) {
	return terminal(ctx, p, "quantities", func(ctx context.Context, it cursor.Iterator[T]) (map[T]int, error) {
		counts := make(map[T]int)
		err := cursor.Drain(ctx, it, func(v T) error {
			counts[v]++
			return nil
		})
		return counts, err
	})
}

// Join formats each value with fmt.Sprint and joins them with sep.
func Join[T any](ctx context.Context, p *Pipeline[T], sep string) (string, error) {
	return terminal(ctx, p, "join", func(ctx context.Context, it cursor.Iterator[T]) (string, error) {
		var b strings.Builder
		first := true
		err := cursor.Drain(ctx, it, func(v T) error {
			if !first {
				b.WriteString(sep)
			}
			first = false
			fmt.Fprint(&b, v)
			return nil
		})
		return b.String(), err
	})
}
