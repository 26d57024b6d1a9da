package pipeline

import (
	"context"
	"iter"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/reduce"
)

// optional carries a value and its presence through terminal.
type optional[T any] struct {
	val T
	ok  bool
}

func (o optional[T]) unpack(err error) (T, bool, error) { return o.val, o.ok, err }

// ToList returns every value in order.
func (p *Pipeline[T]) ToList(ctx context.Context) ([]T, error) {
	return terminal(ctx, p, "to_list", cursor.Collect[T])
}

// ToTuple returns every value in a freshly allocated slice that shares no
// storage with the source.
func (p *Pipeline[T]) ToTuple(ctx context.Context) ([]T, error) {
	return terminal(ctx, p, "to_tuple", func(ctx context.Context, it cursor.Iterator[T]) ([]T, error) {
		items, err := cursor.Collect(ctx, it)
		if items == nil {
			items = []T{}
		}
		return items, err
	})
}

// Count returns the number of values. Sized sources are not pulled.
func (p *Pipeline[T]) Count(ctx context.Context) (int, error) {
	return terminal(ctx, p, "count", reduce.Len[T])
}

// CountIf returns the number of values for which pred holds.
func (p *Pipeline[T]) CountIf(ctx context.Context, pred func(T) bool) (int, error) {
	return terminal(ctx, p, "count_if", func(ctx context.Context, it cursor.Iterator[T]) (int, error) {
		return reduce.CountIf(ctx, it, pred)
	})
}

// All reports whether pred holds for every value. Empty is true.
func (p *Pipeline[T]) All(ctx context.Context, pred func(T) bool) (bool, error) {
	return terminal(ctx, p, "all", func(ctx context.Context, it cursor.Iterator[T]) (bool, error) {
		return reduce.All(ctx, it, pred)
	})
}

// Any reports whether pred holds for some value. Empty is false.
func (p *Pipeline[T]) Any(ctx context.Context, pred func(T) bool) (bool, error) {
	return terminal(ctx, p, "any", func(ctx context.Context, it cursor.Iterator[T]) (bool, error) {
		return reduce.Any(ctx, it, pred)
	})
}

// Exists reports whether pred holds for some value, stopping at the first
// match.
func (p *Pipeline[T]) Exists(ctx context.Context, pred func(T) bool) (bool, error) {
	return terminal(ctx, p, "exists", func(ctx context.Context, it cursor.Iterator[T]) (bool, error) {
		return reduce.Any(ctx, it, pred)
	})
}

// None reports whether pred holds for no value. Empty is true.
func (p *Pipeline[T]) None(ctx context.Context, pred func(T) bool) (bool, error) {
	return terminal(ctx, p, "none", func(ctx context.Context, it cursor.Iterator[T]) (bool, error) {
		return reduce.None(ctx, it, pred)
	})
}

// Reduce combines the values left to right, starting from the first one.
// An empty pipeline fails with EMPTY_SEQUENCE.
func (p *Pipeline[T]) Reduce(ctx context.Context, fn func(acc, v T) T) (T, error) {
	return terminal(ctx, p, "reduce", func(ctx context.Context, it cursor.Iterator[T]) (T, error) {
		defer it.Close()
		acc, ok, err := it.Next(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, errors.EmptySequence("reduce")
		}
		for {
			v, ok, err := it.Next(ctx)
			if err != nil {
				return acc, err
			}
			if !ok {
				return acc, nil
			}
			acc = fn(acc, v)
		}
	})
}

// ForEach calls fn for every value.
func (p *Pipeline[T]) ForEach(ctx context.Context, fn func(T)) error {
	_, err := terminal(ctx, p, "foreach", func(ctx context.Context, it cursor.Iterator[T]) (struct{}, error) {
		return struct{}{}, reduce.ForEach(ctx, it, fn)
	})
	return err
}

// Consume pulls every value and discards it.
func (p *Pipeline[T]) Consume(ctx context.Context) error {
	_, err := terminal(ctx, p, "consume", func(ctx context.Context, it cursor.Iterator[T]) (struct{}, error) {
		return struct{}{}, reduce.Consume(ctx, it)
	})
	return err
}

// First returns the first value; ok is false when there is none.
func (p *Pipeline[T]) First(ctx context.Context) (v T, ok bool, err error) {
	return unpackTerminal(ctx, p, "first", reduce.First[T])
}

// FirstOr returns the first value, or def when there is none.
func (p *Pipeline[T]) FirstOr(ctx context.Context, def T) (T, error) {
	return terminal(ctx, p, "first", func(ctx context.Context, it cursor.Iterator[T]) (T, error) {
		return reduce.FirstOr(ctx, it, def)
	})
}

// Single returns the only value. It fails with EMPTY_SEQUENCE or
// TOO_MANY_ELEMENTS otherwise.
func (p *Pipeline[T]) Single(ctx context.Context) (T, error) {
	return terminal(ctx, p, "single", reduce.Single[T])
}

// ToOptional returns the value of a pipeline holding zero or one values.
func (p *Pipeline[T]) ToOptional(ctx context.Context) (v T, ok bool, err error) {
	return unpackTerminal(ctx, p, "to_optional", reduce.ToOptional[T])
}

// FindFirst returns the first value matching pred, or NOT_FOUND.
func (p *Pipeline[T]) FindFirst(ctx context.Context, pred func(T) bool) (T, error) {
	return terminal(ctx, p, "find_first", func(ctx context.Context, it cursor.Iterator[T]) (T, error) {
		return reduce.FindFirst(ctx, it, pred)
	})
}

// FindFirstOr returns the first value matching pred, or def.
func (p *Pipeline[T]) FindFirstOr(ctx context.Context, pred func(T) bool, def T) (T, error) {
	return terminal(ctx, p, "find_first", func(ctx context.Context, it cursor.Iterator[T]) (T, error) {
		return reduce.FindFirstOr(ctx, it, pred, def)
	})
}

// FindFirstNot returns the first value not matching pred, or NOT_FOUND.
func (p *Pipeline[T]) FindFirstNot(ctx context.Context, pred func(T) bool) (T, error) {
	return terminal(ctx, p, "find_first_not", func(ctx context.Context, it cursor.Iterator[T]) (T, error) {
		return reduce.FindFirstNot(ctx, it, pred)
	})
}

// IsEmpty reports whether the pipeline produces no values. At most one
// value is pulled.
func (p *Pipeline[T]) IsEmpty(ctx context.Context) (bool, error) {
	return terminal(ctx, p, "is_empty", reduce.IsEmpty[T])
}

// Nth returns the value at zero-based position n.
func (p *Pipeline[T]) Nth(ctx context.Context, n int) (v T, ok bool, err error) {
	return unpackTerminal(ctx, p, "nth", func(ctx context.Context, it cursor.Iterator[T]) (T, bool, error) {
		return reduce.Nth(ctx, it, n)
	})
}

// Seq returns a range-over-func view of the values. A failure is yielded
// once as a non-nil error and ends the sequence. Breaking out of the loop
// releases the source. The loop runs inside one terminal span that ends
// when the loop does.
func (p *Pipeline[T]) Seq(ctx context.Context) iter.Seq2[T, error] {
	it, claimErr := p.claim("seq")
	return func(yield func(T, error) bool) {
		var zero T
		if claimErr != nil {
			yield(zero, claimErr)
			return
		}

		before := p.s.pulled()
		tctx, term := p.s.ins.StartTerminal(ctx, p.s.name, p.s.id, "seq")
		var err error
		defer func() {
			items := p.s.pulled() - before
			term.End(tctx, items, err)
			p.s.logTerminal("seq", items, term.Duration(), err)
		}()
		defer it.Close()

		for {
			var v T
			var ok bool
			v, ok, err = it.Next(tctx)
			if err != nil {
				yield(zero, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}

func unpackTerminal[T, R any](ctx context.Context, p *Pipeline[T], op string, fn func(context.Context, cursor.Iterator[T]) (R, bool, error)) (R, bool, error) {
	o, err := terminal(ctx, p, op, func(ctx context.Context, it cursor.Iterator[T]) (optional[R], error) {
		v, ok, err := fn(ctx, it)
		return optional[R]{val: v, ok: ok}, err
	})
	return o.unpack(err)
}
