package observability

import (
	"context"

	"github.com/kbukum/seqkit/cursor"
)

// PullCounter reports how many values an observed iterator produced.
type PullCounter interface {
	Pulled() int64
}

// Observe wraps it so every value it produces is counted under pipeline.
// The wrapper keeps the Sized and RandomAccess capabilities of it; values
// skipped through Advance count as pulled. With nil ins the values are
// only counted locally.
func Observe[T any](it cursor.Iterator[T], ins *Instruments, pipeline string) cursor.Iterator[T] {
	o := &observedIter[T]{source: it, pipeline: pipeline}
	if ins != nil {
		o.metrics = ins.metrics
	}
	if ra, ok := it.(cursor.RandomAccess[T]); ok {
		return &randomAccessObserved[T]{observedIter: o, ra: ra}
	}
	if s, ok := it.(cursor.Sized); ok {
		return &sizedObserved[T]{observedIter: o, sized: s}
	}
	return o
}

type observedIter[T any] struct {
	source   cursor.Iterator[T]
	metrics  *metrics
	pipeline string
	pulled   int64
}

func (it *observedIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if ok {
		it.add(ctx, 1)
	}
	return val, ok, err
}

func (it *observedIter[T]) add(ctx context.Context, n int64) {
	if n <= 0 {
		return
	}
	it.pulled += n
	if it.metrics != nil {
		it.metrics.recordPulled(ctx, it.pipeline, n)
	}
}

func (it *observedIter[T]) Close() error { return it.source.Close() }

func (it *observedIter[T]) Pulled() int64 { return it.pulled }

type sizedObserved[T any] struct {
	*observedIter[T]
	sized cursor.Sized
}

func (it *sizedObserved[T]) Len() int { return it.sized.Len() }

type randomAccessObserved[T any] struct {
	*observedIter[T]
	ra cursor.RandomAccess[T]
}

func (it *randomAccessObserved[T]) Len() int { return it.ra.Len() }

func (it *randomAccessObserved[T]) Slice(i, j int) []T { return it.ra.Slice(i, j) }

func (it *randomAccessObserved[T]) Advance(n int) {
	before := it.ra.Len()
	it.ra.Advance(n)
	it.add(context.Background(), int64(before-it.ra.Len()))
}
