package pipeline

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/chunk"
	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
)

const component = "pipeline"

// Pipeline is a lazy, single-use wrapper around a cursor.Iterator.
//
// Transforms hand the wrapped iterator to a new Pipeline and leave the
// receiver spent; terminals consume it. Using a spent Pipeline fails with
// REUSE_AFTER_CONSUMPTION. A Pipeline is not safe for concurrent use.
type Pipeline[T any] struct {
	it    cursor.Iterator[T]
	s     *settings
	spent bool
}

// settings are shared by a root pipeline and everything derived from it.
type settings struct {
	id       string
	name     string
	log      *logger.Logger
	ins      *observability.Instruments
	strategy chunk.Strategy
	pulls    observability.PullCounter
}

func (s *settings) pulled() int64 {
	if s.pulls == nil {
		return 0
	}
	return s.pulls.Pulled()
}

// --- Constructors ---

// From wraps an existing iterator. The pipeline takes ownership of it.
func From[T any](it cursor.Iterator[T], opts ...Option) *Pipeline[T] {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	idErr := validation.New().OptionalUUID("id", s.id).Err()
	if s.id == "" || idErr != nil {
		s.id = uuid.NewString()
	}
	if s.log == nil {
		s.log = logger.Get(component)
	}
	s.log = s.log.WithFields(logger.Fields(
		logger.FieldPipelineID, s.id,
		logger.FieldPipeline, s.name,
	))

	observed := observability.Observe(it, s.ins, s.name)
	s.pulls, _ = observed.(observability.PullCounter)

	p := &Pipeline[T]{it: observed, s: s}
	if idErr != nil {
		p.it = failWith[T](idErr, observed)
	}
	return p
}

// FromSlice creates a pipeline over items. The slice is not copied.
func FromSlice[T any](items []T, opts ...Option) *Pipeline[T] {
	return From(cursor.FromSlice(items), opts...)
}

// Of creates a pipeline over its arguments.
func Of[T any](items ...T) *Pipeline[T] {
	return From(cursor.FromSlice(items))
}

// FromSeq creates a pipeline over a range-over-func sequence.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Pipeline[T] {
	return From(cursor.FromSeq(seq), opts...)
}

// Empty creates a pipeline that produces nothing.
func Empty[T any](opts ...Option) *Pipeline[T] {
	return From(cursor.Empty[T](), opts...)
}

// Repeat creates a pipeline producing v n times, or forever when n < 0.
func Repeat[T any](v T, n int, opts ...Option) *Pipeline[T] {
	if n < 0 {
		return From(cursor.Repeat(v), opts...)
	}
	return From(cursor.RepeatN(v, n), opts...)
}

// FromOptional creates a pipeline producing v when ok is true.
func FromOptional[T any](v T, ok bool, opts ...Option) *Pipeline[T] {
	return From(cursor.FromOptional(v, ok), opts...)
}

// ID returns the identifier shared by this pipeline and its ancestors.
func (p *Pipeline[T]) ID() string { return p.s.id }

// Name returns the configured pipeline name.
func (p *Pipeline[T]) Name() string { return p.s.name }

// Spent reports whether the pipeline was consumed or transformed.
func (p *Pipeline[T]) Spent() bool { return p.spent }

// --- Ownership ---

// claim hands the iterator to op and marks p spent.
func (p *Pipeline[T]) claim(op string) (cursor.Iterator[T], error) {
	if p.spent {
		p.s.log.Warn("pipeline reused after consumption", logger.Fields(
			logger.FieldOperation, op,
		))
		return nil, errors.ReuseAfterConsumption(op, p.s.id)
	}
	p.spent = true
	return p.it, nil
}

// source is claim for transforms: a reuse error is deferred to the first
// pull of the derived pipeline.
func (p *Pipeline[T]) source(op string) cursor.Iterator[T] {
	it, err := p.claim(op)
	if err != nil {
		return cursor.Fail[T](err)
	}
	return it
}

func derive[T, U any](p *Pipeline[T], it cursor.Iterator[U]) *Pipeline[U] {
	return &Pipeline[U]{it: it, s: p.s}
}

// failWith reports err on the first pull and releases src on Close.
func failWith[T, S any](err error, src cursor.Iterator[S]) cursor.Iterator[T] {
	return &errIter[T]{err: err, close: src.Close}
}

type errIter[T any] struct {
	err   error
	close func() error
	done  bool
}

func (it *errIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	it.done = true
	return zero, false, it.err
}

func (it *errIter[T]) Close() error { return it.close() }

// --- Terminals ---

// terminal runs fn on the claimed iterator inside a telemetry span and logs
// the outcome. fn must close the iterator.
func terminal[T, R any](ctx context.Context, p *Pipeline[T], op string, fn func(context.Context, cursor.Iterator[T]) (R, error)) (R, error) {
	it, err := p.claim(op)
	if err != nil {
		var zero R
		return zero, err
	}

	before := p.s.pulled()
	ctx, term := p.s.ins.StartTerminal(ctx, p.s.name, p.s.id, op)
	result, err := fn(ctx, it)
	items := p.s.pulled() - before
	term.End(ctx, items, err)
	p.s.logTerminal(op, items, term.Duration(), err)
	return result, err
}

func (s *settings) logTerminal(op string, items int64, d time.Duration, err error) {
	if !s.log.DebugEnabled() {
		return
	}
	fields := logger.DurationFields(op, d)
	fields[logger.FieldItems] = items
	fields[logger.FieldStatus] = observability.Status(err)
	if err != nil {
		fields = logger.MergeWithError(fields, err)
	}
	s.log.Debug("terminal operation finished", fields)
}
