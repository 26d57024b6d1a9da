package cursor

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted
	// and keeps doing so on later calls.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Sized is implemented by iterators that know how many values remain.
type Sized interface {
	// Len returns the number of values Next would still produce.
	Len() int
}

// RandomAccess is implemented by iterators backed by an indexable sequence.
// Indexes are relative to the next value Next would return.
type RandomAccess[T any] interface {
	Sized
	// Slice returns the remaining values in [i, j), clamped to Len.
	// The result may share storage with the source and must not be modified.
	Slice(i, j int) []T
	// Advance skips up to n values.
	Advance(n int)
}

// Pair holds two values produced together, such as zipped elements or map entries.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Number is the set of types that support addition.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// LenOf returns the remaining length of it when it is Sized.
func LenOf[T any](it Iterator[T]) (int, bool) {
	if s, ok := it.(Sized); ok {
		return s.Len(), true
	}
	return 0, false
}

// Fail returns an iterator whose first Next call reports err.
// Operations that validate arguments lazily use it to surface the error at
// the point of consumption.
func Fail[T any](err error) Iterator[T] {
	return &failIter[T]{err: err}
}

type failIter[T any] struct {
	err  error
	done bool
}

func (it *failIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	it.done = true
	return zero, false, it.err
}

func (it *failIter[T]) Close() error { return nil }
