// Package pipeline provides a fluent, single-use wrapper over
// cursor.Iterator for composing lazy sequence operations.
//
// Pipelines are lazy: no work happens until a terminal pulls values.
// Each stage pulls from the previous stage on demand, so infinite sources
// are fine as long as something downstream bounds them.
//
// A Pipeline is single-use. Every transform hands the underlying iterator
// to the pipeline it returns and leaves the receiver spent; every terminal
// consumes it. Touching a spent pipeline fails with
// REUSE_AFTER_CONSUMPTION instead of silently producing nothing.
//
// # Operators
//
// Same-type transforms are methods:
//
//   - Take, TakeWhile, TakeLast, Drop, DropWhile, Slice
//   - Where, WhereNot, Tap, TapErr
//   - Sort, Reverse, Cycle, Prelude, Postlude
//
// Type-changing transforms are functions, since methods cannot add type
// parameters:
//
//   - Map, MapErr, StarMap, FlatMap, Flatten
//   - Chunk, ChunkPadded, ChunkExact, Sliding, Pairs
//   - Zip, ZipLongest, Enumerate, Accumulate
//   - Uniq, UniqFunc, Dedup, DedupFunc, DropElements, DropZero
//   - Product, Permutations, Combinations, CombinationsWithReplacement
//
// # Terminals
//
// Methods: ToList, ToTuple, Count, CountIf, All, Any, Exists, None, Reduce,
// ForEach, Consume, First, FirstOr, Single, ToOptional, FindFirst,
// FindFirstOr, FindFirstNot, IsEmpty, Nth, Seq.
//
// Functions: Fold, ToSet, ToMap, GroupBy, Sum, Max, Min, MaxFunc, MinFunc,
// AllEqual, CountValue, Quantities, Join.
//
// # Usage
//
//	evens := pipeline.Of(1, 2, 3, 4, 5, 6).Where(func(n int) bool { return n%2 == 0 })
//	groups, err := pipeline.Chunk(evens, 2).ToList(ctx)
//	// groups == [[2 4] [6]]
//
// Every terminal, Seq included, runs inside one telemetry span when the
// pipeline has instruments.
//
// Options set on the root pipeline (name, id, logger, instruments, chunk
// strategy) are inherited by everything derived from it. Configure builds
// them from a config.Config.
package pipeline
