// Package reduce provides eager, short-circuiting reductions over
// cursor.Iterator values.
//
// Every function pulls only as many values as it needs and closes the
// iterator before returning, so a cursor passed to a reduction must not be
// used again. Errors raised by the source are returned unchanged.
//
// # Querying
//
//	n, err := reduce.Len(ctx, cursor.Of(1, 2, 3))            // 3
//	v, err := reduce.FindFirst(ctx, it, func(x int) bool { return x > 5 })
//	if errors.Is(err, seqerrors.ErrNotFound) { ... }
//
// # Single values
//
// [Single] requires exactly one value. [ToOptional] accepts zero or one and
// reports presence through its boolean result:
//
//	v, ok, err := reduce.ToOptional(ctx, it)
//
// Predicates are always passed explicitly; [Truthy] is the conventional
// default and matches any non-zero value.
package reduce
