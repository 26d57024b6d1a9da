// Package cursor defines the single-pass pull protocol every seqkit
// component is built on, and adapts common Go sources to it.
//
// An [Iterator] hands out one value per Next call and reports exhaustion
// with ok=false instead of an in-band marker value, so zero values and nil
// pointers are ordinary data. Iterators cannot be rewound. Whoever holds an
// Iterator owns it: passing it to another function moves it, and the final
// owner must Close it.
//
// # Capabilities
//
// Sources may expose optional capabilities that consumers probe with a type
// assertion:
//
//   - [Sized]: the number of remaining values is known in O(1).
//   - [RandomAccess]: remaining values can be sliced by index, which lets the
//     chunk package cut groups without pulling one value at a time.
//
// # Sources
//
//	it := cursor.FromSlice([]int{1, 2, 3})      // Sized, RandomAccess
//	it := cursor.FromSeq(slices.Values(items))  // any iter.Seq
//	it := cursor.Count(0, 1)                    // infinite
//
// # Consumers
//
//	vals, err := cursor.Collect(ctx, it)
//	for v := range cursor.Seq(ctx, it) { ... }
package cursor
