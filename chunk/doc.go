// Package chunk groups the values of a cursor into fixed-size slices.
//
// Three policies decide what happens to a short final group:
//
//   - [Chunk] yields it as is (truncating tail).
//   - [Padded] fills the missing slots with a fill value.
//   - [Exact] drops it.
//
//	groups, err := chunk.Chunk(cursor.Of(1, 2, 3, 4, 5), 2)
//	// [1 2] [3 4] [5]
//
// Sources implementing [cursor.RandomAccess] are cut by index range instead
// of pulling one value at a time. Both strategies produce identical groups;
// [WithStrategy] forces one for testing or benchmarking.
//
// Every yielded group is a fresh slice owned by the caller.
//
// [Sliding] and [Window] produce overlapping or gapped windows.
package chunk
