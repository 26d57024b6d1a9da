package chunk

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/kbukum/seqkit/cursor"
	seqerrors "github.com/kbukum/seqkit/errors"
)

func collectGroups(t *testing.T, it cursor.Iterator[[]int], err error) [][]int {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
	got, err := cursor.Collect(context.Background(), it)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func groupsEqual(a, b [][]int) bool {
	return slices.EqualFunc(a, b, func(x, y []int) bool { return slices.Equal(x, y) })
}

func seqSource(items []int) cursor.Iterator[int] {
	return cursor.FromSeq(slices.Values(items))
}

func rangeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestChunk_Examples(t *testing.T) {
	tests := []struct {
		name string
		run  func() (cursor.Iterator[[]int], error)
		want [][]int
	}{
		{"chunk", func() (cursor.Iterator[[]int], error) {
			return Chunk(cursor.Of(1, 2, 3, 4, 5), 2)
		}, [][]int{{1, 2}, {3, 4}, {5}}},
		{"padded", func() (cursor.Iterator[[]int], error) {
			return Padded(cursor.Of(1, 2, 3, 4, 5), 2, 0)
		}, [][]int{{1, 2}, {3, 4}, {5, 0}}},
		{"exact", func() (cursor.Iterator[[]int], error) {
			return Exact(cursor.Of(1, 2, 3, 4, 5), 2)
		}, [][]int{{1, 2}, {3, 4}}},
		{"chunk exact fit", func() (cursor.Iterator[[]int], error) {
			return Chunk(cursor.Of(1, 2, 3, 4), 2)
		}, [][]int{{1, 2}, {3, 4}}},
		{"chunk empty", func() (cursor.Iterator[[]int], error) {
			return Chunk(cursor.Empty[int](), 3)
		}, nil},
		{"padded empty", func() (cursor.Iterator[[]int], error) {
			return Padded(cursor.Empty[int](), 3, -1)
		}, nil},
		{"padded fill value", func() (cursor.Iterator[[]int], error) {
			return Padded(cursor.Of(1), 3, -1)
		}, [][]int{{1, -1, -1}}},
		{"exact shorter than n", func() (cursor.Iterator[[]int], error) {
			return Exact(cursor.Of(1, 2), 3)
		}, nil},
		{"chunk pulled source", func() (cursor.Iterator[[]int], error) {
			return Chunk(seqSource([]int{1, 2, 3, 4, 5}), 2)
		}, [][]int{{1, 2}, {3, 4}, {5}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it, err := tc.run()
			got := collectGroups(t, it, err)
			if !groupsEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestChunk_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Chunk(cursor.Of(1), n); !errors.Is(err, seqerrors.ErrInvalidArgument) {
			t.Errorf("Chunk n=%d: expected INVALID_ARGUMENT, got %v", n, err)
		}
		if _, err := Padded(cursor.Of(1), n, 0); !errors.Is(err, seqerrors.ErrInvalidArgument) {
			t.Errorf("Padded n=%d: expected INVALID_ARGUMENT, got %v", n, err)
		}
		if _, err := Exact(cursor.Of(1), n); !errors.Is(err, seqerrors.ErrInvalidArgument) {
			t.Errorf("Exact n=%d: expected INVALID_ARGUMENT, got %v", n, err)
		}
	}
}

func TestChunk_Properties(t *testing.T) {
	for length := 0; length <= 17; length++ {
		s := rangeInts(length)
		for n := 1; n <= 6; n++ {
			t.Run(fmt.Sprintf("len=%d/n=%d", length, n), func(t *testing.T) {
				it, err := Chunk(seqSource(s), n)
				groups := collectGroups(t, it, err)
				if got := slices.Concat(groups...); !slices.Equal(got, s) && !(len(got) == 0 && len(s) == 0) {
					t.Errorf("chunk concat = %v, want %v", got, s)
				}
				for i, g := range groups {
					if i < len(groups)-1 && len(g) != n {
						t.Errorf("group %d has len %d, want %d", i, len(g), n)
					}
					if len(g) == 0 || len(g) > n {
						t.Errorf("group %d has invalid len %d", i, len(g))
					}
				}

				it, err = Padded(seqSource(s), n, -1)
				padded := collectGroups(t, it, err)
				var unpadded []int
				for i, g := range padded {
					if len(g) != n {
						t.Errorf("padded group %d has len %d, want %d", i, len(g), n)
					}
					for _, v := range g {
						if v != -1 {
							unpadded = append(unpadded, v)
						}
					}
				}
				if len(padded) > 0 {
					last := padded[len(padded)-1]
					short := length % n
					if short != 0 {
						for _, v := range last[short:] {
							if v != -1 {
								t.Errorf("padding slot holds %d, want -1", v)
							}
						}
					}
				}
				if !slices.Equal(unpadded, s) && !(len(unpadded) == 0 && len(s) == 0) {
					t.Errorf("padded without fill = %v, want %v", unpadded, s)
				}

				it, err = Exact(seqSource(s), n)
				exact := collectGroups(t, it, err)
				flat := slices.Concat(exact...)
				if len(flat) != length-length%n {
					t.Errorf("exact total = %d, want %d", len(flat), length-length%n)
				}
				if !slices.Equal(flat, s[:len(flat)]) {
					t.Errorf("exact concat %v is not a prefix of %v", flat, s)
				}
			})
		}
	}
}

func TestChunk_StrategyEquivalence(t *testing.T) {
	type build func(it cursor.Iterator[int], n int, opts ...Option) (cursor.Iterator[[]int], error)
	policies := map[string]build{
		"chunk": Chunk[int],
		"padded": func(it cursor.Iterator[int], n int, opts ...Option) (cursor.Iterator[[]int], error) {
			return Padded(it, n, 99, opts...)
		},
		"exact": Exact[int],
	}
	for name, fn := range policies {
		for length := 0; length <= 13; length++ {
			s := rangeInts(length)
			for n := 1; n <= 5; n++ {
				it, err := fn(cursor.FromSlice(s), n, WithStrategy(Slice))
				sliced := collectGroups(t, it, err)
				it, err = fn(cursor.FromSlice(s), n, WithStrategy(Pull))
				pulled := collectGroups(t, it, err)
				it, err = fn(seqSource(s), n, WithStrategy(Slice))
				fallback := collectGroups(t, it, err)
				if !groupsEqual(sliced, pulled) || !groupsEqual(sliced, fallback) {
					t.Errorf("%s len=%d n=%d: slice=%v pull=%v fallback=%v", name, length, n, sliced, pulled, fallback)
				}
			}
		}
	}
}

func TestChunk_GroupsDoNotAliasSource(t *testing.T) {
	src := []int{1, 2, 3, 4}
	it, err := Chunk(cursor.FromSlice(src), 2)
	groups := collectGroups(t, it, err)
	groups[0][0] = 100
	groups[0] = append(groups[0], 200)
	if !slices.Equal(src, []int{1, 2, 3, 4}) {
		t.Errorf("source modified through a chunk: %v", src)
	}
}

func TestChunk_SizedGroups(t *testing.T) {
	tests := []struct {
		name string
		run  func() (cursor.Iterator[[]int], error)
		want int
	}{
		{"chunk", func() (cursor.Iterator[[]int], error) { return Chunk(cursor.FromSlice(rangeInts(7)), 3) }, 3},
		{"padded", func() (cursor.Iterator[[]int], error) { return Padded(cursor.FromSlice(rangeInts(7)), 3, 0) }, 3},
		{"exact", func() (cursor.Iterator[[]int], error) { return Exact(cursor.FromSlice(rangeInts(7)), 3) }, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it, err := tc.run()
			if err != nil {
				t.Fatal(err)
			}
			n, ok := cursor.LenOf(it)
			if !ok || n != tc.want {
				t.Fatalf("LenOf = %d (sized=%v), want %d", n, ok, tc.want)
			}
			got := collectGroups(t, it, nil)
			if len(got) != tc.want {
				t.Errorf("collected %d groups, want %d", len(got), tc.want)
			}
		})
	}

	it, _ := Chunk(seqSource(rangeInts(4)), 2)
	if _, ok := cursor.LenOf(it); ok {
		t.Error("groups over an unsized source must not be Sized")
	}
}

func TestChunk_InfiniteSourceIsLazy(t *testing.T) {
	ctx := context.Background()
	it, err := Chunk(cursor.Count(0, 1), 3)
	if err != nil {
		t.Fatal(err)
	}
	defer it.Close()
	for i := 0; i < 3; i++ {
		g, ok, err := it.Next(ctx)
		if err != nil || !ok {
			t.Fatalf("pull %d failed: %v %v", i, ok, err)
		}
		want := []int{3 * i, 3*i + 1, 3*i + 2}
		if !slices.Equal(g, want) {
			t.Errorf("group %d = %v, want %v", i, g, want)
		}
	}
}

func TestChunk_SourceErrorSurfaces(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	src := cursor.FromFunc(func(_ context.Context) (int, bool, error) {
		calls++
		if calls == 4 {
			return 0, false, boom
		}
		return calls, true, nil
	})
	it, err := Chunk(src, 2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := cursor.Collect(context.Background(), it)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !groupsEqual(got, [][]int{{1, 2}}) {
		t.Errorf("expected groups before the error, got %v", got)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", Auto, false},
		{"auto", Auto, false},
		{"PULL", Pull, false},
		{" slice ", Slice, false},
		{"fast", Auto, true},
	}
	for _, tc := range tests {
		got, err := ParseStrategy(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseStrategy(%q) = %v, %v", tc.in, got, err)
		}
		if err == nil && got.String() != map[Strategy]string{Auto: "auto", Pull: "pull", Slice: "slice"}[got] {
			t.Errorf("String() = %q", got.String())
		}
	}
}
