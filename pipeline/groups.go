package pipeline

import (
	"iter"
	"slices"
)

// Groups is the result of GroupBy.
type Groups[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

func newGroups[K comparable, T any]() *Groups[K, T] {
	return &Groups[K, T]{groups: make(map[K][]T)}
}

func (g *Groups[K, T]) add(k K, v T) {
	if _, ok := g.groups[k]; !ok {
		g.keys = append(g.keys, k)
	}
	g.groups[k] = append(g.groups[k], v)
}

// Len returns the number of groups.
func (g *Groups[K, T]) Len() int { return len(g.keys) }

// Keys returns the keys in first-seen order.
func (g *Groups[K, T]) Keys() []K { return slices.Clone(g.keys) }

// Get returns the values grouped under k.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	vs, ok := g.groups[k]
	return slices.Clone(vs), ok
}

// All iterates the groups in first-seen key order.
func (g *Groups[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for _, k := range g.keys {
			if !yield(k, slices.Clone(g.groups[k])) {
				return
			}
		}
	}
}

// Map returns the groups as a plain map.
func (g *Groups[K, T]) Map() map[K][]T {
	m := make(map[K][]T, len(g.groups))
	for k, vs := range g.groups {
		m[k] = slices.Clone(vs)
	}
	return m
}
