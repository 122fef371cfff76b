// Package cache provides an in-process memo table with tag-based
// invalidation for read-through catalog lookups.
package cache

import "sync"

// Store memoizes fetch results under string keys. Each key belongs to one
// tag; invalidating a tag drops every key under it. One entry per distinct
// key — entries are never shared across variants.
type Store struct {
	mu      sync.Mutex
	entries map[string]any
	tags    map[string]map[string]struct{} // tag -> keys holding it
	gens    map[string]uint64              // tag -> invalidation generation
	guards  map[string]*sync.Mutex         // key -> populate guard
}

func New() *Store {
	return &Store{
		entries: make(map[string]any),
		tags:    make(map[string]map[string]struct{}),
		gens:    make(map[string]uint64),
		guards:  make(map[string]*sync.Mutex),
	}
}

// GetOrFetch returns the cached value for key, or runs fetch and stores the
// result under key/tag. Concurrent misses for the same key serialize on a
// per-key guard so the store is queried once. A fetch that started before an
// Invalidate of the same tag must not repopulate the cache afterwards; the
// generation check enforces that.
func (s *Store) GetOrFetch(key, tag string, fetch func() (any, error)) (any, error) {
	s.mu.Lock()
	if v, ok := s.entries[key]; ok {
		s.mu.Unlock()
		return v, nil
	}
	guard, ok := s.guards[key]
	if !ok {
		guard = &sync.Mutex{}
		s.guards[key] = guard
	}
	s.mu.Unlock()

	guard.Lock()
	defer guard.Unlock()

	s.mu.Lock()
	if v, ok := s.entries[key]; ok {
		s.mu.Unlock()
		return v, nil
	}
	gen := s.gens[tag]
	s.mu.Unlock()

	v, err := fetch()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gens[tag] == gen {
		s.entries[key] = v
		keys := s.tags[tag]
		if keys == nil {
			keys = make(map[string]struct{})
			s.tags[tag] = keys
		}
		keys[key] = struct{}{}
	}
	s.mu.Unlock()
	return v, nil
}

// Invalidate drops every entry tagged with tag, regardless of variant, and
// bumps the tag generation so in-flight fetches cannot write stale data back.
func (s *Store) Invalidate(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[tag]++
	for key := range s.tags[tag] {
		delete(s.entries, key)
	}
	delete(s.tags, tag)
}

// Len reports the number of live entries
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// GetOrFetch is the typed wrapper around Store.GetOrFetch
func GetOrFetch[T any](s *Store, key, tag string, fetch func() (T, error)) (T, error) {
	v, err := s.GetOrFetch(key, tag, func() (any, error) {
		return fetch()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
