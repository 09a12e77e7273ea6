// Package dedup holds the in-memory set of canonical link keys that have
// already been persisted. It is seeded once at startup from the record store
// and updated only after a successful append, so membership always trails
// durable state, never leads it.
package dedup

// Set is a membership cache over canonical identity keys.
// It is not safe for concurrent use; the pipeline is single-threaded.
type Set struct {
	keys map[string]struct{}
}

// NewSet creates a Set seeded with the given keys.
func NewSet(keys []string) *Set {
	s := &Set{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// Contains reports whether key has been persisted.
func (s *Set) Contains(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Add records key as persisted. Call only after the corresponding record has
// been durably appended.
func (s *Set) Add(key string) {
	s.keys[key] = struct{}{}
}

// Len returns the number of known keys.
func (s *Set) Len() int {
	return len(s.keys)
}
