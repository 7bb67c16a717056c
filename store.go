package nskv

import (
	"fmt"
	"strings"

	"github.com/mplewis/nskv/pattern"
)

// Store provides namespaced, serializing access to a Backing. Every key is
// stored under "namespace.key", so stores with different namespaces share
// one backing without colliding.
//
// A Store performs no locking. The backing is assumed to be synchronous and
// single-threaded; mutating it from elsewhere while an enumeration (Keys,
// FindKeys, Clear) is in progress is undefined behavior.
type Store[T any] struct {
	backing     Backing
	namespace   string
	prefix      string // namespace + "."
	serialize   Serializer[T]
	unserialize Unserializer[T]
}

// Args are the arguments for a new Store.
type Args[T any] struct {
	Backing     Backing         // Required. The backend for this store, where the data lives and is accessed.
	Namespace   string          // Required. The namespace prefixed to all keys. Must not contain a dot.
	Serialize   Serializer[T]   // Required. Converts values into the strings stored in the backing.
	Unserialize Unserializer[T] // Required. Converts stored strings back into values.
}

// New builds a new Store.
func New[T any](args Args[T]) (*Store[T], error) {
	if args.Backing == nil {
		return nil, fmt.Errorf("nskv: backing is required")
	}
	if args.Serialize == nil || args.Unserialize == nil {
		return nil, fmt.Errorf("nskv: serialize and unserialize are required")
	}
	if args.Namespace == "" {
		return nil, fmt.Errorf("nskv: namespace must not be empty")
	}
	if strings.Contains(args.Namespace, ".") {
		// Logical keys are derived by splitting physical keys on the first
		// dot, so a dotted namespace would corrupt every derivation.
		return nil, fmt.Errorf("nskv: namespace %q must not contain a dot", args.Namespace)
	}
	return &Store[T]{
		backing:     args.Backing,
		namespace:   args.Namespace,
		prefix:      args.Namespace + ".",
		serialize:   args.Serialize,
		unserialize: args.Unserialize,
	}, nil
}

// ns prepends the namespace prefix to the given key.
func (s *Store[T]) ns(key Key) string {
	return s.prefix + key
}

// logical derives the logical key from a physical key, or nil if the
// physical key does not belong to this store's namespace. The namespace
// cannot contain a dot, so the first dot in the physical key is always the
// namespace separator.
func (s *Store[T]) logical(physical string) *Key {
	if !strings.HasPrefix(physical, s.prefix) {
		return nil
	}
	key := physical[strings.IndexByte(physical, '.')+1:]
	return &key
}

// Size returns the total number of entries in the entire backing, across
// ALL namespaces, not just this store's. Callers wanting a per-namespace
// count should count the non-nil entries of Keys instead.
func (s *Store[T]) Size() (int, error) {
	return s.backing.Len()
}

// Set serializes value and writes it under key in this store's namespace.
func (s *Store[T]) Set(key Key, value T) error {
	return s.backing.Set(s.ns(key), s.serialize(value))
}

// Get reads the raw value for key and passes it through the unserializer. A
// missing key is handed to the unserializer as found=false; what that
// unserializes to is the codec's decision.
func (s *Store[T]) Get(key Key) (T, error) {
	raw, found, err := s.backing.Get(s.ns(key))
	if err != nil {
		var zero T
		return zero, err
	}
	return s.unserialize(raw, found), nil
}

// Remove deletes the value for key from this store's namespace.
func (s *Store[T]) Remove(key Key) error {
	return s.backing.Del(s.ns(key))
}

// KeyAt returns the logical key at the given backing index, or nil if the
// index holds no key or holds a key outside this store's namespace. The
// index-to-key mapping belongs to the backing and may change across
// mutations; do not cache it.
func (s *Store[T]) KeyAt(i int) (*Key, error) {
	physical, ok, err := s.backing.Key(i)
	if err != nil || !ok {
		return nil, err
	}
	return s.logical(physical), nil
}

// Keys returns the logical key at every backing index, in backing order.
// This is a raw positional mapping, not a filtered list: entries for keys
// outside this store's namespace are nil, and indexes line up with the
// backing's own. Callers wanting only this namespace's keys must filter out
// the nils themselves.
func (s *Store[T]) Keys() ([]*Key, error) {
	size, err := s.backing.Len()
	if err != nil {
		return nil, err
	}
	keys := make([]*Key, size)
	for i := 0; i < size; i++ {
		key, err := s.KeyAt(i)
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}

// FindKeys returns every logical key in this store's namespace matching the
// given wildcard pattern, in backing order. Patterns are dot-segmented; "*"
// matches exactly one whole segment, so "cars.*.large" matches
// "cars.bmw.large" but not "cars.large" or "cars.bmw.xl.large". A malformed
// pattern fails with an InvalidPatternError before any enumeration happens.
func (s *Store[T]) FindKeys(p string) ([]Key, error) {
	m, compiled := pattern.Compile(p)
	if !compiled {
		return nil, InvalidPatternError{Pattern: p}
	}
	size, err := s.backing.Len()
	if err != nil {
		return nil, err
	}
	found := []Key{}
	for i := 0; i < size; i++ {
		physical, ok, err := s.backing.Key(i)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		key := s.logical(physical)
		if key == nil || !m.Match(*key) {
			continue
		}
		found = append(found, *key)
	}
	return found, nil
}

// Clear removes every key in this store's namespace. Other namespaces in the
// backing are untouched. The candidate list is snapshotted before the first
// removal, so a backing that renumbers its indexes mid-clear cannot cause
// entries to be skipped or deleted twice.
func (s *Store[T]) Clear() error {
	keys, err := s.Keys()
	if err != nil {
		return err
	}
	snapshot := []Key{}
	for _, key := range keys {
		if key != nil {
			snapshot = append(snapshot, *key)
		}
	}
	for _, key := range snapshot {
		if err := s.Remove(key); err != nil {
			return err
		}
	}
	return nil
}
