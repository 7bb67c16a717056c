// Package backing provides the storage backends a Store reads and writes
// through.
package backing

// Key is the key for a key-value pair in the store.
type Key = string

// Backing is an interface by which a Store accesses data in some backend
// datastore. It models a browser-style storage object: a flat list of string
// keys, addressable by index, each holding a single string value.
//
// The association between indexes and keys may change whenever a key is added
// or removed. Callers iterating by index must re-read after any mutation and
// must not cache index positions across writes.
type Backing interface {
	// Len returns the number of keys in the store, across all namespaces.
	Len() (int, error)
	// Key returns the key at the given index. ok is false if there is no key
	// at that index.
	Key(i int) (key Key, ok bool, err error)
	// Get returns the value for the given key. ok is false if the key is not
	// present.
	Get(key Key) (value string, ok bool, err error)
	// Set sets the value for the given key.
	Set(key Key, value string) error
	// Del deletes the key-value pair for the given key.
	Del(key Key) error
}
