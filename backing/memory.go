package backing

import (
	"github.com/thoas/go-funk"
)

// Memory stores data in process memory. Keys iterate in insertion order;
// overwriting a key keeps its position. Memory never returns an error.
type Memory struct {
	keys []Key
	data map[Key]string
}

// NewMemory creates a new, empty in-memory backing.
func NewMemory() *Memory {
	return &Memory{data: map[Key]string{}}
}

// Len returns the number of keys in the store.
func (m *Memory) Len() (int, error) {
	return len(m.keys), nil
}

// Key returns the key at the given index.
func (m *Memory) Key(i int) (Key, bool, error) {
	if i < 0 || i >= len(m.keys) {
		return "", false, nil
	}
	return m.keys[i], true, nil
}

// Get returns the value for the given key.
func (m *Memory) Get(key Key) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

// Set sets the value for the given key.
func (m *Memory) Set(key Key, value string) error {
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = value
	return nil
}

// Del deletes the key-value pair for the given key. Keys after it shift down
// one index.
func (m *Memory) Del(key Key) error {
	if _, ok := m.data[key]; !ok {
		return nil
	}
	i := funk.IndexOf(m.keys, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	delete(m.data, key)
	return nil
}
