package nskv

import "encoding/json"

// Serializer converts a value into the string stored in the backing.
// Serializers must be pure: same value in, same string out.
type Serializer[T any] func(value T) string

// Unserializer converts a raw stored string back into a value. found is
// false when the key was missing from the backing; what a missing value
// unserializes to is the codec's decision.
type Unserializer[T any] func(raw string, found bool) T

// JSONCodec builds a serializer/unserializer pair which stores values as
// JSON. Missing or undecodable values unserialize to the zero value of T.
func JSONCodec[T any]() (Serializer[T], Unserializer[T]) {
	serialize := func(value T) string {
		data, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(data)
	}
	unserialize := func(raw string, found bool) T {
		var value T
		if found {
			_ = json.Unmarshal([]byte(raw), &value)
		}
		return value
	}
	return serialize, unserialize
}

// StringCodec builds a serializer/unserializer pair which stores string
// values as-is. Missing values unserialize to the empty string.
func StringCodec() (Serializer[string], Unserializer[string]) {
	serialize := func(value string) string { return value }
	unserialize := func(raw string, found bool) string { return raw }
	return serialize, unserialize
}
