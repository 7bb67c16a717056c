package nskv

import "fmt"

// InvalidPatternError is the error returned by FindKeys when the supplied
// pattern cannot be compiled: it is empty, contains an empty segment, or has
// a wildcard embedded inside a literal segment.
type InvalidPatternError struct {
	Pattern string
}

// Error converts an InvalidPatternError into a human-readable string.
func (e InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid key pattern: %q", e.Pattern)
}
