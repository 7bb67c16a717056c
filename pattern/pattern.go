// Package pattern compiles dot-segmented wildcard patterns into key matchers.
//
// A pattern is a sequence of segments separated by dots. Each segment is
// either the wildcard "*", which matches exactly one whole segment of a
// candidate key, or a literal run of characters. "cars.*.large" matches
// "cars.bmw.large" but not "cars.large" or "cars.bmw.xl.large": a wildcard
// never spans zero segments and never part of one.
package pattern

import (
	"regexp"
	"strings"
)

// wildcard is the segment that matches any single whole segment of a key.
const wildcard = "*"

// Matcher reports whether candidate keys match a compiled pattern.
type Matcher struct {
	re *regexp.Regexp
}

// Match returns true if the key has the same number of dot-separated
// segments as the pattern and each segment matches its counterpart.
func (m Matcher) Match(key string) bool {
	return m.re.MatchString(key)
}

// Compile builds a Matcher from a pattern. ok is false if the pattern is
// malformed: empty, containing an empty segment ("cars..large", ".cars",
// "cars."), or with a wildcard embedded inside a literal segment ("ca*rs").
// A wildcard must occupy a whole segment by itself.
func Compile(p string) (m Matcher, ok bool) {
	if p == "" {
		return Matcher{}, false
	}
	segs := strings.Split(p, ".")
	parts := make([]string, len(segs))
	for i, seg := range segs {
		if seg == wildcard {
			parts[i] = "[^.]+"
			continue
		}
		if seg == "" || strings.Contains(seg, wildcard) {
			return Matcher{}, false
		}
		parts[i] = regexp.QuoteMeta(seg)
	}
	re, err := regexp.Compile("^" + strings.Join(parts, `\.`) + "$")
	if err != nil {
		return Matcher{}, false
	}
	return Matcher{re}, true
}
