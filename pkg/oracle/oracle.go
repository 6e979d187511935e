/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: oracle.go
Description: Match oracle for the Greex engine. Decides whether a candidate
pattern, interpreted with full-string match semantics, accepts every valid
example and rejects every invalid one. Malformed candidates are absorbed as
rejections so the engine can probe edge-case patterns cheaply.
*/

package oracle

import (
	"regexp"
)

// MatchOracle validates candidate patterns against labeled example sets.
// All matching is anchored: the entire input must satisfy the pattern,
// substring hits do not count.
type MatchOracle struct{}

// NewMatchOracle creates a new match oracle instance
func NewMatchOracle() *MatchOracle {
	return &MatchOracle{}
}

// compile wraps the candidate so that matching covers the whole input.
// Candidates usually carry their own ^...$ anchors; the \A(?:...)\z wrapper
// keeps full-match semantics even when they do not.
func (o *MatchOracle) compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern + `)\z`)
}

// FullMatch reports whether the pattern fully matches s.
// A malformed pattern is treated as a non-match.
func (o *MatchOracle) FullMatch(pattern string, s string) bool {
	re, err := o.compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// Validate returns true iff every valid string fully matches the pattern and
// no invalid string does. A pattern that fails to compile is an automatic
// rejection, never an error: the engine relies on this to try speculative
// candidates without guarding each one.
func (o *MatchOracle) Validate(pattern string, valid []string, invalid []string) bool {
	re, err := o.compile(pattern)
	if err != nil {
		return false
	}

	for _, s := range valid {
		if !re.MatchString(s) {
			return false
		}
	}
	for _, s := range invalid {
		if re.MatchString(s) {
			return false
		}
	}

	return true
}
