/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: prefix.go
Description: Common prefix strategy for the Greex engine. Anchors the
candidate pattern on the longest prefix shared by every valid string,
followed by one-or-more of anything.
*/

package strategies

import (
	"regexp"
	"unicode/utf8"

	"github.com/kleascm/greex/pkg/analysis"
	"github.com/kleascm/greex/pkg/interfaces"
	"github.com/kleascm/greex/pkg/oracle"
)

// PrefixStrategy proposes "starts with the common prefix" patterns.
// A single-character prefix is rendered as an exact-character set rather
// than a bare escape, matching conventional regex style.
type PrefixStrategy struct {
	oracle *oracle.MatchOracle
}

// NewPrefixStrategy creates a new common prefix strategy
func NewPrefixStrategy(o *oracle.MatchOracle) *PrefixStrategy {
	return &PrefixStrategy{oracle: o}
}

// TryGenerate builds a prefix-anchored candidate from the valid set, or ""
// when no non-empty common prefix exists or the candidate fails the oracle.
func (s *PrefixStrategy) TryGenerate(examples *interfaces.ExampleSet) string {
	prefix := analysis.LongestCommonPrefix(examples.Valid)
	if prefix == "" {
		return ""
	}

	escaped := regexp.QuoteMeta(prefix)
	var pattern string
	if runes := []rune(prefix); len(runes) == 1 && utf8.RuneCountInString(escaped) == 1 {
		pattern = "^" + string(analysis.LiteralClass(runes[0])) + ".+$"
	} else {
		// ".*" only when some valid string is exactly the prefix
		quantifier := ".+"
		for _, v := range examples.Valid {
			if len(v) <= len(prefix) {
				quantifier = ".*"
				break
			}
		}
		pattern = "^" + escaped + quantifier + "$"
	}

	if s.oracle.Validate(pattern, examples.Valid, examples.Invalid) {
		return pattern
	}
	return ""
}

// Name returns the name of this strategy
func (s *PrefixStrategy) Name() string {
	return "PrefixStrategy"
}

// Description returns a description of this strategy
func (s *PrefixStrategy) Description() string {
	return "Anchors the pattern on the longest common prefix of the valid strings"
}

// Init performs any stateful setup for the strategy
func (s *PrefixStrategy) Init() error { return nil }
