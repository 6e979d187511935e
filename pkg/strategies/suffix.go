/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: suffix.go
Description: Common suffix strategy for the Greex engine. Symmetric to the
prefix strategy: anchors the candidate pattern on the longest suffix shared
by every valid string, preceded by one-or-more of anything.
*/

package strategies

import (
	"regexp"
	"unicode/utf8"

	"github.com/kleascm/greex/pkg/analysis"
	"github.com/kleascm/greex/pkg/interfaces"
	"github.com/kleascm/greex/pkg/oracle"
)

// SuffixStrategy proposes "ends with the common suffix" patterns.
type SuffixStrategy struct {
	oracle *oracle.MatchOracle
}

// NewSuffixStrategy creates a new common suffix strategy
func NewSuffixStrategy(o *oracle.MatchOracle) *SuffixStrategy {
	return &SuffixStrategy{oracle: o}
}

// TryGenerate builds a suffix-anchored candidate from the valid set, or ""
// when no non-empty common suffix exists or the candidate fails the oracle.
func (s *SuffixStrategy) TryGenerate(examples *interfaces.ExampleSet) string {
	suffix := analysis.LongestCommonSuffix(examples.Valid)
	if suffix == "" {
		return ""
	}

	escaped := regexp.QuoteMeta(suffix)
	var pattern string
	if runes := []rune(suffix); len(runes) == 1 && utf8.RuneCountInString(escaped) == 1 {
		pattern = "^.+" + string(analysis.LiteralClass(runes[0])) + "$"
	} else {
		quantifier := ".+"
		for _, v := range examples.Valid {
			if len(v) <= len(suffix) {
				quantifier = ".*"
				break
			}
		}
		pattern = "^" + quantifier + escaped + "$"
	}

	if s.oracle.Validate(pattern, examples.Valid, examples.Invalid) {
		return pattern
	}
	return ""
}

// Name returns the name of this strategy
func (s *SuffixStrategy) Name() string {
	return "SuffixStrategy"
}

// Description returns a description of this strategy
func (s *SuffixStrategy) Description() string {
	return "Anchors the pattern on the longest common suffix of the valid strings"
}

// Init performs any stateful setup for the strategy
func (s *SuffixStrategy) Init() error { return nil }
