/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: contains.go
Description: Distinguishing character strategy for the Greex engine. Searches
for a single character present in every valid string and absent from every
invalid string, and builds an "anything, character, anything" pattern.
*/

package strategies

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/kleascm/greex/pkg/interfaces"
	"github.com/kleascm/greex/pkg/oracle"
)

// ContainsStrategy proposes patterns keyed on one distinguishing character.
// Non-alphanumeric separators are emitted raw, matching conventional
// unescaped separator usage.
type ContainsStrategy struct {
	oracle *oracle.MatchOracle
}

// NewContainsStrategy creates a new distinguishing character strategy
func NewContainsStrategy(o *oracle.MatchOracle) *ContainsStrategy {
	return &ContainsStrategy{oracle: o}
}

// TryGenerate scans the characters of the first valid string in order (first
// occurrence only, so output is deterministic) for one that every valid
// string contains and no invalid string does.
func (s *ContainsStrategy) TryGenerate(examples *interfaces.ExampleSet) string {
	if len(examples.Valid) == 0 {
		return ""
	}

	seen := make(map[rune]bool)
	for _, ch := range examples.Valid[0] {
		if seen[ch] {
			continue
		}
		seen[ch] = true

		if !containedInAll(examples.Valid, ch) || containedInAny(examples.Invalid, ch) {
			continue
		}

		literal := string(ch)
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			literal = regexp.QuoteMeta(literal)
		}
		pattern := "^.+" + literal + ".+$"
		if s.oracle.Validate(pattern, examples.Valid, examples.Invalid) {
			return pattern
		}
	}
	return ""
}

// containedInAll reports whether ch appears in every string
func containedInAll(values []string, ch rune) bool {
	for _, s := range values {
		if !strings.ContainsRune(s, ch) {
			return false
		}
	}
	return true
}

// containedInAny reports whether ch appears in at least one string
func containedInAny(values []string, ch rune) bool {
	for _, s := range values {
		if strings.ContainsRune(s, ch) {
			return true
		}
	}
	return false
}

// Name returns the name of this strategy
func (s *ContainsStrategy) Name() string {
	return "ContainsStrategy"
}

// Description returns a description of this strategy
func (s *ContainsStrategy) Description() string {
	return "Keys the pattern on a single character present in every valid string and no invalid one"
}

// Init performs any stateful setup for the strategy
func (s *ContainsStrategy) Init() error { return nil }
