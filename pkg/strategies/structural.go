/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: structural.go
Description: Structural decomposition strategy for the Greex engine. Splits
every valid string on its non-alphanumeric separators, classifies each
content position with a uniform character class, and reassembles the parts
into a candidate pattern with escaped literal separators.
*/

package strategies

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/kleascm/greex/pkg/analysis"
	"github.com/kleascm/greex/pkg/interfaces"
	"github.com/kleascm/greex/pkg/oracle"
)

// StructuralStrategy proposes patterns of the shape
// content-separator-content-..., derived from a consistent decomposition of
// every valid string.
type StructuralStrategy struct {
	oracle *oracle.MatchOracle
}

// NewStructuralStrategy creates a new structural decomposition strategy
func NewStructuralStrategy(o *oracle.MatchOracle) *StructuralStrategy {
	return &StructuralStrategy{oracle: o}
}

// TryGenerate decomposes the valid strings on their shared separators and
// builds a classified template, or "" when the structure is inconsistent.
func (s *StructuralStrategy) TryGenerate(examples *interfaces.ExampleSet) string {
	if len(examples.Valid) == 0 {
		return ""
	}

	separators := collectSeparators(examples.Valid)
	if len(separators) == 0 {
		return ""
	}

	// Every valid string must carry every separator, otherwise there is no
	// single structure to decompose.
	for _, v := range examples.Valid {
		for _, sep := range separators {
			if !strings.ContainsRune(v, sep) {
				return ""
			}
		}
	}

	// Cheap single-separator shape before full decomposition
	if len(separators) == 1 {
		pattern := "^.+" + string(separators[0]) + ".+$"
		if s.oracle.Validate(pattern, examples.Valid, examples.Invalid) {
			return pattern
		}
	}

	// Tokenize every valid string into interleaved content/separator tokens
	tokens := make([][]string, len(examples.Valid))
	for i, v := range examples.Valid {
		tokens[i] = splitKeepingSeparators(v, separators)
	}

	// The structure must be consistent: same number of parts everywhere
	n := len(tokens[0])
	for _, t := range tokens[1:] {
		if len(t) != n {
			return ""
		}
	}

	fragments := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i%2 == 1 {
			// Separator position: escaped literal text
			fragments = append(fragments, regexp.QuoteMeta(tokens[0][i]))
			continue
		}

		column := make([]string, len(tokens))
		for j, t := range tokens {
			if t[i] == "" {
				return ""
			}
			column[j] = t[i]
		}

		order := analysis.ContentOrder
		if i == 0 && containsSeparator(separators, '@') {
			order = analysis.LeadingContentOrder
		}

		if class, ok := analysis.UniformClass(column, order); ok {
			fragments = append(fragments, class.Fragment())
		} else {
			fragments = append(fragments, analysis.ClassWildcard.Fragment())
		}
	}

	pattern := "^" + strings.Join(fragments, "") + "$"
	if s.oracle.Validate(pattern, examples.Valid, examples.Invalid) {
		return pattern
	}
	return ""
}

// collectSeparators gathers the distinct non-alphanumeric characters across
// all valid strings, in sorted order for deterministic output.
func collectSeparators(values []string) []rune {
	set := make(map[rune]bool)
	for _, v := range values {
		for _, ch := range v {
			if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
				set[ch] = true
			}
		}
	}

	separators := make([]rune, 0, len(set))
	for ch := range set {
		separators = append(separators, ch)
	}
	sort.Slice(separators, func(i, j int) bool { return separators[i] < separators[j] })
	return separators
}

// splitKeepingSeparators tokenizes s into alternating content and separator
// tokens. Content tokens may be empty when separators are adjacent or sit at
// either end of the string; the caller treats empty content as a structural
// mismatch.
func splitKeepingSeparators(s string, separators []rune) []string {
	tokens := make([]string, 0, 8)
	var current strings.Builder
	for _, ch := range s {
		if containsSeparator(separators, ch) {
			tokens = append(tokens, current.String())
			tokens = append(tokens, string(ch))
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}
	tokens = append(tokens, current.String())
	return tokens
}

// containsSeparator reports whether ch is one of the separator runes
func containsSeparator(separators []rune, ch rune) bool {
	for _, sep := range separators {
		if sep == ch {
			return true
		}
	}
	return false
}

// Name returns the name of this strategy
func (s *StructuralStrategy) Name() string {
	return "StructuralStrategy"
}

// Description returns a description of this strategy
func (s *StructuralStrategy) Description() string {
	return "Decomposes valid strings on shared separators and classifies each content position"
}

// Init performs any stateful setup for the strategy
func (s *StructuralStrategy) Init() error { return nil }
