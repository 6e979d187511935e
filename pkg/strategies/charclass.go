/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: charclass.go
Description: Uniform character class strategy for the Greex engine. Proposes
whole-string patterns of the form "one or more of class X", probing classes
from most specific to most general.
*/

package strategies

import (
	"github.com/kleascm/greex/pkg/analysis"
	"github.com/kleascm/greex/pkg/interfaces"
	"github.com/kleascm/greex/pkg/oracle"
)

// CharClassStrategy proposes a pattern built from a single uniform character
// class covering every valid string end to end.
type CharClassStrategy struct {
	oracle *oracle.MatchOracle
}

// NewCharClassStrategy creates a new uniform character class strategy
func NewCharClassStrategy(o *oracle.MatchOracle) *CharClassStrategy {
	return &CharClassStrategy{oracle: o}
}

// TryGenerate probes each character class in priority order and returns the
// first whole-string candidate that discriminates the example sets.
func (s *CharClassStrategy) TryGenerate(examples *interfaces.ExampleSet) string {
	for _, class := range analysis.WholeStringOrder {
		pattern := "^" + class.Fragment() + "$"
		if s.oracle.Validate(pattern, examples.Valid, examples.Invalid) {
			return pattern
		}
	}
	return ""
}

// Name returns the name of this strategy
func (s *CharClassStrategy) Name() string {
	return "CharClassStrategy"
}

// Description returns a description of this strategy
func (s *CharClassStrategy) Description() string {
	return "Matches every valid string as one-or-more of a single uniform character class"
}

// Init performs any stateful setup for the strategy
func (s *CharClassStrategy) Init() error { return nil }
