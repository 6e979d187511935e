/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategies_test.go
Description: Unit tests for the pattern generation strategies. Covers each
strategy's candidate shape, its refusal cases, metacharacter escaping, and
the structural decomposition edge cases.
*/

package strategies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kleascm/greex/pkg/interfaces"
	"github.com/kleascm/greex/pkg/oracle"
	"github.com/kleascm/greex/pkg/strategies"
)

func newSet(valid, invalid []string) *interfaces.ExampleSet {
	return interfaces.NewExampleSet(valid, invalid)
}

// --- Uniform character class ---

func TestCharClassStrategyDigits(t *testing.T) {
	s := strategies.NewCharClassStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"12", "34"}, []string{"ab"}))
	assert.Equal(t, `^\d+$`, pattern)
}

func TestCharClassStrategyNonDigits(t *testing.T) {
	s := strategies.NewCharClassStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"abc", "def"}, []string{"123", "456"}))
	assert.Equal(t, `^\D+$`, pattern)
}

func TestCharClassStrategyNoDiscrimination(t *testing.T) {
	s := strategies.NewCharClassStrategy(oracle.NewMatchOracle())
	// Every class covering the valid side covers the invalid side too
	pattern := s.TryGenerate(newSet([]string{"abc"}, []string{"def"}))
	assert.Equal(t, "", pattern)
}

// --- Common prefix ---

func TestPrefixStrategySingleCharacter(t *testing.T) {
	s := strategies.NewPrefixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"aaa", "abb", "acc"}, []string{"bbb", "bcc", "bca"}))
	assert.Equal(t, `^[a].+$`, pattern)
}

func TestPrefixStrategySingleMultibyteCharacter(t *testing.T) {
	s := strategies.NewPrefixStrategy(oracle.NewMatchOracle())
	// A single multi-byte character still renders as an exact-character set
	pattern := s.TryGenerate(newSet([]string{"éa", "éb"}, []string{"xa"}))
	assert.Equal(t, `^[é].+$`, pattern)
}

func TestPrefixStrategyMultiCharacter(t *testing.T) {
	s := strategies.NewPrefixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"foo1", "foo2"}, []string{"bar1"}))
	assert.Equal(t, `^foo.+$`, pattern)
}

func TestPrefixStrategyExactPrefixString(t *testing.T) {
	s := strategies.NewPrefixStrategy(oracle.NewMatchOracle())
	// One valid string is exactly the prefix, so the tail may be empty
	pattern := s.TryGenerate(newSet([]string{"foo", "foob"}, []string{"bar"}))
	assert.Equal(t, `^foo.*$`, pattern)
}

func TestPrefixStrategyEscapesMetacharacters(t *testing.T) {
	s := strategies.NewPrefixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"(a)", "(b)"}, []string{"a", "b"}))
	assert.Equal(t, `^\(.+$`, pattern)
}

func TestPrefixStrategyNoCommonPrefix(t *testing.T) {
	s := strategies.NewPrefixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"abc", "xyz"}, []string{"q"}))
	assert.Equal(t, "", pattern)
}

// --- Common suffix ---

func TestSuffixStrategySingleCharacter(t *testing.T) {
	s := strategies.NewSuffixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"abc1", "bbb1", "ccc1"}, []string{"abc", "bbb", "ccc"}))
	assert.Equal(t, `^.+[1]$`, pattern)
}

func TestSuffixStrategySingleMultibyteCharacter(t *testing.T) {
	s := strategies.NewSuffixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"aé", "bé"}, []string{"ax"}))
	assert.Equal(t, `^.+[é]$`, pattern)
}

func TestSuffixStrategyMultiCharacter(t *testing.T) {
	s := strategies.NewSuffixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"hating", "mating"}, []string{"hatred"}))
	assert.Equal(t, `^.+ating$`, pattern)
}

func TestSuffixStrategyEscapesMetacharacters(t *testing.T) {
	s := strategies.NewSuffixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"a.b", "c.b"}, []string{"axb"}))
	assert.Equal(t, `^.+\.b$`, pattern)
}

func TestSuffixStrategyNoCommonSuffix(t *testing.T) {
	s := strategies.NewSuffixStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"abc", "xyz"}, []string{"q"}))
	assert.Equal(t, "", pattern)
}

// --- Distinguishing character ---

func TestContainsStrategySeparatorEmittedRaw(t *testing.T) {
	s := strategies.NewContainsStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet(
		[]string{"abc-1", "bbb-1", "cde-1"},
		[]string{"abc1", "bbb1", "cde1"},
	))
	assert.Equal(t, `^.+-.+$`, pattern)
}

func TestContainsStrategyRequiresSurroundingText(t *testing.T) {
	s := strategies.NewContainsStrategy(oracle.NewMatchOracle())
	// "1" only appears at the end of each valid string, so the
	// anything-char-anything shape cannot fully match them
	pattern := s.TryGenerate(newSet([]string{"abc1", "bbb1"}, []string{"abc"}))
	assert.Equal(t, "", pattern)
}

func TestContainsStrategyNoDistinguishingCharacter(t *testing.T) {
	s := strategies.NewContainsStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"abc"}, []string{"cba"}))
	assert.Equal(t, "", pattern)
}

// --- Structural decomposition ---

func TestStructuralStrategyEmailShape(t *testing.T) {
	s := strategies.NewStructuralStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet(
		[]string{"foo@abc.com", "bar@def.net"},
		[]string{"baz@abc", "qux.com"},
	))
	assert.Equal(t, `^\D+@\w+\.\w+$`, pattern)
}

func TestStructuralStrategySingleSeparatorShape(t *testing.T) {
	s := strategies.NewStructuralStrategy(oracle.NewMatchOracle())
	// The cheap anything-separator-anything shape already discriminates
	pattern := s.TryGenerate(newSet([]string{"abc-1", "bbb-1"}, []string{"abc1"}))
	assert.Equal(t, `^.+-.+$`, pattern)
}

func TestStructuralStrategyNoSeparators(t *testing.T) {
	s := strategies.NewStructuralStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"abc", "def"}, []string{"123"}))
	assert.Equal(t, "", pattern)
}

func TestStructuralStrategySeparatorMissingFromSomeValid(t *testing.T) {
	s := strategies.NewStructuralStrategy(oracle.NewMatchOracle())
	pattern := s.TryGenerate(newSet([]string{"a-b", "ab"}, []string{"x"}))
	assert.Equal(t, "", pattern)
}

func TestStructuralStrategyInconsistentPartCount(t *testing.T) {
	s := strategies.NewStructuralStrategy(oracle.NewMatchOracle())
	// Cheap shape fails against "x-y", and the decomposition is inconsistent
	pattern := s.TryGenerate(newSet([]string{"a-b", "a-b-c"}, []string{"x-y"}))
	assert.Equal(t, "", pattern)
}

func TestStructuralStrategyWildcardFallback(t *testing.T) {
	s := strategies.NewStructuralStrategy(oracle.NewMatchOracle())
	// Leading parts mix digits with non-ASCII letters, defeating every
	// content class, so the position falls back to the wildcard fragment
	pattern := s.TryGenerate(newSet(
		[]string{"é1@ab", "ø2@cd"},
		[]string{"ab@é1"},
	))
	assert.Equal(t, `^.+@\w+$`, pattern)
}
