/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: charclass_test.go
Description: Unit tests for the character class classifier. Covers uniform
class selection, class priority ordering, literal single-character classes,
and the mandatory whole-sequence uniformity invariant.
*/

package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/greex/pkg/analysis"
)

func TestCharClassFragment(t *testing.T) {
	assert.Equal(t, `\d+`, analysis.ClassDigit.Fragment())
	assert.Equal(t, `[a-z]+`, analysis.ClassLower.Fragment())
	assert.Equal(t, `.+`, analysis.ClassWildcard.Fragment())
}

func TestCharClassHolds(t *testing.T) {
	assert.True(t, analysis.ClassDigit.Holds([]string{"123", "456"}))
	assert.True(t, analysis.ClassNonDigit.Holds([]string{"abc", "x-y"}))
	assert.True(t, analysis.ClassWord.Holds([]string{"abc1", "x_2"}))
	assert.True(t, analysis.ClassUpper.Holds([]string{"ABC"}))

	assert.False(t, analysis.ClassDigit.Holds([]string{"12a"}))
	assert.False(t, analysis.ClassWord.Holds([]string{"a-b"}))
	assert.False(t, analysis.ClassLower.Holds([]string{"abc", "aBc"}))
}

func TestCharClassHoldsRequiresNonEmpty(t *testing.T) {
	// A class never holds over an empty sequence or an empty string
	assert.False(t, analysis.ClassDigit.Holds(nil))
	assert.False(t, analysis.ClassDigit.Holds([]string{}))
	assert.False(t, analysis.ClassDigit.Holds([]string{"123", ""}))
}

func TestUniformClassPriority(t *testing.T) {
	// Whole-string order probes digit before non-digit
	class, ok := analysis.UniformClass([]string{"123", "456"}, analysis.WholeStringOrder)
	require.True(t, ok)
	assert.Equal(t, analysis.ClassDigit, class)

	class, ok = analysis.UniformClass([]string{"abc", "def"}, analysis.WholeStringOrder)
	require.True(t, ok)
	assert.Equal(t, analysis.ClassNonDigit, class)

	// Content order probes word first, so digit-only parts still classify as word
	class, ok = analysis.UniformClass([]string{"12", "34"}, analysis.ContentOrder)
	require.True(t, ok)
	assert.Equal(t, analysis.ClassWord, class)

	// Leading content order prefers non-digit over word
	class, ok = analysis.UniformClass([]string{"foo", "bar"}, analysis.LeadingContentOrder)
	require.True(t, ok)
	assert.Equal(t, analysis.ClassNonDigit, class)
}

func TestUniformClassUniformityMandatory(t *testing.T) {
	// A class holding for only a subset of the inputs is never returned
	_, ok := analysis.UniformClass([]string{"123", "abc"}, []analysis.CharClass{analysis.ClassDigit, analysis.ClassLower})
	assert.False(t, ok)
}

func TestUniformClassNoneApplies(t *testing.T) {
	// Mixed digit and non-ASCII-word content defeats every content class
	_, ok := analysis.UniformClass([]string{"é1"}, analysis.ContentOrder)
	assert.False(t, ok)
}

func TestLiteralClass(t *testing.T) {
	assert.Equal(t, analysis.CharClass("[a]"), analysis.LiteralClass('a'))
	assert.Equal(t, analysis.CharClass("[1]"), analysis.LiteralClass('1'))
	// Metacharacters stay literal inside the set
	assert.Equal(t, analysis.CharClass(`[\.]`), analysis.LiteralClass('.'))
}

func TestUniformLiteral(t *testing.T) {
	class, ok := analysis.UniformLiteral([]string{"a", "a", "a"})
	require.True(t, ok)
	assert.Equal(t, analysis.CharClass("[a]"), class)

	_, ok = analysis.UniformLiteral([]string{"a", "b"})
	assert.False(t, ok)

	_, ok = analysis.UniformLiteral([]string{"ab"})
	assert.False(t, ok)

	_, ok = analysis.UniformLiteral(nil)
	assert.False(t, ok)
}
