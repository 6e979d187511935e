/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: charclass.go
Description: Character class classification for the Greex engine. Maps string
sequences to the most specific uniform character class they all satisfy, with
literal single-character classes and a wildcard fallback for the strategies.
*/

package analysis

import (
	"regexp"
)

// CharClass represents a regex character class fragment used as a building
// block for candidate patterns.
type CharClass string

const (
	ClassDigit    CharClass = `\d`
	ClassNonDigit CharClass = `\D`
	ClassWord     CharClass = `\w`
	ClassNonWord  CharClass = `\W`
	ClassLower    CharClass = `[a-z]`
	ClassUpper    CharClass = `[A-Z]`
	ClassLetter   CharClass = `[a-zA-Z]`
	ClassWildcard CharClass = `.`
)

// Fragment returns the one-or-more pattern fragment for this class
func (c CharClass) Fragment() string {
	return string(c) + "+"
}

// WholeStringOrder is the class priority for whole-string classification,
// most specific first. The uniform character class strategy probes these in
// order and keeps the first that discriminates.
var WholeStringOrder = []CharClass{
	ClassDigit,
	ClassNonDigit,
	ClassWord,
	ClassNonWord,
	ClassLower,
	ClassUpper,
	ClassLetter,
}

// ContentOrder is the class priority for content parts produced by
// structural decomposition.
var ContentOrder = []CharClass{
	ClassWord,
	ClassNonDigit,
	ClassLower,
	ClassUpper,
	ClassDigit,
}

// LeadingContentOrder is the class priority for a leading content part that
// sits next to an "@" separator. Username-like parts prefer the non-digit
// class before falling back to the word class.
var LeadingContentOrder = []CharClass{
	ClassNonDigit,
	ClassWord,
	ClassLower,
	ClassUpper,
	ClassDigit,
}

// classMatchers holds a precompiled full matcher per class fragment
var classMatchers = map[CharClass]*regexp.Regexp{
	ClassDigit:    regexp.MustCompile(`\A\d+\z`),
	ClassNonDigit: regexp.MustCompile(`\A\D+\z`),
	ClassWord:     regexp.MustCompile(`\A\w+\z`),
	ClassNonWord:  regexp.MustCompile(`\A\W+\z`),
	ClassLower:    regexp.MustCompile(`\A[a-z]+\z`),
	ClassUpper:    regexp.MustCompile(`\A[A-Z]+\z`),
	ClassLetter:   regexp.MustCompile(`\A[a-zA-Z]+\z`),
	ClassWildcard: regexp.MustCompile(`\A.+\z`),
}

// Holds reports whether every string in the sequence consists entirely of
// one or more characters of this class.
func (c CharClass) Holds(values []string) bool {
	re, ok := classMatchers[c]
	if !ok {
		return false
	}
	for _, s := range values {
		if !re.MatchString(s) {
			return false
		}
	}
	return len(values) > 0
}

// UniformClass returns the first class in the given priority order that holds
// uniformly over every string in the sequence. Uniformity over the whole
// sequence is mandatory: a class that only covers a subset is never returned.
func UniformClass(values []string, order []CharClass) (CharClass, bool) {
	for _, class := range order {
		if class.Holds(values) {
			return class, true
		}
	}
	return "", false
}

// LiteralClass returns an exact single-character set for the given character,
// escaped so regex metacharacters stay literal.
func LiteralClass(ch rune) CharClass {
	return CharClass("[" + regexp.QuoteMeta(string(ch)) + "]")
}

// UniformLiteral classifies a sequence of single-character strings that are
// all the same character as a literal class. This is the degenerate case of
// classification where the class carries the exact character.
func UniformLiteral(values []string) (CharClass, bool) {
	if len(values) == 0 {
		return "", false
	}
	first := []rune(values[0])
	if len(first) != 1 {
		return "", false
	}
	for _, s := range values[1:] {
		if s != values[0] {
			return "", false
		}
	}
	return LiteralClass(first[0]), true
}
