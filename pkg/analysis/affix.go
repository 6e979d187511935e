/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: affix.go
Description: Affix analysis utilities for the Greex engine. Computes the
longest common prefix and longest common suffix across a sequence of strings
for the affix-based pattern strategies.
*/

package analysis

import (
	"strings"
)

// LongestCommonPrefix returns the longest prefix shared by every string in
// the sequence. The candidate is seeded from the first string and shrunk
// until all strings start with it. An empty sequence yields "".
func LongestCommonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}

	// Shrink rune-wise so multi-byte characters are never split
	prefix := []rune(values[0])
	for _, s := range values[1:] {
		for !strings.HasPrefix(s, string(prefix)) {
			prefix = prefix[:len(prefix)-1]
			if len(prefix) == 0 {
				return ""
			}
		}
	}
	return string(prefix)
}

// LongestCommonSuffix returns the longest suffix shared by every string in
// the sequence, computed as the reversed common prefix of the reversed
// strings.
func LongestCommonSuffix(values []string) string {
	if len(values) == 0 {
		return ""
	}

	reversed := make([]string, len(values))
	for i, s := range values {
		reversed[i] = reverse(s)
	}
	return reverse(LongestCommonPrefix(reversed))
}

// reverse returns s with its runes in reverse order
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
