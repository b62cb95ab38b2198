// internal/core/domain/code.go
package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// CodeLength is the length of a generated category code.
const CodeLength = 3

// GenerateCode derives the short uppercase code used in unit identifiers.
//
// Multi-word names use the initial of each word, truncated to three letters
// or extended with the following letters of the first word. Single words of
// three or more letters use their first three letters; shorter words are
// padded with their first letter ("Ox" becomes "OXO").
//
// Codes are not unique across categories: "Blue Jeans" and "Black Jacket"
// both map to "BJL".
func GenerateCode(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	if len(words) > 1 {
		code := make([]rune, 0, CodeLength)
		for _, w := range words {
			code = append(code, unicode.ToUpper([]rune(w)[0]))
		}
		if len(code) >= CodeLength {
			return string(code[:CodeLength])
		}

		first := []rune(words[0])
		for i := 1; i < len(first) && len(code) < CodeLength; i++ {
			code = append(code, unicode.ToUpper(first[i]))
		}
		return string(code)
	}

	word := []rune(strings.ToUpper(words[0]))
	if len(word) >= CodeLength {
		return string(word[:CodeLength])
	}

	code := append([]rune{}, word...)
	for len(code) < CodeLength {
		code = append(code, word[0])
	}
	return string(code)
}

// UnitID formats the identifier of the n-th unit of a category code.
func UnitID(code string, n int) string {
	return fmt.Sprintf("%s-%d", code, n)
}

// UnitIDRange returns count consecutive unit identifiers starting at start.
func UnitIDRange(code string, start, count int) []string {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, UnitID(code, start+i))
	}
	return ids
}
