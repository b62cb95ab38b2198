package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
)

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single_long_word", input: "Hat", want: "HAT"},
		{name: "single_word_truncated", input: "socks", want: "SOC"},
		{name: "short_word_padded", input: "Ox", want: "OXO"},
		{name: "one_letter_padded", input: "x", want: "XXX"},
		{name: "two_words_extended_from_first", input: "Blue Jeans", want: "BJL"},
		{name: "three_words_initials", input: "long sleeve shirt", want: "LSS"},
		{name: "many_words_truncated", input: "Big Red Wool Sweater", want: "BRW"},
		{name: "surrounding_whitespace", input: "  Hat  ", want: "HAT"},
		{name: "first_word_exhausted", input: "A B", want: "AB"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.GenerateCode(tt.input))
		})
	}
}

func TestGenerateCode_CollisionsAreKept(t *testing.T) {
	assert.Equal(t, domain.GenerateCode("Blue Jeans"), domain.GenerateCode("Black Jacket"))
}

func TestUnitIDRange(t *testing.T) {
	assert.Equal(t, "HAT-7", domain.UnitID("HAT", 7))
	assert.Equal(t, []string{"SOC-1", "SOC-2", "SOC-3"}, domain.UnitIDRange("SOC", 1, 3))
	assert.Empty(t, domain.UnitIDRange("SOC", 1, 0))
}
