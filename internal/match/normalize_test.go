package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsDiacritics(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"finnish a-umlaut", "Väkiluku", "vakiluku"},
		{"finnish o-umlaut", "Työllisyysaste", "tyollisyysaste"},
		{"mixed diacritics", "Väestöllinen huoltosuhde", "vaestollinen huoltosuhde"},
		{"no diacritics", "Population", "population"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_CollapsesPunctuation(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"comma and percent", "Työllisyysaste, %", "tyollisyysaste"},
		{"age range hyphens", "Työllisyysaste 15-64-vuotiaat, %", "tyollisyysaste 15 64 vuotiaat"},
		{"internal run", "a -- , b", "a b"},
		{"leading and trailing", "  %rate%  ", "rate"},
		{"only punctuation", ",%- ", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Väkiluku",
		"Työllisyysaste 15-64-vuotiaat, %",
		"  mixed, CASE -- text  ",
		"",
		"12 345",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", in)
	}
}

func TestNormalize_KeepsDigits(t *testing.T) {
	assert.Equal(t, "vakiluku 31 12", Normalize("Väkiluku 31.12."))
}
