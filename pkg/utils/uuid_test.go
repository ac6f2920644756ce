package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Maize Flour 2kg", "maize-flour-2kg"},
		{"  Fresh   Milk  ", "fresh-milk"},
		{"Sukuma Wiki (Bundle)", "sukuma-wiki-bundle"},
		{"UPPER case", "upper-case"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in))
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	n := GenerateOrderNumber()
	assert.True(t, strings.HasPrefix(n, "ORD-"))
	assert.Len(t, n, 12)

	// Collisions across a small batch would indicate a broken generator.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[GenerateOrderNumber()] = true
	}
	assert.Len(t, seen, 100)
}

func TestGenerateSKU(t *testing.T) {
	sku := GenerateSKU("Maize Flour")
	assert.True(t, strings.HasPrefix(sku, "MAI-"))

	assert.True(t, strings.HasPrefix(GenerateSKU("!!!"), "PRD-"))
}
