package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"String shorter than max", "hello", 10, "hello"},
		{"String equal to max", "hello", 5, "hello"},
		{"String longer than max", "hello world", 8, "hello..."},
		{"Empty string", "", 5, ""},
		{"Max length 3", "hello", 3, "..."},
		{"Max length 4", "hello", 4, "h..."},
		{"Unicode characters", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLength)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal string", "Austin, Texas", "Austin, Texas"},
		{"String with newlines", "Austin\nTexas", "Austin Texas"},
		{"Mixed whitespace", "Austin\n\t\rTexas", "Austin Texas"},
		{"Leading and trailing spaces", "  Austin  ", "Austin"},
		{"Only whitespace", "   \n\t\r   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeString(tt.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "new south wales, australia", NormalizeText("  New South\tWales,  AUSTRALIA "))
	assert.Equal(t, "", NormalizeText("\n"))
}
