package utils

import (
	"regexp"
	"strings"
)

var (
	controlChars = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	// Convert string to runes to handle Unicode characters properly
	runes := []rune(s)

	if len(runes) <= maxLength {
		return s
	}

	// Handle edge cases where maxLength is too small to fit the ellipsis
	if maxLength <= 3 {
		return "..."
	}

	return string(runes[:maxLength-3]) + "..."
}

// SanitizeString removes unwanted characters from a string
func SanitizeString(s string) string {
	// Replace control characters with spaces, then normalize multiple spaces to single space
	result := controlChars.ReplaceAllString(s, " ")
	result = multiSpace.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// NormalizeText lower-cases and sanitizes free text for case-insensitive matching
func NormalizeText(s string) string {
	return strings.ToLower(SanitizeString(s))
}
