// Package labels turns field identifiers into human readable titles.
package labels

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s.]+`)

// Humanize converts an identifier such as `price_range` or `shipping.city`
// into "Price Range" / "Shipping City". Digits start a new word.
func Humanize(id string) string {
	if id == "" {
		return ""
	}

	var segments []string
	for _, word := range splitWordsPattern.Split(id, -1) {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitDigits(word)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func splitDigits(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(rune(input[i-1]), r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(prev, r rune) bool {
	return (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

func titleCase(phrase string) string {
	words := strings.Fields(phrase)
	for i, word := range words {
		lower := strings.ToLower(word)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}
