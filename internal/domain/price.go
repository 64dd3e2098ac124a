package domain

import (
	"strconv"
	"unicode"
)

// ParsePrice extracts the integer amount from a localized price string such
// as "200 ₽" by dropping every non-digit rune. A string without digits
// parses to 0 so that a malformed line degrades a total instead of failing it.
func ParsePrice(s string) int {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}
