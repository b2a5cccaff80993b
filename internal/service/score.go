package service

import (
	"strconv"
	"strings"
)

// ParseScore extracts a suitability score from free-text oracle output by
// stripping every non-digit character and parsing the remainder as a
// base-10 integer. Empty or unparseable remainders yield 0.
//
// The strip rule is intentionally naive and is kept as-is: compound numeric
// strings concatenate, so "Score: 42/100" parses to 42100, not 42. A
// remainder too long to fit an int also yields 0 via the parse-failure path.
func ParseScore(text string) int {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	score, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}

	return score
}
