package validation

import (
	"regexp"
	"strings"
)

var (
	dotDigitDotRegex   = regexp.MustCompile(`\.\d+\.`)
	tripleSymbolRegex  = regexp.MustCompile(`[._-]{3,}`)
	lowerAlnumRunRegex = regexp.MustCompile(`[a-z0-9]{12,}`)
	vowelPairRegex     = regexp.MustCompile(`[aeiou]{2}`)
)

// suspiciousLocalPart flags email local parts that look machine-generated
// or disposable: excessive dots, dot-digit-dot sequences, runs of
// separator symbols, long alternating letter-digit strings, long
// vowel-pair-free alphanumeric runs, or plus addressing. It returns only
// a verdict; the caller supplies the user-facing message.
func suspiciousLocalPart(local string) bool {
	if strings.Count(local, ".") >= 4 {
		return true
	}
	if dotDigitDotRegex.MatchString(local) {
		return true
	}
	if tripleSymbolRegex.MatchString(local) {
		return true
	}
	if len(local) > 12 && alternatesLetterDigit(local) {
		return true
	}
	for _, run := range lowerAlnumRunRegex.FindAllString(strings.ToLower(local), -1) {
		if !vowelPairRegex.MatchString(run) {
			return true
		}
	}
	return strings.Contains(local, "+")
}

// alternatesLetterDigit reports whether the string strictly alternates
// between letters and digits, e.g. "a1b2c3".
func alternatesLetterDigit(s string) bool {
	prevDigit := false
	for i, r := range s {
		isDigit := r >= '0' && r <= '9'
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isDigit && !isLetter {
			return false
		}
		if i > 0 && isDigit == prevDigit {
			return false
		}
		prevDigit = isDigit
	}
	return true
}
