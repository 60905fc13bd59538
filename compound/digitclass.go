package compound

import (
	"strconv"
	"strings"
)

// digitClassCount is the size of the per-part class table: the seven
// synthetic COMPOUNDRULE digit classes (tokens '1'..'7') plus index 0,
// which is unused so that class N lives at index N.
const digitClassCount = 8

var spelledNumbers = map[string]bool{
	"zero": true, "one": true, "two": true, "three": true, "four": true,
	"five": true, "six": true, "seven": true, "eight": true, "nine": true,
	"ten": true, "eleven": true, "twelve": true, "thirteen": true,
	"fourteen": true, "fifteen": true, "sixteen": true, "seventeen": true,
	"eighteen": true, "nineteen": true, "twenty": true, "thirty": true,
	"forty": true, "fifty": true, "sixty": true, "seventy": true,
	"eighty": true, "ninety": true, "hundred": true, "thousand": true,
	"million": true, "billion": true,
}

var ordinalSuffixes = map[string]bool{"st": true, "nd": true, "rd": true, "th": true}

// classify returns, for each digit class 1..7, whether part satisfies it.
// The table is a documented, language-adjustable heuristic, not a
// faithful reproduction of any single locale:
//
//  1. digits only
//  2. a spelled-out number word
//  3. a scaled number: digits followed by k/K/m/M/b/B
//  4. an ordinal: digits followed by st/nd/rd/th (the suffix is not
//     checked against the numeral here; ordinalAgreementOK checks
//     agreement only for a bare suffix part following numeric parts)
//  5. a numeric-suffix token: letters followed by trailing digits
//  6. mixed digit/letter content separated by '-' or '_'
//  7. any token containing at least one digit and one letter
func classify(part string) [digitClassCount]bool {
	var classes [digitClassCount]bool
	lower := strings.ToLower(part)

	if part != "" && isAllDigits(part) {
		classes[1] = true
	}
	if spelledNumbers[lower] {
		classes[2] = true
	}
	if n := len(part); n >= 2 {
		last := lower[n-1]
		if last == 'k' || last == 'm' || last == 'b' {
			if isAllDigits(part[:n-1]) {
				classes[3] = true
			}
		}
	}
	if n := len(part); n >= 3 {
		suf := lower[n-2:]
		if ordinalSuffixes[suf] && isAllDigits(part[:n-2]) {
			classes[4] = true
		}
	}
	if hasDigitSuffix(part) {
		classes[5] = true
	}
	if strings.ContainsAny(part, "-_") && hasDigit(part) && hasLetter(part) {
		classes[6] = true
	}
	if hasDigit(part) && hasLetter(part) {
		classes[7] = true
	}
	return classes
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func hasDigitSuffix(s string) bool {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return i > 0 && i < len(s)
}

// ordinalAgreementOK validates the rule that when the last part is a bare
// ordinal suffix (st/nd/rd/th) and the preceding parts are numeric, the
// suffix must agree with the value's last two digits.
func ordinalAgreementOK(parts []string) bool {
	if len(parts) == 0 {
		return true
	}
	last := strings.ToLower(parts[len(parts)-1])
	if !ordinalSuffixes[last] {
		return true
	}
	var digits strings.Builder
	for _, p := range parts[:len(parts)-1] {
		if isAllDigits(p) {
			digits.WriteString(p)
		}
	}
	if digits.Len() == 0 {
		return true
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return true
	}
	return ordinalSuffixFor(n) == last
}

func ordinalSuffixFor(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
