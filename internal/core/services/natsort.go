package services

import (
	"slices"
	"strings"
)

// NaturalLess reports whether a sorts before b in natural order.
//
// Strings are split into runs of ASCII digits and runs of everything else.
// Digit runs compare by numeric value, other runs compare case-insensitively,
// so "img2.png" sorts before "img10.png". Strings that are equal under those
// rules are ordered byte-wise, which keeps the order total.
func NaturalLess(a, b string) bool {
	return NaturalCompare(a, b) < 0
}

// NaturalCompare returns -1, 0 or +1 comparing a and b in natural order.
// It returns 0 only when a == b.
func NaturalCompare(a, b string) int {
	if c := compareRuns(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// SortNatural sorts names in place in natural order.
func SortNatural(names []string) {
	slices.SortFunc(names, NaturalCompare)
}

func compareRuns(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si, sj := i, j
			i = skipDigits(a, i)
			j = skipDigits(b, j)
			if c := compareNumeric(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}

		si, sj := i, j
		i = skipText(a, i)
		j = skipText(b, j)
		if c := compareFolded(a[si:i], b[sj:j]); c != 0 {
			return c
		}
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}

// compareNumeric compares two digit runs by value without parsing,
// so arbitrarily long runs cannot overflow.
func compareNumeric(x, y string) int {
	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return strings.Compare(x, y)
}

func compareFolded(x, y string) int {
	if strings.EqualFold(x, y) {
		return 0
	}
	return strings.Compare(strings.ToLower(x), strings.ToLower(y))
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func skipText(s string, i int) int {
	for i < len(s) && !isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
