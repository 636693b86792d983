// Package lcc implements ordering and range algebra over Library of
// Congress classification codes. Codes are compared token-by-token after
// splitting into alternating letter and number runs, which gives a strict
// total order suitable for deterministic range containment.
package lcc

import "strings"

// Compare returns -1, 0, or 1 ordering code a against code b.
//
// Tokens are compared pairwise over the shorter common length: numeric
// tokens by numeric value, letter tokens lexicographically. The first
// unequal pair decides. If all compared tokens are equal the code with
// fewer tokens is smaller (prefix rule).
func Compare(a, b string) int {
	ta := tokenize(a)
	tb := tokenize(b)

	n := len(ta)
	if len(tb) < n {
		n = len(tb)
	}

	for i := 0; i < n; i++ {
		if c := compareToken(ta[i], tb[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	default:
		return 0
	}
}

// compareToken orders two tokens. Mixed kinds should not occur between
// codes of the same schedule area; when they do, numeric runs sort first
// so the order stays total.
func compareToken(a, b token) int {
	if a.kind != b.kind {
		if a.kind == kindNumber {
			return -1
		}
		return 1
	}
	if a.kind == kindNumber {
		switch {
		case a.number < b.number:
			return -1
		case a.number > b.number:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.letters, b.letters)
}

// InRange reports whether code lies strictly between start and end.
// An end given as a bare numeric suffix (the collapsed range notation,
// e.g. start "PG7157.P47" with end "7157.P472") is first reconstituted
// with start's alphabetic prefix.
func InRange(code, start, end string) bool {
	end = reconstitute(start, end)
	return Compare(code, start) > 0 && Compare(code, end) < 0
}

// ProperSubrange reports whether [innerStart, innerEnd] is strictly
// narrower than [outerStart, outerEnd] on both ends. Both ranges are
// reconstituted the same way InRange does. Used to prefer the most
// specific of several overlapping range entries.
func ProperSubrange(innerStart, innerEnd, outerStart, outerEnd string) bool {
	innerEnd = reconstitute(innerStart, innerEnd)
	outerEnd = reconstitute(outerStart, outerEnd)
	return Compare(innerStart, outerStart) > 0 && Compare(innerEnd, outerEnd) < 0
}

// reconstitute prefixes end with start's leading letter run when end was
// written without one.
func reconstitute(start, end string) string {
	if end == "" || isLetter(end[0]) {
		return end
	}
	i := 0
	for i < len(start) && isLetter(start[i]) {
		i++
	}
	return start[:i] + end
}

// SplitRange splits a range-shaped code "START-END" into its two ends.
// Codes without a hyphen are not ranges.
func SplitRange(code string) (start, end string, ok bool) {
	i := strings.IndexByte(code, '-')
	if i <= 0 || i == len(code)-1 {
		return "", "", false
	}
	return code[:i], code[i+1:], true
}

// IsRange reports whether code is written in range notation.
func IsRange(code string) bool {
	_, _, ok := SplitRange(code)
	return ok
}

// IsCollapsedAlpha reports whether code is a collapsed alphabetic range
// entry, the ".A-Z" form standing in for every cutter under one number.
func IsCollapsedAlpha(code string) bool {
	start, end, ok := SplitRange(code)
	if !ok || len(end) != 1 || !isLetter(end[0]) {
		return false
	}
	return start != ""
}
