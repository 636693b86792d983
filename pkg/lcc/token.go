package lcc

import "strconv"

// tokenKind discriminates letter runs from numeric runs.
type tokenKind int

const (
	kindLetters tokenKind = iota
	kindNumber
)

// token is one maximal run of letters or of digits (with at most one
// fractional point) inside a classification code. Periods and spaces
// that separate runs carry no ordering weight of their own.
type token struct {
	kind    tokenKind
	letters string
	number  float64
}

// tokenize splits a code into maximal alternating runs of letters and
// numbers. A '.' is consumed into a numeric run only when it directly
// continues one ("76.73"); a '.' introducing a cutter letter ("76.73.P98")
// is a plain separator.
func tokenize(code string) []token {
	var tokens []token
	i := 0
	for i < len(code) {
		c := code[i]
		switch {
		case isLetter(c):
			j := i
			for j < len(code) && isLetter(code[j]) {
				j++
			}
			tokens = append(tokens, token{kind: kindLetters, letters: code[i:j]})
			i = j
		case isDigit(c):
			j := i
			seenPoint := false
			for j < len(code) {
				if isDigit(code[j]) {
					j++
					continue
				}
				if code[j] == '.' && !seenPoint && j+1 < len(code) && isDigit(code[j+1]) {
					seenPoint = true
					j++
					continue
				}
				break
			}
			n, err := strconv.ParseFloat(code[i:j], 64)
			if err == nil {
				tokens = append(tokens, token{kind: kindNumber, number: n})
			}
			i = j
		default:
			i++
		}
	}
	return tokens
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
