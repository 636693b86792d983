package lcc

import (
	"regexp"
	"strings"
)

// codeGrammar validates the shape of a classification code after
// whitespace normalization: one to three class letters, a one-to-four
// digit number with an optional decimal extension, any number of cutters,
// and an optional trailing year.
var codeGrammar = regexp.MustCompile(`^[A-Z]{1,3}[0-9]{1,4}(\.[0-9]+)?(\.[A-Z][0-9]+[A-Z0-9]*)*( [0-9]{4})?$`)

// WellFormed reports whether code matches the classification code grammar.
// Schedule membership is a separate check owned by the schedule index;
// a grammatical code with no schedule entry is still rejected there.
func WellFormed(code string) bool {
	return codeGrammar.MatchString(normalizeSpace(code))
}

// continuationPrefixes are shelving prefixes some sources join to the
// class number with a literal hyphen rather than a space.
var continuationPrefixes = []string{"PZ-", "KF-"}

// NormalizeRaw converts a raw classification code as reported by a
// bibliographic source into the canonical form used for schedule lookups:
// uppercase, continuation hyphens healed, and everything after the
// primary code token dropped (cutter shelf marks, years, copy notes).
// Normalizing an already-normalized code is a no-op.
func NormalizeRaw(raw string) string {
	code := strings.ToUpper(normalizeSpace(raw))
	if code == "" {
		return ""
	}

	for _, prefix := range continuationPrefixes {
		if rest, found := strings.CutPrefix(code, prefix); found {
			code = prefix[:len(prefix)-1] + rest
			break
		}
	}

	if i := strings.IndexByte(code, ' '); i > 0 {
		code = code[:i]
	}
	return strings.TrimRight(code, "./,;")
}

// normalizeSpace trims and collapses interior whitespace runs to one space.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
