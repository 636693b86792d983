// Package textnorm provides the text cleanup applied to titles and author
// names before reconciliation voting. Cleanup is an ordered pipeline of
// small pure transforms so each rule can be tested with literal
// before/after pairs. Every step is idempotent, and so is a whole pipeline.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Step is one named pure text transform.
type Step struct {
	Name  string
	Apply func(string) string
}

// Pipeline applies its steps in order.
type Pipeline []Step

// Apply runs every step over s in order.
func (p Pipeline) Apply(s string) string {
	for _, step := range p {
		s = step.Apply(s)
	}
	return s
}

var (
	bracketedQualifier = regexp.MustCompile(`\s*\[[^\]]*\]`)
	respStatement      = regexp.MustCompile(`\s+/\s.*$`)
	isbdTrailer        = regexp.MustCompile(`\s*[/:;,]+\s*$`)
	lifeDates          = regexp.MustCompile(`,?\s*\(?\d{4}\??-(\d{4}\??)?\)?\s*\.?$`)
	roleSuffix         = regexp.MustCompile(`(?i),?\s*\((?:author|editor|translator|illustrator)\.?\)$|,\s*(?:author|editor|translator|illustrator)\.?$`)
)

// CollapseSpace trims the string and collapses interior whitespace runs.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleSteps returns the cleanup chain for candidate titles.
func TitleSteps() Pipeline {
	return Pipeline{
		{Name: "collapse-space", Apply: CollapseSpace},
		{Name: "drop-bracketed-qualifier", Apply: func(s string) string {
			return CollapseSpace(bracketedQualifier.ReplaceAllString(s, ""))
		}},
		{Name: "drop-responsibility-statement", Apply: func(s string) string {
			return respStatement.ReplaceAllString(s, "")
		}},
		{Name: "trim-isbd-trailer", Apply: func(s string) string {
			return isbdTrailer.ReplaceAllString(s, "")
		}},
	}
}

// AuthorSteps returns the cleanup chain for candidate author names.
func AuthorSteps() Pipeline {
	return Pipeline{
		{Name: "collapse-space", Apply: CollapseSpace},
		{Name: "drop-life-dates", Apply: func(s string) string {
			return lifeDates.ReplaceAllString(s, "")
		}},
		{Name: "drop-role-suffix", Apply: func(s string) string {
			return roleSuffix.ReplaceAllString(s, "")
		}},
		{Name: "trim-isbd-trailer", Apply: func(s string) string {
			return isbdTrailer.ReplaceAllString(s, "")
		}},
	}
}

// Title runs the full title cleanup chain.
func Title(s string) string {
	return TitleSteps().Apply(s)
}

// Author runs the full author cleanup chain.
func Author(s string) string {
	return AuthorSteps().Apply(s)
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes combining marks, so "Brontë" and "Bronte"
// compare equal during author variant grouping.
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}
