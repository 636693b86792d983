package reconciler

import (
	"strings"

	"github.com/openshelf/bibresolve/pkg/sources"
	"github.com/openshelf/bibresolve/pkg/textnorm"
)

// variantGroup clusters differently-formatted name strings judged to be
// the same person.
type variantGroup struct {
	names []string
}

// representative is the longest raw string in the group, ties going to
// the name seen first.
func (g *variantGroup) representative() string {
	best := ""
	for _, name := range g.names {
		if len(name) > len(best) {
			best = name
		}
	}
	return best
}

// resolveAuthors picks the final author list. Names from every source are
// unioned and clustered into variant groups; each group contributes its
// longest spelling. A name only one source knows about, matching nothing
// else, is confirmed through the arbiter when enough sources answered for
// its absence elsewhere to be suspicious.
func (e *engine) resolveAuthors(candidates []*sources.Candidate) ([]string, error) {
	var all []string
	reporters := make(map[string]map[sources.ID]struct{})
	reporting := 0
	for _, c := range candidates {
		if len(c.Authors) == 0 {
			continue
		}
		reporting++
		for _, name := range c.Authors {
			if reporters[name] == nil {
				reporters[name] = make(map[sources.ID]struct{})
				all = append(all, name)
			}
			reporters[name][c.Source] = struct{}{}
		}
	}

	switch len(all) {
	case 0:
		return e.promptAuthors()
	case 1:
		return all, nil
	}

	groups := groupVariants(all)
	representatives := make([]string, 0, len(groups))
	for _, g := range groups {
		representatives = append(representatives, g.representative())
	}
	if len(representatives) < 2 {
		return representatives, nil
	}

	// Minority confirmation only fires when at least half of the sources
	// known to report authors actually answered; with fewer, absence from
	// other sources is not evidence against a name.
	capable := len(e.registry.AuthorCapable())
	if capable == 0 || reporting*2 < capable {
		return representatives, nil
	}

	var kept []string
	for i, g := range groups {
		rep := representatives[i]
		if len(g.names) == 1 && len(reporters[rep]) == 1 {
			others := otherNames(representatives, rep)
			keep, err := e.arbiter.Confirm("author", rep, others)
			if err != nil {
				return nil, err
			}
			if !keep {
				e.logger.Debug().Str("author", rep).Msg("minority author dropped by arbiter")
				continue
			}
		}
		kept = append(kept, rep)
	}
	return kept, nil
}

// promptAuthors collects freeform author names until a blank entry.
func (e *engine) promptAuthors() ([]string, error) {
	var out []string
	for {
		name, err := e.arbiter.Prompt("author")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return out, nil
		}
		out = append(out, name)
	}
}

func otherNames(all []string, except string) []string {
	var out []string
	for _, name := range all {
		if name != except {
			out = append(out, name)
		}
	}
	return out
}

// groupVariants clusters names by pairwise equivalence: a name joins the
// first group containing any name it matches, else starts its own.
func groupVariants(names []string) []*variantGroup {
	var groups []*variantGroup
next:
	for _, name := range names {
		for _, g := range groups {
			for _, member := range g.names {
				if sameAuthor(name, member) {
					g.names = append(g.names, name)
					continue next
				}
			}
		}
		groups = append(groups, &variantGroup{names: []string{name}})
	}
	return groups
}

// sameAuthor reports whether two name strings refer to the same person:
// identical after diacritic removal, or matching final name tokens
// combined with matching first tokens, where an initialled first token
// ("J.") matches any name it prefixes.
func sameAuthor(a, b string) bool {
	fa := textnorm.StripDiacritics(a)
	fb := textnorm.StripDiacritics(b)
	if strings.EqualFold(fa, fb) {
		return true
	}

	ta := nameTokens(fa)
	tb := nameTokens(fb)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}
	if !strings.EqualFold(ta[len(ta)-1], tb[len(tb)-1]) {
		return false
	}
	return firstTokenMatch(ta[0], tb[0])
}

// nameTokens splits a cleaned name into tokens in natural order,
// reordering a single "Surname, Forenames" inversion first.
func nameTokens(name string) []string {
	if last, first, found := strings.Cut(name, ","); found && !strings.Contains(first, ",") {
		name = strings.TrimSpace(first) + " " + strings.TrimSpace(last)
	}
	return strings.Fields(name)
}

// firstTokenMatch compares first name tokens. A token ending in a period
// is an initial or abbreviation and matches by its letters against the
// other token's equal-length prefix.
func firstTokenMatch(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	if letters, found := strings.CutSuffix(a, "."); found && letters != "" && len(b) >= len(letters) {
		if strings.EqualFold(b[:len(letters)], letters) {
			return true
		}
	}
	if letters, found := strings.CutSuffix(b, "."); found && letters != "" && len(a) >= len(letters) {
		if strings.EqualFold(a[:len(letters)], letters) {
			return true
		}
	}
	return false
}
