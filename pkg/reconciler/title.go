package reconciler

import "github.com/openshelf/bibresolve/pkg/sources"

// resolveTitle picks the final title. Sources agreeing on the most
// complete title text beat raw frequency: among the repeated title
// strings the longest wins, and only when nothing repeats does plain
// frequency voting (with arbiter tie-break) decide.
func (e *engine) resolveTitle(candidates []*sources.Candidate) (string, error) {
	var titles []string
	for _, c := range candidates {
		if c.Title != "" {
			titles = append(titles, c.Title)
		}
	}

	if repeated := longestRepeated(titles); repeated != "" {
		e.logger.Debug().Str("title", repeated).Msg("title agreed by multiple sources")
		return repeated, nil
	}
	return e.voteByFrequency("title", titles)
}

// longestRepeated returns the longest string occurring at least twice,
// or "" when nothing repeats. Length ties go to the higher count, then
// to first appearance.
func longestRepeated(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := ""
	for _, v := range values {
		if counts[v] < 2 {
			continue
		}
		switch {
		case len(v) > len(best):
			best = v
		case len(v) == len(best) && counts[v] > counts[best]:
			best = v
		}
	}
	return best
}
