package reconciler

import "github.com/openshelf/bibresolve/pkg/sources"

// resolveSubject picks the final subject. The authoritative source's
// assignment overrides consensus outright. Without it, candidates whose
// code is itself collapsed range notation are discarded as too coarse,
// unless that would leave nothing to vote on.
func (e *engine) resolveSubject(candidates []*sources.Candidate) (string, error) {
	var pool, exact []string
	for _, c := range candidates {
		if c.Subject == "" {
			continue
		}
		if c.Source == e.authority {
			e.logger.Debug().
				Str("source", c.Source.String()).
				Str("subject", c.Subject).
				Msg("authoritative subject assignment")
			return c.Subject, nil
		}
		pool = append(pool, c.Subject)
		if !c.HasRangeCode() {
			exact = append(exact, c.Subject)
		}
	}

	if len(exact) > 0 {
		pool = exact
	}
	return e.voteByFrequency("subject", pool)
}
