// Package reconciler merges per-source metadata candidates for one book
// into a single record. Voting is automatic wherever the candidates allow
// it; genuine ties and doubtful minority data are delegated to a
// pluggable Arbiter, so interactive and headless callers share one
// engine.
package reconciler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/schedule"
	"github.com/openshelf/bibresolve/pkg/sources"
)

// Reconciler merges candidate metadata from multiple sources.
type Reconciler interface {
	// Resolve reconciles the candidates fetched for one identifier into a
	// single record. A nil candidate means that source failed or had
	// nothing; it is excluded from voting. ErrNoData is returned when no
	// candidate carries a usable field.
	Resolve(ctx context.Context, isbn string, candidates map[sources.ID]*sources.Candidate) (*Record, error)
}

// engine is the default implementation of Reconciler.
type engine struct {
	index     *schedule.Index
	registry  *sources.Registry
	authority sources.ID
	arbiter   Arbiter
	logger    *zerolog.Logger
}

// New creates a Reconciler voting over the registry's sources, with the
// schedule index used to resolve candidate classification codes.
func New(index *schedule.Index, registry *sources.Registry, opts ...Option) (Reconciler, error) {
	if index == nil {
		return nil, &errors.ValidationError{Field: "index", Message: "cannot be nil"}
	}
	if registry == nil {
		return nil, &errors.ValidationError{Field: "registry", Message: "cannot be nil"}
	}

	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	authority := options.authority
	if authority == "" {
		authority = registry.Authority()
	}
	if authority != "" && !registry.Has(authority) {
		return nil, &errors.ValidationError{
			Field:   "authority",
			Value:   authority.String(),
			Message: "not a registered source",
		}
	}

	return &engine{
		index:     index,
		registry:  registry,
		authority: authority,
		arbiter:   options.arbiter,
		logger:    options.logger,
	}, nil
}

// Resolve implements Reconciler.
func (e *engine) Resolve(ctx context.Context, isbn string, candidates map[sources.ID]*sources.Candidate) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ErrCanceled
	}

	ordered := e.order(candidates)
	for _, c := range ordered {
		if c.RawCode == "" {
			continue
		}
		if err := c.ResolveSubject(e.index); err != nil {
			// A missing schedule file kills that one code, not the book.
			e.logger.Warn().
				Str("source", c.Source.String()).
				Str("code", c.RawCode).
				Err(err).
				Msg("classification lookup failed, candidate keeps no subject")
		}
	}

	if usable(ordered) == 0 {
		return nil, errors.ErrNoData
	}

	record := &Record{ISBN: isbn}

	title, err := e.resolveTitle(ordered)
	if err != nil {
		return nil, err
	}
	record.Title = title

	subject, err := e.resolveSubject(ordered)
	if err != nil {
		return nil, err
	}
	record.Subject = subject

	authors, err := e.resolveAuthors(ordered)
	if err != nil {
		return nil, err
	}
	record.Authors = authors

	e.logger.Debug().
		Str("isbn", isbn).
		Str("title", record.Title).
		Str("subject", record.Subject).
		Strs("authors", record.Authors).
		Msg("record reconciled")
	return record, nil
}

// order returns the non-nil candidates in registry declaration order, so
// voting and arbiter prompts are deterministic regardless of map
// iteration.
func (e *engine) order(candidates map[sources.ID]*sources.Candidate) []*sources.Candidate {
	var out []*sources.Candidate
	for _, id := range e.registry.IDs() {
		if c := candidates[id]; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// usable counts candidates carrying at least one non-empty field.
func usable(candidates []*sources.Candidate) int {
	n := 0
	for _, c := range candidates {
		if c.Title != "" || c.Subject != "" || len(c.Authors) > 0 {
			n++
		}
	}
	return n
}

// voteByFrequency applies plain frequency voting over values: a value
// whose count strictly exceeds every other wins outright; a tie goes to
// the arbiter with the distinct values in first-seen order.
func (e *engine) voteByFrequency(field string, values []string) (string, error) {
	if len(values) == 0 {
		return e.arbiter.Prompt(field)
	}

	counts := make(map[string]int, len(values))
	var distinct []string
	for _, v := range values {
		if counts[v] == 0 {
			distinct = append(distinct, v)
		}
		counts[v]++
	}

	best, runnerUp := "", 0
	bestCount := 0
	for _, v := range distinct {
		switch {
		case counts[v] > bestCount:
			runnerUp = bestCount
			best, bestCount = v, counts[v]
		case counts[v] > runnerUp:
			runnerUp = counts[v]
		}
	}
	if bestCount > runnerUp {
		return best, nil
	}

	e.logger.Debug().Str("field", field).Strs("candidates", distinct).Msg("vote tied, deferring to arbiter")
	return e.arbiter.Choose(field, distinct)
}
