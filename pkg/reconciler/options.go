package reconciler

import (
	"github.com/rs/zerolog"

	"github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/logging"
	"github.com/openshelf/bibresolve/pkg/sources"
)

// options configures an engine.
type options struct {
	arbiter   Arbiter
	authority sources.ID
	logger    *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		arbiter: FirstCandidate{},
		logger:  logging.Default(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithArbiter sets the tie-break strategy.
func WithArbiter(arbiter Arbiter) Option {
	return func(o *options) error {
		if arbiter == nil {
			return &errors.ValidationError{
				Field:   "arbiter",
				Message: "cannot be nil",
			}
		}
		o.arbiter = arbiter
		return nil
	}
}

// WithAuthority overrides the registry's authoritative source for
// classification.
func WithAuthority(id sources.ID) Option {
	return func(o *options) error {
		o.authority = id
		return nil
	}
}

// WithLogger sets the logger used for per-field decision logging.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		o.logger = logger
		return nil
	}
}
