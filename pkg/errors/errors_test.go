package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		check   func(error) bool
		matches bool
	}{
		{
			name:    "lookup error wraps missing schedule",
			err:     &LookupError{Subject: 'Q', Path: "schedules/Q.txt", Err: ErrMissingSchedule},
			check:   IsMissingSchedule,
			matches: true,
		},
		{
			name:    "source error is source unavailable",
			err:     &SourceError{Source: "openlibrary", Message: "timeout"},
			check:   IsSourceUnavailable,
			matches: true,
		},
		{
			name:    "wrapped no consensus",
			err:     fmt.Errorf("title voting: %w", ErrNoConsensus),
			check:   IsNoConsensus,
			matches: true,
		},
		{
			name:    "no data does not match no consensus",
			err:     ErrNoData,
			check:   IsNoConsensus,
			matches: false,
		},
		{
			name:    "malformed code",
			err:     fmt.Errorf("code %q: %w", "??", ErrMalformedCode),
			check:   IsMalformedCode,
			matches: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.check(tt.err))
		})
	}
}

func TestValidationErrorIsInvalidInput(t *testing.T) {
	err := &ValidationError{Field: "isbn", Message: "empty"}
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "isbn")
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	require.NoError(t, WrapIO("read", "x", nil))
	require.NoError(t, WrapParse("json", "x", nil))
	require.NoError(t, WrapSource("loc", nil))
	require.NoError(t, WrapValidation("f", nil))
}

func TestWrapIOPreservesCause(t *testing.T) {
	cause := New("disk gone")
	err := WrapIO("write", "schedules/P.txt", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "schedules/P.txt")
}
