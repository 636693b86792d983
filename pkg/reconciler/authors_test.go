package reconciler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/bibresolve/pkg/schedule"
	"github.com/openshelf/bibresolve/pkg/sources"
)

func TestSameAuthor(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "identical", a: "Jane Smith", b: "Jane Smith", want: true},
		{name: "diacritics ignored", a: "Gabriel García Márquez", b: "Gabriel Garcia Marquez", want: true},
		{name: "inverted surname order", a: "Doe, John", b: "John Doe", want: true},
		{name: "initial matches full first name", a: "J. Tolkien", b: "John Tolkien", want: true},
		{name: "abbreviated first name", a: "Chr. Andersen", b: "Christian Andersen", want: true},
		{name: "initial mismatch", a: "K. Tolkien", b: "John Tolkien", want: false},
		{name: "different surname", a: "John Doe", b: "John Smith", want: false},
		{name: "middle names ignored", a: "John Ronald Reuel Tolkien", b: "J. Tolkien", want: true},
		{name: "different people same first name", a: "Jane Smith", b: "Jane Austen", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sameAuthor(tt.a, tt.b))
			assert.Equal(t, tt.want, sameAuthor(tt.b, tt.a))
		})
	}
}

func TestGroupVariants(t *testing.T) {
	groups := groupVariants([]string{"Doe, John", "John Doe", "Jane Smith"})
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"Doe, John", "John Doe"}, groups[0].names)
	assert.Equal(t, []string{"Jane Smith"}, groups[1].names)

	// Longest raw spelling represents the group.
	assert.Equal(t, "Doe, John", groups[0].representative())
	assert.Equal(t, "Jane Smith", groups[1].representative())
}

func TestResolveAuthorsSingleCandidate(t *testing.T) {
	r := newEngine(t)

	record, err := r.Resolve(context.Background(), "9780000000020", map[sources.ID]*sources.Candidate{
		sources.OpenLibraryID: {Source: sources.OpenLibraryID, Title: "T", Authors: []string{"Ursula K. Le Guin"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ursula K. Le Guin"}, record.Authors)
}

func TestResolveAuthorsVariantsCollapse(t *testing.T) {
	r := newEngine(t)

	record, err := r.Resolve(context.Background(), "9780000000021", map[sources.ID]*sources.Candidate{
		sources.OpenLibraryID: {Source: sources.OpenLibraryID, Title: "T", Authors: []string{"Doe, John", "Jane Smith"}},
		sources.GoogleBooksID: {Source: sources.GoogleBooksID, Title: "T", Authors: []string{"John Doe", "Jane Smith"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Doe, John", "Jane Smith"}, record.Authors)
}

func TestResolveAuthorsMinorityConfirmed(t *testing.T) {
	var asked []string
	arbiter := &scriptedArbiter{
		confirm: func(field, candidate string, context []string) (bool, error) {
			asked = append(asked, candidate)
			assert.Equal(t, "author", field)
			assert.NotEmpty(t, context)
			return false, nil
		},
	}
	r := newEngine(t, WithArbiter(arbiter))

	// Both author-capable sources answered, so the lone extra name from
	// one of them is doubtful and goes through confirmation.
	record, err := r.Resolve(context.Background(), "9780000000022", map[sources.ID]*sources.Candidate{
		sources.OpenLibraryID: {Source: sources.OpenLibraryID, Title: "T", Authors: []string{"Jane Smith", "A. Ghostwriter"}},
		sources.GoogleBooksID: {Source: sources.GoogleBooksID, Title: "T", Authors: []string{"Jane Smith"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A. Ghostwriter"}, asked)
	assert.Equal(t, []string{"Jane Smith"}, record.Authors)
}

func TestResolveAuthorsMinorityKeptByDefault(t *testing.T) {
	r := newEngine(t)

	record, err := r.Resolve(context.Background(), "9780000000023", map[sources.ID]*sources.Candidate{
		sources.OpenLibraryID: {Source: sources.OpenLibraryID, Title: "T", Authors: []string{"Jane Smith", "A. Ghostwriter"}},
		sources.GoogleBooksID: {Source: sources.GoogleBooksID, Title: "T", Authors: []string{"Jane Smith"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Smith", "A. Ghostwriter"}, record.Authors)
}

func TestResolveAuthorsInsufficientReportingKeepsAll(t *testing.T) {
	arbiter := &scriptedArbiter{
		confirm: func(string, string, []string) (bool, error) {
			t.Fatal("confirmation must not run when too few sources answered")
			return false, nil
		},
	}

	// Three author-capable sources, only one answered: less than half, so
	// names it alone reports are kept without question.
	registry := sources.NewRegistry(sources.LibraryOfCongressID,
		sources.Config{ID: sources.LibraryOfCongressID},
		sources.Config{ID: sources.OpenLibraryID, Authors: true},
		sources.Config{ID: sources.GoogleBooksID, Authors: true},
		sources.Config{ID: sources.ID("worldcat"), Authors: true},
	)
	r, err := New(schedule.NewIndex(t.TempDir()), registry, WithArbiter(arbiter))
	require.NoError(t, err)

	record, err := r.Resolve(context.Background(), "9780000000024", map[sources.ID]*sources.Candidate{
		sources.OpenLibraryID: {Source: sources.OpenLibraryID, Title: "T", Authors: []string{"Jane Smith", "A. Ghostwriter"}},
		sources.GoogleBooksID: {Source: sources.GoogleBooksID, Title: "T"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Smith", "A. Ghostwriter"}, record.Authors)
}

func TestResolveAuthorsPromptWhenNone(t *testing.T) {
	entries := []string{"Anonymous Author", "Second Author", ""}
	arbiter := &scriptedArbiter{
		prompt: func(field string) (string, error) {
			if field != "author" {
				return "", nil
			}
			next := entries[0]
			entries = entries[1:]
			return next, nil
		},
	}
	r := newEngine(t, WithArbiter(arbiter))

	record, err := r.Resolve(context.Background(), "9780000000025", map[sources.ID]*sources.Candidate{
		sources.OpenLibraryID: {Source: sources.OpenLibraryID, Title: "T"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Anonymous Author", "Second Author"}, record.Authors)
}
