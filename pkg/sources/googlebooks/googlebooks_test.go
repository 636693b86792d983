package googlebooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/sources"
)

func TestParserID(t *testing.T) {
	assert.Equal(t, sources.GoogleBooksID, New().ID())
}

func TestParseFirstVolume(t *testing.T) {
	payload := []byte(`{
		"totalItems": 2,
		"items": [
			{
				"volumeInfo": {
					"title": "The Go Programming Language",
					"authors": ["Alan A. A. Donovan", "Brian W. Kernighan"]
				}
			},
			{
				"volumeInfo": {
					"title": "Some Other Edition"
				}
			}
		]
	}`)

	c, err := New().Parse(payload)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, sources.GoogleBooksID, c.Source)
	assert.Equal(t, "The Go Programming Language", c.Title)
	assert.Equal(t, []string{"Alan A. A. Donovan", "Brian W. Kernighan"}, c.Authors)
	assert.Empty(t, c.RawCode)
}

func TestParseSubtitleJoined(t *testing.T) {
	payload := []byte(`{
		"totalItems": 1,
		"items": [
			{
				"volumeInfo": {
					"title": "Gödel, Escher, Bach",
					"subtitle": "An Eternal Golden Braid",
					"authors": ["Douglas R. Hofstadter"]
				}
			}
		]
	}`)

	c, err := New().Parse(payload)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Gödel, Escher, Bach: An Eternal Golden Braid", c.Title)
}

func TestParseNoMatches(t *testing.T) {
	c, err := New().Parse([]byte(`{"totalItems": 0}`))
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := New().Parse([]byte(`{"totalItems":`))
	require.Error(t, err)

	var parseErr *biberrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
