// Package googlebooks parses Google Books volumes API payloads.
package googlebooks

import (
	"encoding/json"

	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/sources"
	"github.com/openshelf/bibresolve/pkg/textnorm"
)

// response is the subset of the volumes API shape we consume. Google
// Books never reports LC classification, so candidates from here carry
// no code.
type response struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title    string   `json:"title"`
			Subtitle string   `json:"subtitle"`
			Authors  []string `json:"authors"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Parser extracts candidates from Google Books payloads.
type Parser struct{}

// New creates a Google Books parser.
func New() *Parser {
	return &Parser{}
}

// ID returns the source this parser understands.
func (p *Parser) ID() sources.ID {
	return sources.GoogleBooksID
}

// Parse extracts a candidate from a raw volumes payload. The first item
// is the best match for an ISBN query; a zero-item response yields a nil
// candidate and no error.
func (p *Parser) Parse(payload []byte) (*sources.Candidate, error) {
	var resp response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, biberrors.WrapParse("json", "", err)
	}
	if resp.TotalItems == 0 || len(resp.Items) == 0 {
		return nil, nil
	}

	info := resp.Items[0].VolumeInfo
	candidate := &sources.Candidate{Source: sources.GoogleBooksID}

	title := info.Title
	if title != "" && info.Subtitle != "" {
		title += ": " + info.Subtitle
	}
	candidate.Title = textnorm.Title(title)

	for _, name := range info.Authors {
		if cleaned := textnorm.Author(name); cleaned != "" {
			candidate.Authors = append(candidate.Authors, cleaned)
		}
	}

	if candidate.Title == "" && len(candidate.Authors) == 0 {
		return nil, nil
	}
	return candidate, nil
}
