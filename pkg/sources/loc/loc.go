// Package loc parses Library of Congress item API payloads. LC assigns
// the classification codes the schedule is built from, which is why this
// source is the default classification authority.
package loc

import (
	"encoding/json"

	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/sources"
	"github.com/openshelf/bibresolve/pkg/textnorm"
)

// response is the subset of the item API shape we consume.
type response struct {
	Item struct {
		Title            string   `json:"title"`
		ContributorNames []string `json:"contributor_names"`
		CallNumber       []string `json:"call_number"`
	} `json:"item"`
}

// Parser extracts candidates from LC item payloads.
type Parser struct{}

// New creates a Library of Congress parser.
func New() *Parser {
	return &Parser{}
}

// ID returns the source this parser understands.
func (p *Parser) ID() sources.ID {
	return sources.LibraryOfCongressID
}

// Parse extracts a candidate from a raw item payload.
func (p *Parser) Parse(payload []byte) (*sources.Candidate, error) {
	var resp response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, biberrors.WrapParse("json", "", err)
	}

	candidate := &sources.Candidate{Source: sources.LibraryOfCongressID}
	candidate.Title = textnorm.Title(resp.Item.Title)

	for _, name := range resp.Item.ContributorNames {
		if cleaned := textnorm.Author(name); cleaned != "" {
			candidate.Authors = append(candidate.Authors, cleaned)
		}
	}

	if len(resp.Item.CallNumber) > 0 {
		candidate.RawCode = resp.Item.CallNumber[0]
	}

	if candidate.Title == "" && candidate.RawCode == "" && len(candidate.Authors) == 0 {
		return nil, nil
	}
	return candidate, nil
}
