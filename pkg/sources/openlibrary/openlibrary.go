// Package openlibrary parses Open Library Books API payloads. The
// response object is keyed by the bibkey used in the query ("ISBN:..."),
// so the shape is navigated dynamically rather than through a static
// struct.
package openlibrary

import (
	"github.com/antonholmquist/jason"

	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/sources"
	"github.com/openshelf/bibresolve/pkg/textnorm"
)

// Parser extracts candidates from Open Library payloads.
type Parser struct{}

// New creates an Open Library parser.
func New() *Parser {
	return &Parser{}
}

// ID returns the source this parser understands.
func (p *Parser) ID() sources.ID {
	return sources.OpenLibraryID
}

// Parse extracts a candidate from a raw Books API payload. An empty
// response object means the ISBN is unknown there: nil candidate, no
// error.
func (p *Parser) Parse(payload []byte) (*sources.Candidate, error) {
	root, err := jason.NewObjectFromBytes(payload)
	if err != nil {
		return nil, biberrors.WrapParse("json", "", err)
	}

	// One entry per queried bibkey; we query one ISBN at a time.
	var record *jason.Object
	for _, value := range root.Map() {
		if obj, err := value.Object(); err == nil {
			record = obj
			break
		}
	}
	if record == nil {
		return nil, nil
	}

	candidate := &sources.Candidate{Source: sources.OpenLibraryID}

	if title, err := record.GetString("title"); err == nil {
		candidate.Title = textnorm.Title(title)
	}

	if authors, err := record.GetObjectArray("authors"); err == nil {
		for _, author := range authors {
			name, err := author.GetString("name")
			if err != nil {
				continue
			}
			if cleaned := textnorm.Author(name); cleaned != "" {
				candidate.Authors = append(candidate.Authors, cleaned)
			}
		}
	}

	if codes, err := record.GetStringArray("classifications", "lc_classifications"); err == nil && len(codes) > 0 {
		candidate.RawCode = codes[0]
	}

	if candidate.Title == "" && candidate.RawCode == "" && len(candidate.Authors) == 0 {
		return nil, nil
	}
	return candidate, nil
}
