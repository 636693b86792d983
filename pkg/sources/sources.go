// Package sources defines the common candidate shape produced by every
// bibliographic source and the registry describing which sources exist,
// which one is authoritative for classification, and which report
// authors. Each source's raw payload shape lives in its own subpackage
// parser; nothing source-specific leaks into reconciliation.
package sources

import (
	"github.com/openshelf/bibresolve/pkg/lcc"
	"github.com/openshelf/bibresolve/pkg/schedule"
)

// ID identifies one bibliographic source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Known source IDs.
const (
	LibraryOfCongressID ID = "loc"
	OpenLibraryID       ID = "openlibrary"
	GoogleBooksID       ID = "googlebooks"
)

// Candidate is one source's answer for a single book lookup. Immutable
// once produced; a nil Candidate means the source failed or had nothing.
type Candidate struct {
	Source  ID
	Title   string
	Authors []string

	// RawCode is the classification code exactly as the source reported
	// it, Code its normalized form. Subject is the resolved subject path
	// and is only trustworthy after ResolveSubject.
	RawCode string
	Code    string
	Subject string
}

// ResolveSubject normalizes the candidate's raw classification code and
// resolves it against the schedule index. A malformed code or one absent
// from the schedule leaves Subject empty; only a failed schedule load is
// reported.
func (c *Candidate) ResolveSubject(idx *schedule.Index) error {
	c.Subject = ""
	c.Code = lcc.NormalizeRaw(c.RawCode)
	if c.Code == "" {
		return nil
	}

	if !lcc.IsRange(c.Code) && !lcc.WellFormed(c.Code) {
		c.Code = ""
		return nil
	}

	line, err := idx.Lookup(c.Code)
	if err != nil {
		return err
	}
	c.Subject = line
	return nil
}

// HasRangeCode reports whether the candidate's classification code is
// itself written in collapsed range notation. Range codes are less
// specific than exact ones and are discarded from subject voting when
// anything better exists.
func (c *Candidate) HasRangeCode() bool {
	return lcc.IsRange(c.Code)
}

// Parser turns one source's raw payload into the common candidate shape.
type Parser interface {
	// ID returns the source this parser understands
	ID() ID

	// Parse extracts a candidate from a raw payload. A payload with no
	// usable record yields a nil candidate and no error.
	Parse(payload []byte) (*Candidate, error)
}
