package reconciler

import "strings"

// Record is the reconciled metadata for one book.
type Record struct {
	ISBN    string   `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Title   string   `json:"title" yaml:"title"`
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Subject string   `json:"subject,omitempty" yaml:"subject,omitempty"`
}

// JoinedAuthors returns the author list in the semicolon-joined form
// metadata writers expect.
func (r *Record) JoinedAuthors() string {
	return strings.Join(r.Authors, "; ")
}

// Empty reports whether reconciliation produced no usable field.
func (r *Record) Empty() bool {
	return r.Title == "" && r.Subject == "" && len(r.Authors) == 0
}
