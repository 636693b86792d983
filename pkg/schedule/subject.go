// Package schedule turns the Library of Congress classification dataset
// into per-subject flat-file indexes and answers point and range lookups
// against them. The builder runs offline; the index is read-only after
// construction and safe for concurrent lookups.
package schedule

// Subject is one top-level letter of the LC classification outline.
type Subject byte

// The LC outline top-level subjects. I, O, W, X and Y are unassigned.
const (
	SubjectGeneralWorks Subject = 'A'
	SubjectPhilosophy   Subject = 'B'
	SubjectHistoryAux   Subject = 'C'
	SubjectWorldHistory Subject = 'D'
	SubjectAmericasE    Subject = 'E'
	SubjectAmericasF    Subject = 'F'
	SubjectGeography    Subject = 'G'
	SubjectSocial       Subject = 'H'
	SubjectPolitical    Subject = 'J'
	SubjectLaw          Subject = 'K'
	SubjectEducation    Subject = 'L'
	SubjectMusic        Subject = 'M'
	SubjectFineArts     Subject = 'N'
	SubjectLanguage     Subject = 'P'
	SubjectScience      Subject = 'Q'
	SubjectMedicine     Subject = 'R'
	SubjectAgriculture  Subject = 'S'
	SubjectTechnology   Subject = 'T'
	SubjectMilitary     Subject = 'U'
	SubjectNaval        Subject = 'V'
	SubjectBibliography Subject = 'Z'
)

// descriptions are the subject names from the LC Classification Outline.
var descriptions = map[Subject]string{
	SubjectGeneralWorks: "General Works",
	SubjectPhilosophy:   "Philosophy. Psychology. Religion",
	SubjectHistoryAux:   "Auxiliary Sciences of History",
	SubjectWorldHistory: "World History and History of Europe, Asia, Africa, Australia, New Zealand, Etc",
	SubjectAmericasE:    "History of the Americas",
	SubjectAmericasF:    "History of the Americas",
	SubjectGeography:    "Geography. Anthropology. Recreation",
	SubjectSocial:       "Social Sciences",
	SubjectPolitical:    "Political Science",
	SubjectLaw:          "Law",
	SubjectEducation:    "Education",
	SubjectMusic:        "Music and Books On Music",
	SubjectFineArts:     "Fine Arts",
	SubjectLanguage:     "Language and Literature",
	SubjectScience:      "Science",
	SubjectMedicine:     "Medicine",
	SubjectAgriculture:  "Agriculture",
	SubjectTechnology:   "Technology",
	SubjectMilitary:     "Military Science",
	SubjectNaval:        "Naval Science",
	SubjectBibliography: "Bibliography. Library Science. Information Resources (General)",
}

// Subjects returns every assigned subject letter in outline order.
func Subjects() []Subject {
	return []Subject{
		SubjectGeneralWorks, SubjectPhilosophy, SubjectHistoryAux,
		SubjectWorldHistory, SubjectAmericasE, SubjectAmericasF,
		SubjectGeography, SubjectSocial, SubjectPolitical, SubjectLaw,
		SubjectEducation, SubjectMusic, SubjectFineArts, SubjectLanguage,
		SubjectScience, SubjectMedicine, SubjectAgriculture,
		SubjectTechnology, SubjectMilitary, SubjectNaval,
		SubjectBibliography,
	}
}

// SubjectFromByte maps a code's leading character to its subject letter.
func SubjectFromByte(b byte) (Subject, bool) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	s := Subject(b)
	_, ok := descriptions[s]
	return s, ok
}

// String returns the subject letter.
func (s Subject) String() string {
	return string(rune(s))
}

// Description returns the subject's name from the LC outline.
func (s Subject) Description() string {
	return descriptions[s]
}

// Filename returns the schedule file name for this subject.
func (s Subject) Filename() string {
	return s.String() + ".txt"
}

// Entry is one schedule row: a classification code (possibly in range
// notation) and the slash-joined subject hierarchy it resolves to.
type Entry struct {
	Code    string
	Path    string
	Subject Subject
}

// Line renders the entry in the durable file form.
func (e Entry) Line() string {
	return e.Code + " - " + e.Path
}
