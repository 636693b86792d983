package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjects(t *testing.T) {
	all := Subjects()
	assert.Len(t, all, 21)

	// I, O, W, X, Y are not top-level subject letters.
	for _, absent := range []byte{'I', 'O', 'W', 'X', 'Y'} {
		_, ok := SubjectFromByte(absent)
		assert.False(t, ok, "%c must not be a subject", absent)
	}
}

func TestSubjectFromByte(t *testing.T) {
	s, ok := SubjectFromByte('Q')
	assert.True(t, ok)
	assert.Equal(t, SubjectScience, s)
	assert.Equal(t, "Science", s.Description())
	assert.Equal(t, "Q.txt", s.Filename())

	lower, ok := SubjectFromByte('q')
	assert.True(t, ok)
	assert.Equal(t, s, lower)

	_, ok = SubjectFromByte('7')
	assert.False(t, ok)
}

func TestEntryLine(t *testing.T) {
	e := Entry{Code: "QA76.73.P98", Path: "Science/Mathematics/Computer science/Python", Subject: SubjectScience}
	assert.Equal(t, "QA76.73.P98 - Science/Mathematics/Computer science/Python", e.Line())
}
