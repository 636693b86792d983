package schedule

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datafield(subfields ...string) string {
	var b strings.Builder
	b.WriteString(`<record><datafield tag="153" ind1=" " ind2=" ">`)
	for i := 0; i+1 < len(subfields); i += 2 {
		b.WriteString(`<subfield code="` + subfields[i] + `">` + subfields[i+1] + `</subfield>`)
	}
	b.WriteString(`</datafield></record>`)
	return b.String()
}

func collection(records ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><collection>` + strings.Join(records, "") + `</collection>`
}

func extract(t *testing.T, xml string) string {
	t.Helper()
	dir := t.TempDir()
	b := NewBuilder()
	require.NoError(t, b.Extract(context.Background(), strings.NewReader(xml), dir))
	return dir
}

func fileLines(t *testing.T, dir string, subject Subject) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, subject.Filename()))
	require.NoError(t, err)
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func TestExtractPlainRecord(t *testing.T) {
	dir := extract(t, collection(datafield(
		"a", "KBR39.2",
		"h", "History of canon law",
		"h", "Official acts of the Holy See",
		"j", "Signatura Gratiae. Signatura of Grace",
	)))

	lines := fileLines(t, dir, SubjectLaw)
	require.Len(t, lines, 1)
	assert.Equal(t,
		"KBR39.2 - Law/History of canon law/Official acts of the Holy See/Signatura Gratiae. Signatura of Grace",
		lines[0])
}

func TestExtractPrefixedRecord(t *testing.T) {
	dir := extract(t, collection(datafield(
		"z", "P-PZ20",
		"a", "176.5.H57",
		"h", "Table for literature (194 nos.)",
	)))

	lines := fileLines(t, dir, SubjectLanguage)
	require.Len(t, lines, 1)
	assert.Equal(t,
		"P-PZ20.176.5.H57 - Language and Literature/Table for literature (194 nos.)",
		lines[0])
}

func TestExtractDotContinuation(t *testing.T) {
	dir := extract(t, collection(datafield(
		"z", "BX7",
		"a", ".x8",
		"h", "Heading",
	)))

	lines := fileLines(t, dir, SubjectPhilosophy)
	require.Len(t, lines, 1)
	assert.Equal(t, "BX7.x8 - Philosophy. Psychology. Religion/Heading", lines[0])
}

func TestExtractNumericSpan(t *testing.T) {
	dir := extract(t, collection(datafield(
		"a", "KBM2474",
		"c", "KBM2478",
		"h", "Jewish law. Halakhah",
	)))

	lines := fileLines(t, dir, SubjectLaw)
	require.Len(t, lines, 1)
	assert.Equal(t, "KBM2474-2478 - Law/Jewish law. Halakhah", lines[0])
}

func TestExtractCollapsedAlphaRange(t *testing.T) {
	dir := extract(t, collection(datafield(
		"z", "G6",
		"a", "70.A4",
		"c", "70.Z",
		"h", "Table of geographical subdivisions (96 numbers)",
	)))

	lines := fileLines(t, dir, SubjectGeography)
	require.Len(t, lines, 1)
	assert.Equal(t, "70.A4-Z - Geography. Anthropology. Recreation/Table of geographical subdivisions (96 numbers)", lines[0])
}

func TestExtractDigitFreeTerminatorSkipped(t *testing.T) {
	dir := extract(t, collection(
		datafield("a", "QA76", "c", "QQ", "h", "Orphan heading"),
		datafield("a", "QA77", "h", "Kept"),
	))

	lines := fileLines(t, dir, SubjectScience)
	require.Len(t, lines, 1)
	assert.Equal(t, "QA77 - Science/Kept", lines[0])
}

func TestExtractSkipsOtherDatafields(t *testing.T) {
	xml := collection(
		`<record><datafield tag="010"><subfield code="a">CF 00433935</subfield></datafield>` +
			`<datafield tag="153"><subfield code="a">Z253</subfield><subfield code="h">Printing</subfield></datafield></record>`,
	)
	dir := extract(t, xml)

	lines := fileLines(t, dir, SubjectBibliography)
	require.Len(t, lines, 1)
	assert.Equal(t, "Z253 - Bibliography. Library Science. Information Resources (General)/Printing", lines[0])
}

func TestExtractDedupKeepsLastEntry(t *testing.T) {
	dir := extract(t, collection(
		datafield("a", "QA76.73", "h", "Short chain"),
		datafield("a", "QA75", "h", "Between"),
		datafield("a", "QA76.73", "h", "Longer", "h", "Chain"),
	))

	lines := fileLines(t, dir, SubjectScience)
	require.Len(t, lines, 2)
	assert.Equal(t, "QA75 - Science/Between", lines[0])
	assert.Equal(t, "QA76.73 - Science/Longer/Chain", lines[1])
}

func TestExtractCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBuilder()
	err := b.Extract(ctx, strings.NewReader(collection()), t.TempDir())
	require.Error(t, err)
}
