package schedule

import (
	"bufio"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/logging"
)

// classificationTag is the MARC datafield holding classification rows.
const classificationTag = "153"

// Builder regenerates the per-subject schedule files from the raw MARCXML
// classification dataset. It must not run concurrently with lookups
// against the same directory.
type Builder struct{}

// NewBuilder creates a schedule builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Extract streams the MARCXML classification dataset from r and writes one
// schedule file per subject letter into dir, then deduplicates each file
// so only the last entry per code survives (a later record carries the
// more complete heading chain).
func (b *Builder) Extract(ctx context.Context, r io.Reader, dir string) error {
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return biberrors.WrapIO("create", dir, err)
	}

	out, err := newSubjectWriters(dir)
	if err != nil {
		return err
	}
	defer out.Close()

	decoder := xml.NewDecoder(r)
	records := 0
	for {
		if err := ctx.Err(); err != nil {
			return biberrors.ErrCanceled
		}

		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return biberrors.WrapParse("marcxml", "", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "datafield" || attr(se, "tag") != classificationTag {
			continue
		}

		if err := b.processDatafield(decoder, out); err != nil {
			return err
		}
		records++
	}

	if err := out.Close(); err != nil {
		return err
	}

	log.Info().Int("records", records).Str("dir", dir).Msg("Extracted classification records")

	for _, subject := range Subjects() {
		if err := dedupFile(filepath.Join(dir, subject.Filename())); err != nil {
			return err
		}
	}
	return nil
}

// processDatafield consumes the subfields of one classification datafield
// and emits at most one schedule line.
//
// Subfield roles: z carries a continuation prefix, a the primary code,
// c a range terminator, h and j heading and caption text.
func (b *Builder) processDatafield(decoder *xml.Decoder, out *subjectWriters) error {
	var (
		buf           strings.Builder
		subject       Subject
		hasSubject    bool
		prefixPending bool
		lastPrimary   string
		skip          bool
	)

	for {
		tok, err := decoder.Token()
		if err != nil {
			return biberrors.WrapParse("marcxml", "", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "subfield" {
				continue
			}
			code := attr(t, "code")
			var content string
			if err := decoder.DecodeElement(&content, &t); err != nil {
				return biberrors.WrapParse("marcxml", "", err)
			}

			switch code {
			case "z":
				// Continuation prefix: determines the output file and
				// seeds the buffer; the primary code follows.
				prefixPending = true
				subject, hasSubject = subjectOf(content)
				buf.Reset()
				buf.WriteString(content)

			case "a":
				lastPrimary = content
				if prefixPending {
					prefixPending = false
					if !strings.HasPrefix(content, ".") {
						buf.WriteString(".")
					}
					buf.WriteString(content)
					buf.WriteString(" - ")
					buf.WriteString(subject.Description())
				} else {
					subject, hasSubject = subjectOf(content)
					buf.Reset()
					buf.WriteString(content)
					buf.WriteString(" - ")
					buf.WriteString(subject.Description())
				}

			case "c":
				// Range terminator: the buffered heading text belongs to
				// the single-code reading and is discarded.
				buf.Reset()
				skip = false
				switch {
				case lastPrimary == "" || !hasSubject:
					skip = true
				case !strings.HasSuffix(content, "Z"):
					// Numeric span, e.g. KBM2474 -> KBM2478.
					digits := firstDigitSuffix(content)
					if digits == "" {
						skip = true
						break
					}
					buf.WriteString(lastPrimary)
					buf.WriteString("-")
					buf.WriteString(digits)
					buf.WriteString(" - ")
					buf.WriteString(subject.Description())
				default:
					// Collapsed alphabetic range, e.g. QK584.6.A -> QK584.6.Z.
					suffix := content[strings.LastIndexByte(content, '.')+1:]
					buf.WriteString(lastPrimary)
					buf.WriteString("-")
					buf.WriteString(suffix)
					buf.WriteString(" - ")
					buf.WriteString(subject.Description())
				}

			case "h", "j":
				buf.WriteString("/")
				buf.WriteString(content)
			}

		case xml.EndElement:
			if t.Name.Local != "datafield" {
				continue
			}
			if hasSubject && !skip && buf.Len() > 0 {
				return out.writeln(subject, buf.String())
			}
			return nil
		}
	}
}

// subjectOf derives the subject letter from the first alphabetic
// character of a code or prefix.
func subjectOf(code string) (Subject, bool) {
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return SubjectFromByte(c)
		}
	}
	return 0, false
}

// firstDigitSuffix returns the terminator text from its first digit on,
// or "" when the terminator holds no digit at all. The digit-free case
// has no deterministic reading, so the record is skipped rather than
// written as a degenerate entry.
func firstDigitSuffix(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return s[i:]
		}
	}
	return ""
}

// attr returns the value of the named attribute on a start element.
func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// subjectWriters manages one buffered output file per subject letter.
type subjectWriters struct {
	files   map[Subject]*os.File
	writers map[Subject]*bufio.Writer
	closed  bool
}

func newSubjectWriters(dir string) (*subjectWriters, error) {
	out := &subjectWriters{
		files:   make(map[Subject]*os.File, len(Subjects())),
		writers: make(map[Subject]*bufio.Writer, len(Subjects())),
	}
	for _, subject := range Subjects() {
		path := filepath.Join(dir, subject.Filename())
		f, err := os.Create(path)
		if err != nil {
			_ = out.Close()
			return nil, biberrors.WrapIO("create", path, err)
		}
		out.files[subject] = f
		out.writers[subject] = bufio.NewWriterSize(f, 1<<20)
	}
	return out, nil
}

func (w *subjectWriters) writeln(subject Subject, line string) error {
	bw, ok := w.writers[subject]
	if !ok {
		return nil
	}
	if _, err := bw.WriteString(line); err != nil {
		return biberrors.WrapIO("write", subject.Filename(), err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return biberrors.WrapIO("write", subject.Filename(), err)
	}
	return nil
}

// Close flushes and closes every writer. Safe to call twice.
func (w *subjectWriters) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	var firstErr error
	for subject, bw := range w.writers {
		if err := bw.Flush(); err != nil && firstErr == nil {
			firstErr = biberrors.WrapIO("write", subject.Filename(), err)
		}
	}
	for subject, f := range w.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = biberrors.WrapIO("close", subject.Filename(), err)
		}
	}
	return firstErr
}

// dedupFile keeps only the last line per distinct code (the text before
// the first " - "), preserving the surviving lines' relative order.
func dedupFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return biberrors.WrapIO("read", path, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}

	last := make(map[string]int, len(lines))
	for i, line := range lines {
		last[lineCode(line)] = i
	}

	var out strings.Builder
	out.Grow(len(data))
	for i, line := range lines {
		if last[lineCode(line)] == i {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}

	return biberrors.WrapIO("write", path, os.WriteFile(path, []byte(out.String()), 0o644))
}

// lineCode extracts the code column from a schedule line.
func lineCode(line string) string {
	if i := strings.Index(line, " - "); i >= 0 {
		return line[:i]
	}
	return line
}
