package schedule

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	biberrors "github.com/openshelf/bibresolve/pkg/errors"
	"github.com/openshelf/bibresolve/pkg/lcc"
)

// Index answers subject-path lookups against the per-subject schedule
// files. Letters load lazily on first use and stay cached for the life
// of the index; after that the data is read-only, so concurrent lookups
// are safe. Rebuilding the files requires a fresh Index.
type Index struct {
	dir string

	mu      sync.RWMutex
	entries map[Subject][]Entry
}

// NewIndex creates an index over the schedule files in dir.
func NewIndex(dir string) *Index {
	return &Index{
		dir:     dir,
		entries: make(map[Subject][]Entry),
	}
}

// Lookup resolves a classification code to its full schedule line
// ("code - subject path"). An exact entry wins outright; otherwise the
// narrowest matching range entry supplies the path, rendered against the
// requested code. An empty string means the code has no subject.
//
// A missing schedule file fails only this lookup, never the process.
func (idx *Index) Lookup(code string) (string, error) {
	if code == "" {
		return "", nil
	}
	subject, ok := SubjectFromByte(code[0])
	if !ok {
		return "", nil
	}

	entries, err := idx.load(subject)
	if err != nil {
		return "", err
	}

	var (
		best      string
		bestStart string
		bestEnd   string
		haveBest  bool
	)

	for _, entry := range entries {
		if entry.Code == code {
			// Exact entries short-circuit every range candidate.
			return entry.Line(), nil
		}

		start, end, isRange := lcc.SplitRange(entry.Code)
		if !isRange {
			continue
		}

		if lcc.IsCollapsedAlpha(entry.Code) {
			// Collapsed cutter range: the code's class number must equal
			// the entry's prefix exactly, with a cutter letter following.
			// A digit after the prefix is a decimal-extended sibling
			// class number, not a cutter under this entry.
			prefix := alphaRangePrefix(start)
			if prefix == "" {
				continue
			}
			rest, found := strings.CutPrefix(code, prefix+".")
			if !found || rest == "" || rest[0] < 'A' || rest[0] > 'Z' {
				continue
			}
			if !haveBest || lcc.ProperSubrange(start, prefix+".Z", bestStart, bestEnd) {
				best = code + " - " + entry.Path
				bestStart, bestEnd = start, prefix+".Z"
				haveBest = true
			}
			continue
		}

		if !lcc.InRange(code, start, end) {
			continue
		}
		if !haveBest || lcc.ProperSubrange(start, end, bestStart, bestEnd) {
			best = code + " - " + entry.Path
			bestStart, bestEnd = start, end
			haveBest = true
		}
	}

	return best, nil
}

// Accepts reports whether a code is grammatical and present in the
// schedule, exactly or via a range entry.
func (idx *Index) Accepts(code string) bool {
	if !lcc.WellFormed(code) {
		return false
	}
	line, err := idx.Lookup(code)
	return err == nil && line != ""
}

// load returns the cached entries for a subject, reading its schedule
// file on first use.
func (idx *Index) load(subject Subject) ([]Entry, error) {
	idx.mu.RLock()
	entries, ok := idx.entries[subject]
	idx.mu.RUnlock()
	if ok {
		return entries, nil
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	if entries, ok := idx.entries[subject]; ok {
		return entries, nil
	}

	path := filepath.Join(idx.dir, subject.Filename())
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &biberrors.LookupError{Subject: byte(subject), Path: path, Err: biberrors.ErrMissingSchedule}
		}
		return nil, &biberrors.LookupError{Subject: byte(subject), Path: path, Err: err}
	}
	defer f.Close()

	entries = nil
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		sep := strings.Index(line, " - ")
		if sep < 0 {
			continue
		}
		entries = append(entries, Entry{
			Code:    line[:sep],
			Path:    line[sep+len(" - "):],
			Subject: subject,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &biberrors.LookupError{Subject: byte(subject), Path: path, Err: err}
	}

	idx.entries[subject] = entries
	return entries, nil
}

// alphaRangePrefix strips the trailing cutter letter from the start of a
// collapsed alphabetic range ("QK584.6.A" -> "QK584.6").
func alphaRangePrefix(start string) string {
	i := strings.LastIndexByte(start, '.')
	if i <= 0 {
		return ""
	}
	return start[:i]
}
