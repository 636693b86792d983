package reconciler

// Arbiter resolves the decisions automatic voting cannot make: ties,
// empty fields, and doubtful minority authors. Implementations may block
// on a human (interactive CLI) or answer deterministically (batch runs,
// tests).
type Arbiter interface {
	// Choose picks one of the distinct candidate strings for a field.
	// Returning a string outside candidates is allowed and means a
	// freeform replacement.
	Choose(field string, candidates []string) (string, error)

	// Prompt asks for a freeform value when no candidates exist at all.
	// An empty return leaves the field unset.
	Prompt(field string) (string, error)

	// Confirm asks whether a doubtful candidate should be kept, with the
	// competing candidates shown as context.
	Confirm(field, candidate string, context []string) (bool, error)
}

// FirstCandidate is the default non-interactive arbiter: ties go to the
// first candidate in source order, empty fields stay empty, and doubtful
// authors are kept. Deterministic, so batch runs never block.
type FirstCandidate struct{}

// Choose returns the first candidate, or "" when there are none.
func (FirstCandidate) Choose(_ string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[0], nil
}

// Prompt leaves the field unset.
func (FirstCandidate) Prompt(string) (string, error) {
	return "", nil
}

// Confirm keeps every doubtful candidate.
func (FirstCandidate) Confirm(string, string, []string) (bool, error) {
	return true, nil
}
