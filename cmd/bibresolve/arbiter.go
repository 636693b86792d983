package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// terminalArbiter resolves reconciliation ties by asking the user.
// Prompts go to stderr so the final record on stdout stays pipeable.
type terminalArbiter struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalArbiter(in io.Reader, out io.Writer) *terminalArbiter {
	return &terminalArbiter{in: bufio.NewReader(in), out: out}
}

// Choose presents the candidates as a numbered list. Entering a number
// picks that candidate; entering anything else uses it as a freeform
// replacement; a blank line picks the first candidate.
func (a *terminalArbiter) Choose(field string, candidates []string) (string, error) {
	fmt.Fprintf(a.out, "sources disagree on %s:\n", field)
	for i, c := range candidates {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, c)
	}
	fmt.Fprintf(a.out, "pick a number or type a replacement [1]: ")

	line, err := a.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		if len(candidates) == 0 {
			return "", nil
		}
		return candidates[0], nil
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(candidates) {
		return candidates[n-1], nil
	}
	return line, nil
}

// Prompt asks for a freeform value; a blank line leaves the field unset.
func (a *terminalArbiter) Prompt(field string) (string, error) {
	fmt.Fprintf(a.out, "no candidates for %s, enter a value (blank to skip): ", field)
	return a.readLine()
}

// Confirm asks whether a doubtful candidate should be kept. Default is
// yes.
func (a *terminalArbiter) Confirm(field, candidate string, context []string) (bool, error) {
	fmt.Fprintf(a.out, "only one source reports %s %q", field, candidate)
	if len(context) > 0 {
		fmt.Fprintf(a.out, " (others: %s)", strings.Join(context, "; "))
	}
	fmt.Fprintf(a.out, ", keep it? [Y/n]: ")

	line, err := a.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "n", "no":
		return false, nil
	default:
		return true, nil
	}
}

func (a *terminalArbiter) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
