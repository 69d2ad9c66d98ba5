package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/gorewood/scribe/internal/clarify"
)

// stdinAsker reads one line from the given reader per question, writing
// the prompt to the given writer. It is the interactive implementation of
// the clarify.Asker capability; tests substitute scripted askers.
type stdinAsker struct {
	in  *bufio.Reader
	out io.Writer
}

func newStdinAsker(in io.Reader, out io.Writer) *stdinAsker {
	return &stdinAsker{in: bufio.NewReader(in), out: out}
}

// Ask prints the question and blocks until a line of input arrives.
// EOF yields an empty answer, which callers treat as "skip".
func (a *stdinAsker) Ask(question string) (string, error) {
	if _, err := io.WriteString(a.out, question+" "); err != nil {
		return "", err
	}
	line, err := a.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var _ clarify.Asker = (*stdinAsker)(nil)
