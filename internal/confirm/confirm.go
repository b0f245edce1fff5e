// Package confirm implements the yes/no prompt that gates overwrites.
package confirm

import (
	"bufio"
	"fmt"
	"io"
)

// Gate asks the user a yes/no question over a pair of streams.
type Gate struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Gate reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Gate {
	return &Gate{in: bufio.NewReader(in), out: out}
}

// Confirm writes the prompt and reads a single line. Only a line whose
// first character is 'y' or 'Y' counts as confirmation; blank input, a
// closed stream or anything else is a decline. There is no re-prompt.
func (g *Gate) Confirm(prompt string) bool {
	fmt.Fprint(g.out, prompt)

	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return line[0] == 'y' || line[0] == 'Y'
}
