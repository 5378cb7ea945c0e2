package console

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Scripted is a Console that answers prompts from a fixed list of inputs
// and records everything written to it. It is used to drive sessions in tests.
type Scripted struct {
	inputs  []string
	prompts []string
	out     strings.Builder
}

func NewScripted(inputs ...string) *Scripted {
	return &Scripted{inputs: inputs}
}

func (s *Scripted) Println(a ...any) {
	fmt.Fprintln(&s.out, a...)
}

func (s *Scripted) Printf(format string, a ...any) {
	fmt.Fprintf(&s.out, format, a...)
}

func (s *Scripted) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.prompts = append(s.prompts, prompt)
	s.out.WriteString(prompt)

	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	s.out.WriteString(line + "\n")
	return line, nil
}

// Output returns the full transcript, prompts and echoed inputs included.
func (s *Scripted) Output() string {
	return s.out.String()
}

// Prompts returns every prompt passed to ReadLine, in order.
func (s *Scripted) Prompts() []string {
	return s.prompts
}

// Remaining returns the number of inputs not consumed yet.
func (s *Scripted) Remaining() int {
	return len(s.inputs)
}
