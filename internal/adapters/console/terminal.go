package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// Terminal implements ports.Console over a line-oriented reader and writer,
// normally os.Stdin and os.Stdout.
//
// Lines are read by a background goroutine started on the first ReadLine,
// so a blocked read can be abandoned when the context is canceled. A line
// that arrives after cancellation is handed to the next ReadLine.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	lines chan lineResult
	start sync.Once
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan lineResult),
	}
}

func (t *Terminal) Println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

func (t *Terminal) Printf(format string, a ...any) {
	fmt.Fprintf(t.out, format, a...)
}

// ReadLine prints prompt and waits for the next line or for ctx to end.
// Lines have no length limit. End of input is reported as io.EOF.
func (t *Terminal) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}

	t.start.Do(func() { go t.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (t *Terminal) readLoop() {
	defer close(t.lines)

	for {
		line, err := t.in.ReadString('\n')
		if line != "" {
			t.lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			t.lines <- lineResult{err: fmt.Errorf("read line: %w", err)}
		}
		return
	}
}
