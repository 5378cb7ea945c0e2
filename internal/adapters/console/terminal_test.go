package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalReadLine(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("10\r\nда\n"), &out)
	ctx := context.Background()

	line, err := term.ReadLine(ctx, "What time is it? ")
	require.NoError(t, err)
	assert.Equal(t, "10", line)

	line, err = term.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "да", line)

	_, err = term.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "What time is it? > ", out.String())
}

func TestTerminalReadLineCanceled(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("10\n"), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := term.ReadLine(ctx, "prompt")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestTerminalReadLineCanceledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var out bytes.Buffer
	term := NewTerminal(pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := term.ReadLine(ctx, "What time is it? ")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("ReadLine did not return after cancel")
	}

	// A line typed after the cancel is not lost.
	go func() { io.WriteString(pw, "12\n") }()

	line, err := term.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "12", line)
}

func TestTerminalReadLineLongLine(t *testing.T) {
	long := strings.Repeat("9", 70000)
	term := NewTerminal(strings.NewReader(long+"\nlast"), io.Discard)
	ctx := context.Background()

	line, err := term.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, long, line)

	line, err = term.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = term.ReadLine(ctx, "")
	assert.ErrorIs(t, err, io.EOF)
}

func TestTerminalPrint(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	term.Println("1 -", "Burger")
	term.Printf("%d - %s\n", 2, "Combo")

	assert.Equal(t, "1 - Burger\n2 - Combo\n", out.String())
}

func TestScripted(t *testing.T) {
	s := NewScripted("yes")
	ctx := context.Background()

	line, err := s.ReadLine(ctx, "Again? ")
	require.NoError(t, err)
	assert.Equal(t, "yes", line)
	assert.Equal(t, 0, s.Remaining())

	_, err = s.ReadLine(ctx, "More? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, []string{"Again? ", "More? "}, s.Prompts())
	assert.Equal(t, "Again? yes\nMore? ", s.Output())
}
