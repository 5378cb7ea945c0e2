package ports

import "context"

// Console is the guest-facing terminal: it prints prompts and reads answers.
type Console interface {
	// Print a line of output.
	Println(a ...any)
	// Print formatted output.
	Printf(format string, a ...any)
	// Print the prompt and read one line of input, without the trailing newline.
	// It returns io.EOF once the input is exhausted.
	ReadLine(ctx context.Context, prompt string) (string, error)
}
