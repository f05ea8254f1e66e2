// Package console provides blocking, line- and token-oriented terminal I/O
// for prompt-driven games.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrInputClosed is returned when the input stream ends while a read is
// waiting for data.
var ErrInputClosed = errors.New("console: input closed")

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[2J"

// Console reads player input and writes prompts and results.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// Option configures a Console.
type Option func(*Console)

// WithClear enables or disables screen clearing.
func WithClear(enabled bool) Option {
	return func(c *Console) {
		c.clear = enabled
	}
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Print writes its operands to the output.
func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

// Println writes its operands followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Clear erases the screen when clearing is enabled.
func (c *Console) Clear() {
	if c.clear {
		io.WriteString(c.out, clearSequence) //nolint:errcheck // best-effort
	}
}

// ReadToken reads the next whitespace-delimited token, skipping any
// leading whitespace including blank lines. The delimiter that ends the
// token is left unread.
func (c *Console) ReadToken() (string, error) {
	var sb strings.Builder

	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() > 0 {
					return sb.String(), nil
				}
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("console: read token: %w", err)
		}

		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			if err := c.in.UnreadRune(); err != nil {
				return "", fmt.Errorf("console: read token: %w", err)
			}
			return sb.String(), nil
		}

		sb.WriteRune(r)
	}
}

// ReadLine reads a full line, allowing spaces, and returns it without the
// line terminator. A final line without a terminator is returned as-is.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console: read line: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// DiscardLine drops everything up to and including the next newline.
// Reaching the end of input is not an error here; the next read reports it.
func (c *Console) DiscardLine() error {
	_, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("console: discard line: %w", err)
	}
	return nil
}

// Pause prints prompt and blocks until the player presses Enter.
func (c *Console) Pause(prompt string) error {
	c.Print(prompt)
	_, err := c.ReadLine()
	return err
}
