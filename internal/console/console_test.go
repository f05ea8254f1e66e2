package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadTokenSkipsWhitespace(t *testing.T) {
	c := New(strings.NewReader("  \n\nAlice   Bob\n"), &bytes.Buffer{})

	first, err := c.ReadToken()
	if err != nil {
		t.Fatalf("ReadToken() failed: %v", err)
	}
	second, err := c.ReadToken()
	if err != nil {
		t.Fatalf("ReadToken() failed: %v", err)
	}

	if first != "Alice" || second != "Bob" {
		t.Errorf("tokens = %q, %q; want Alice, Bob", first, second)
	}

	// Newline after Bob is left for the next reader
	line, err := c.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() failed: %v", err)
	}
	if line != "" {
		t.Errorf("rest of line = %q, want empty", line)
	}
}

func TestReadTokenAtEOF(t *testing.T) {
	c := New(strings.NewReader("last"), &bytes.Buffer{})

	tok, err := c.ReadToken()
	if err != nil || tok != "last" {
		t.Fatalf("ReadToken() = %q, %v; want last, nil", tok, err)
	}

	_, err = c.ReadToken()
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("ReadToken() at EOF error = %v, want ErrInputClosed", err)
	}
}

func TestReadLine(t *testing.T) {
	c := New(strings.NewReader("green bean\r\nno newline"), &bytes.Buffer{})

	tests := []string{"green bean", "no newline"}
	for _, want := range tests {
		got, err := c.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() failed: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := c.ReadLine(); !errors.Is(err, ErrInputClosed) {
		t.Errorf("ReadLine() at EOF error = %v, want ErrInputClosed", err)
	}
}

func TestReadLineEmpty(t *testing.T) {
	c := New(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := c.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() failed: %v", err)
	}
	if got != "" {
		t.Errorf("ReadLine() = %q, want empty", got)
	}
}

func TestDiscardLine(t *testing.T) {
	c := New(strings.NewReader("2 extra words\nnext\n"), &bytes.Buffer{})

	if _, err := c.ReadToken(); err != nil {
		t.Fatalf("ReadToken() failed: %v", err)
	}
	if err := c.DiscardLine(); err != nil {
		t.Fatalf("DiscardLine() failed: %v", err)
	}

	line, _ := c.ReadLine()
	if line != "next" {
		t.Errorf("ReadLine() after discard = %q, want next", line)
	}

	// Discarding at EOF is not an error
	if err := c.DiscardLine(); err != nil {
		t.Errorf("DiscardLine() at EOF = %v, want nil", err)
	}
}

func TestPause(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("\n"), &out)

	if err := c.Pause("Press Enter to continue..."); err != nil {
		t.Fatalf("Pause() failed: %v", err)
	}
	if out.String() != "Press Enter to continue..." {
		t.Errorf("output = %q", out.String())
	}

	if err := c.Pause("again"); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Pause() at EOF error = %v, want ErrInputClosed", err)
	}
}

func TestClear(t *testing.T) {
	var out bytes.Buffer

	New(strings.NewReader(""), &out).Clear()
	if out.Len() != 0 {
		t.Errorf("Clear() without WithClear wrote %q", out.String())
	}

	New(strings.NewReader(""), &out, WithClear(true)).Clear()
	if out.String() != clearSequence {
		t.Errorf("Clear() wrote %q, want %q", out.String(), clearSequence)
	}
}
