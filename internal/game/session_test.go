package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/color-game/internal/console"
	"github.com/vovakirdan/color-game/internal/palette"
)

func runSession(t *testing.T, input string) (Result, string, error) {
	t.Helper()

	var out bytes.Buffer
	con := console.New(strings.NewReader(input), &out)
	e := NewEngine(con, fruitsCatalog(), palette.Plain(), &fixedPicker{seq: []int{0}}, nil)
	s := NewSession(e)

	res, err := s.Run(context.Background())
	return res, out.String(), err
}

func TestSessionPlayerOneWins(t *testing.T) {
	input := "\n" + "Alice Bob\n" +
		strings.Repeat("1\nApple\n"+"1\nCherry\n"+"\n", TotalRounds)

	res, text, err := runSession(t, input)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(res.Rounds) != TotalRounds {
		t.Errorf("played %d rounds, want %d", len(res.Rounds), TotalRounds)
	}
	if res.Players[0].Name != "Alice" || res.Players[1].Name != "Bob" {
		t.Errorf("names = %q, %q", res.Players[0].Name, res.Players[1].Name)
	}
	if res.Players[0].Score != 3 || res.Players[1].Score != 0 {
		t.Errorf("scores = %d, %d; want 3, 0", res.Players[0].Score, res.Players[1].Score)
	}
	if res.Outcome != OutcomePlayer1 {
		t.Errorf("outcome = %v, want Player 1", res.Outcome)
	}
	if res.SessionID == uuid.Nil {
		t.Error("session ID not set")
	}

	for _, want := range []string{
		"COLOR GAME",
		"WHAT COLOR DO YOU CHOOSE?",
		"4. 3 rounds.",
		"Enter name for Player 1: ",
		"Enter name for Player 2: ",
		"Welcome Alice and Bob to 'What Color Do You Choose?'!",
		"ROUND 1 of 3",
		"ROUND 3 of 3",
		"FINAL RESULTS",
		"Winner: Alice!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSessionPlayerTwoWins(t *testing.T) {
	input := "\nAlice\nBob\n" +
		"2\nplum\n" + "2\nBLUEBERRY\n" + "\n" +
		"4\nBanana\n" + "4\nbanana\n" + "\n" +
		"3\nlime\n" + "3\nKiwi\n" + "\n"

	res, text, err := runSession(t, input)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Players[0].Score != 1 || res.Players[1].Score != 3 {
		t.Errorf("scores = %d, %d; want 1, 3", res.Players[0].Score, res.Players[1].Score)
	}
	if res.Outcome != OutcomePlayer2 {
		t.Errorf("outcome = %v, want Player 2", res.Outcome)
	}
	if !strings.Contains(text, "Winner: Bob!") {
		t.Error("winner line missing")
	}
}

func TestSessionTie(t *testing.T) {
	input := "\nAlice Bob\n" +
		strings.Repeat("1\napple\n"+"1\nstrawberry\n"+"\n", TotalRounds)

	res, text, err := runSession(t, input)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Outcome != OutcomeTie {
		t.Errorf("outcome = %v, want Tie", res.Outcome)
	}
	if !strings.Contains(text, "It's a tie!") {
		t.Error("tie line missing")
	}
	if strings.Contains(text, "Winner:") {
		t.Error("tie should not name a winner")
	}
}

func TestSessionInputClosed(t *testing.T) {
	input := "\nAlice Bob\n" + "1\nApple\n" + "1\nApple\n" + "\n" + "2\n"

	res, _, err := runSession(t, input)
	if !errors.Is(err, console.ErrInputClosed) {
		t.Fatalf("Run() error = %v, want ErrInputClosed", err)
	}
	if len(res.Rounds) != 1 {
		t.Errorf("completed %d rounds, want 1", len(res.Rounds))
	}
	if res.Players[0].Score != 1 || res.Players[1].Score != 1 {
		t.Errorf("scores = %d, %d; want 1, 1", res.Players[0].Score, res.Players[1].Score)
	}
}

func TestSessionNoNames(t *testing.T) {
	_, _, err := runSession(t, "\n")
	if !errors.Is(err, console.ErrInputClosed) {
		t.Errorf("Run() error = %v, want ErrInputClosed", err)
	}
}
