package game

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// TotalRounds is the fixed number of rounds in a session.
const TotalRounds = 3

// Result summarizes a finished session.
type Result struct {
	SessionID uuid.UUID
	Players   Players
	Rounds    []RoundResult
	Outcome   Outcome
}

// Session runs a complete two-player game.
type Session struct {
	id      uuid.UUID
	engine  *Engine
	players Players
	rounds  []RoundResult
	logger  *log.Logger
}

// NewSession creates a session driven by engine.
func NewSession(engine *Engine) *Session {
	id := uuid.New()
	return &Session{
		id:     id,
		engine: engine,
		rounds: make([]RoundResult, 0, TotalRounds),
		logger: engine.logger.With("session", id.String()),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Run plays the whole session: rules, player setup, exactly TotalRounds
// rounds and the final results.
func (s *Session) Run(ctx context.Context) (Result, error) {
	s.logger.Info("session started")

	s.showTitle()
	if err := s.showRules(); err != nil {
		return s.result(), err
	}
	if err := s.setupPlayers(); err != nil {
		return s.result(), err
	}

	for round := 1; round <= TotalRounds; round++ {
		rr, err := s.engine.PlayRound(ctx, round, TotalRounds, &s.players)
		if err != nil {
			return s.result(), err
		}
		s.rounds = append(s.rounds, rr)
	}

	s.showFinalResults()

	res := s.result()
	s.logger.Info("session finished",
		"outcome", res.Outcome,
		"score1", s.players[0].Score,
		"score2", s.players[1].Score,
	)
	return res, nil
}

func (s *Session) result() Result {
	rounds := make([]RoundResult, len(s.rounds))
	copy(rounds, s.rounds)
	return Result{
		SessionID: s.id,
		Players:   s.players,
		Rounds:    rounds,
		Outcome:   s.players.Outcome(),
	}
}

func (s *Session) showTitle() {
	con, theme := s.engine.con, s.engine.theme
	rule := strings.Repeat("=", 22)

	con.Println(theme.Title.Render(rule))
	con.Println(theme.Title.Render(" COLOR GAME"))
	con.Println(theme.Title.Render(rule))
}

func (s *Session) showRules() error {
	con, theme := s.engine.con, s.engine.theme

	con.Clear()
	rule := strings.Repeat("=", 36)
	con.Println(theme.Banner.Render(rule))
	con.Println(theme.Banner.Render("   WHAT COLOR DO YOU CHOOSE?"))
	con.Println(theme.Banner.Render(rule))
	con.Println()
	con.Println("Rules:")
	con.Println("1. Choose a color.")
	con.Println("2. Name an item in the category matching the color.")
	con.Println("3. Earn points for correct answers.")
	con.Printf("4. %d rounds.\n", TotalRounds)
	con.Println(theme.Success.Render("Let's begin!"))

	return con.Pause("Press Enter to continue...")
}

// setupPlayers reads the two player names. Names are single tokens and
// are not checked for emptiness or uniqueness.
func (s *Session) setupPlayers() error {
	con, theme := s.engine.con, s.engine.theme

	con.Println()
	for i := range s.players {
		con.Printf("Enter name for Player %d: ", i+1)
		name, err := con.ReadToken()
		if err != nil {
			return fmt.Errorf("player %d name: %w", i+1, err)
		}
		s.players[i] = Player{Name: name}
	}

	con.Clear()
	con.Println()
	con.Println(theme.Success.Render(fmt.Sprintf(
		"Welcome %s and %s to 'What Color Do You Choose?'!",
		s.players[0].Name, s.players[1].Name,
	)))
	con.Println()

	s.logger.Debug("players ready", "player1", s.players[0].Name, "player2", s.players[1].Name)
	return nil
}

func (s *Session) showFinalResults() {
	con, theme := s.engine.con, s.engine.theme

	con.Clear()
	con.Println()
	s.engine.banner("FINAL RESULTS", 19)

	con.Println(RenderScores(theme, s.players))
	con.Println()

	if winner, ok := s.players.Winner(); ok {
		con.Println(theme.Success.Render(fmt.Sprintf("Winner: %s!", winner.Name)))
	} else {
		con.Println(theme.Neutral.Render("It's a tie!"))
	}
}

// discardLogger returns a logger that drops all output.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
