package game

// PlayerCount is the fixed number of players in a session.
const PlayerCount = 2

// Player is one participant of a session.
type Player struct {
	Name  string
	Score int
	Color string // Color chosen in the current round
}

// Award adds one point for a correct answer.
func (p *Player) Award() {
	p.Score++
}

// Players holds exactly two players. Index 0 always moves first.
type Players [PlayerCount]Player

// Outcome is the final result of a session.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomePlayer1
	OutcomePlayer2
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeTie:
		return "Tie"
	case OutcomePlayer1:
		return "Player 1"
	case OutcomePlayer2:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// DecideWinner compares the first and second player's scores.
// The strictly higher score wins; equal scores tie.
func DecideWinner(first, second int) Outcome {
	switch {
	case first > second:
		return OutcomePlayer1
	case second > first:
		return OutcomePlayer2
	default:
		return OutcomeTie
	}
}

// Outcome returns the result for the current scores.
func (p *Players) Outcome() Outcome {
	return DecideWinner(p[0].Score, p[1].Score)
}

// Winner returns the winning player, or false on a tie.
func (p *Players) Winner() (*Player, bool) {
	switch p.Outcome() {
	case OutcomePlayer1:
		return &p[0], true
	case OutcomePlayer2:
		return &p[1], true
	default:
		return nil, false
	}
}
