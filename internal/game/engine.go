// Package game implements the rounds and the two-player session of the
// color game: pick a color, then name an item of that color in a random
// category.
package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-game/internal/answer"
	"github.com/vovakirdan/color-game/internal/catalog"
	"github.com/vovakirdan/color-game/internal/console"
	"github.com/vovakirdan/color-game/internal/palette"
)

// TurnResult records what happened during one player's turn.
type TurnResult struct {
	Player   string
	Color    string
	Answer   string
	Answered bool // False when the color had no items and no answer was asked
	Correct  bool
}

// RoundResult records one full round.
type RoundResult struct {
	Number   int
	Category string
	Turns    [PlayerCount]TurnResult
}

// Engine plays rounds against a console.
type Engine struct {
	con     *console.Console
	catalog *catalog.Catalog
	theme   palette.Theme
	picker  Picker
	logger  *log.Logger
}

// NewEngine creates a round engine. A nil logger discards log output.
func NewEngine(con *console.Console, cat *catalog.Catalog, theme palette.Theme, picker Picker, logger *log.Logger) *Engine {
	if logger == nil {
		logger = discardLogger()
	}
	return &Engine{
		con:     con,
		catalog: cat,
		theme:   theme,
		picker:  picker,
		logger:  logger,
	}
}

// PickCategory draws a category uniformly at random. Draws are
// independent, so the same category may come up in several rounds.
func (e *Engine) PickCategory() catalog.Category {
	return e.catalog.Get(e.picker.IntN(e.catalog.Len()))
}

// ShowColors prints the 1-based color menu.
func (e *Engine) ShowColors() {
	colors := e.theme.Colors

	e.con.Println("Available colors:")
	parts := make([]string, colors.Len())
	for i, name := range colors.Colors() {
		parts[i] = colors.Paint(name, fmt.Sprintf("%d) %s", i+1, name))
	}
	e.con.Println(strings.Join(parts, " "))
}

// ChooseColor prompts until the player enters a number between 1 and the
// number of colors, and returns the zero-based color index. There is no
// retry limit; only a closed input ends the loop.
func (e *Engine) ChooseColor(playerName string) (int, error) {
	n := e.theme.Colors.Len()

	for {
		e.con.Printf("%s, choose a color (1-%d): ", playerName, n)

		token, err := e.con.ReadToken()
		if err != nil {
			return 0, err
		}

		choice, convErr := strconv.Atoi(token)
		if convErr != nil {
			// Drop the rest of a garbled line
			if err := e.con.DiscardLine(); err != nil {
				return 0, err
			}
			e.logger.Debug("rejected color input", "player", playerName, "input", token)
			e.con.Println(e.theme.Failure.Render("Invalid input. Enter a number."))
			continue
		}

		if choice < 1 || choice > n {
			e.logger.Debug("color choice out of range", "player", playerName, "choice", choice)
			e.con.Println(e.theme.Failure.Render(fmt.Sprintf("Choose between 1 and %d.", n)))
			continue
		}

		if err := e.con.DiscardLine(); err != nil {
			return 0, err
		}
		return choice - 1, nil
	}
}

// PlayTurn runs one player's turn in category. The player's score grows
// by one on a correct answer and is otherwise unchanged.
func (e *Engine) PlayTurn(cat catalog.Category, p *Player) (TurnResult, error) {
	colors := e.theme.Colors
	result := TurnResult{Player: p.Name}

	e.con.Println(e.theme.Turn.Render(p.Name + "'s turn:"))
	e.ShowColors()

	idx, err := e.ChooseColor(p.Name)
	if err != nil {
		return result, err
	}
	p.Color = colors.Name(idx)
	result.Color = p.Color

	e.con.Println(colors.Paint(p.Color, fmt.Sprintf("%s chose: %s", p.Name, p.Color)))

	items := cat.ItemsFor(p.Color)
	if len(items) == 0 {
		e.con.Println(e.theme.Failure.Render(fmt.Sprintf("No %s %s available.", p.Color, cat.Name)))
		e.con.Println(e.theme.Failure.Render("No point this round."))
		e.logger.Debug("no items for color", "player", p.Name, "category", cat.Name, "color", p.Color)
		return result, nil
	}

	e.con.Printf("Name a %s %s: ", p.Color, cat.Noun())
	text, err := e.con.ReadLine()
	if err != nil {
		return result, err
	}
	result.Answered = true
	result.Answer = text

	if answer.IsValid(text, items) {
		p.Award()
		result.Correct = true
		e.con.Println(e.theme.Success.Render(fmt.Sprintf("Correct! +1 point for %s!", p.Name)))
	} else {
		e.con.Println(e.theme.Failure.Render("Wrong or not in list. No point."))
	}
	e.con.Println()

	e.logger.Debug("turn played",
		"player", p.Name,
		"category", cat.Name,
		"color", p.Color,
		"answer", text,
		"correct", result.Correct,
	)

	return result, nil
}

// PlayRound runs round number of total for both players in order, then
// shows the running scores and waits for Enter.
func (e *Engine) PlayRound(ctx context.Context, number, total int, players *Players) (RoundResult, error) {
	result := RoundResult{Number: number}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	e.con.Clear()
	e.con.Println()
	e.banner(fmt.Sprintf("ROUND %d of %d", number, total), 19)

	cat := e.PickCategory()
	result.Category = cat.Name
	e.logger.Debug("round started", "round", number, "category", cat.Name)

	e.con.Println(e.theme.Category.Render("Category: " + cat.Name))

	for i := range players {
		turn, err := e.PlayTurn(cat, &players[i])
		if err != nil {
			return result, fmt.Errorf("round %d: %w", number, err)
		}
		result.Turns[i] = turn
	}

	e.con.Println(e.theme.Heading.Render("Scores:"))
	for _, p := range players {
		e.con.Printf("%s: %d\n", p.Name, p.Score)
	}

	if err := e.con.Pause("Press Enter for next round..."); err != nil {
		return result, fmt.Errorf("round %d: %w", number, err)
	}
	return result, nil
}

// banner prints a framed section heading.
func (e *Engine) banner(text string, width int) {
	rule := strings.Repeat("=", width)
	e.con.Println(e.theme.Banner.Render(rule))
	e.con.Println(e.theme.Banner.Render("   " + text))
	e.con.Println(e.theme.Banner.Render(rule))
	e.con.Println()
}
