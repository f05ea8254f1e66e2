package palette

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme contains all visual styles used by the game's console output.
type Theme struct {
	Renderer *lipgloss.Renderer
	Colors   *Registry

	Title    lipgloss.Style // Program title banner
	Banner   lipgloss.Style // Section banners (rules, rounds, results)
	Category lipgloss.Style
	Turn     lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Neutral  lipgloss.Style
	Heading  lipgloss.Style
}

// NewTheme returns the default theme rendering through r.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer: r,
		Colors:   NewRegistry(r),

		Title:    r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Banner:   r.NewStyle().Foreground(lipgloss.Color("3")),
		Category: r.NewStyle().Foreground(lipgloss.Color("4")),
		Turn:     r.NewStyle().Foreground(lipgloss.Color("2")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Failure:  r.NewStyle().Foreground(lipgloss.Color("1")),
		Neutral:  r.NewStyle().Foreground(lipgloss.Color("4")),
		Heading:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// ForWriter returns a theme for w. When color is false, all styles render
// plain text regardless of the terminal's capabilities.
func ForWriter(w io.Writer, color bool) Theme {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return NewTheme(r)
}

// Plain returns a theme that never emits escape sequences.
func Plain() Theme {
	return ForWriter(io.Discard, false)
}
