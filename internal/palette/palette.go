// Package palette defines the selectable colors of the game and the
// styles used to highlight them in terminal output.
package palette

import (
	"github.com/charmbracelet/lipgloss"
)

// Color names, in menu order.
const (
	Red    = "Red"
	Blue   = "Blue"
	Green  = "Green"
	Yellow = "Yellow"
)

// ansiCodes maps each color name to its basic ANSI foreground code.
var ansiCodes = map[string]string{
	Red:    "1",
	Green:  "2",
	Yellow: "3",
	Blue:   "4",
}

// Registry is the fixed, ordered set of colors players choose from.
// The order is both the display order and the 1-based menu order.
type Registry struct {
	names   []string
	styles  map[string]lipgloss.Style
	neutral lipgloss.Style
}

// NewRegistry creates the default color registry with styles bound to r.
func NewRegistry(r *lipgloss.Renderer) *Registry {
	names := []string{Red, Blue, Green, Yellow}
	styles := make(map[string]lipgloss.Style, len(names))
	for _, name := range names {
		styles[name] = r.NewStyle().Foreground(lipgloss.Color(ansiCodes[name]))
	}

	return &Registry{
		names:   names,
		styles:  styles,
		neutral: r.NewStyle(),
	}
}

// Colors returns the color names in menu order.
func (r *Registry) Colors() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of selectable colors.
func (r *Registry) Len() int {
	return len(r.names)
}

// Name returns the color at zero-based index i.
func (r *Registry) Name(i int) string {
	return r.names[i]
}

// Index returns the zero-based menu index of a color name.
func (r *Registry) Index(name string) (int, bool) {
	for i, n := range r.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether name is a selectable color.
func (r *Registry) Contains(name string) bool {
	_, ok := r.Index(name)
	return ok
}

// Style returns the highlight style for a color name.
// Unknown names get the neutral style.
func (r *Registry) Style(name string) lipgloss.Style {
	if s, ok := r.styles[name]; ok {
		return s
	}
	return r.neutral
}

// Paint renders text in the highlight style of the named color.
func (r *Registry) Paint(name, text string) string {
	return r.Style(name).Render(text)
}
