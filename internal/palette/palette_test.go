package palette

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryOrder(t *testing.T) {
	r := Plain().Colors

	assert.Equal(t, []string{"Red", "Blue", "Green", "Yellow"}, r.Colors())
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, "Green", r.Name(2))
}

func TestRegistryColorsIsCopy(t *testing.T) {
	r := Plain().Colors

	colors := r.Colors()
	colors[0] = "Purple"

	assert.Equal(t, "Red", r.Name(0))
}

func TestRegistryIndex(t *testing.T) {
	r := Plain().Colors

	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{"Red", 0, true},
		{"Blue", 1, true},
		{"Yellow", 3, true},
		{"red", -1, false},
		{"Purple", -1, false},
		{"", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := r.Index(tt.name)
			assert.Equal(t, tt.index, idx)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ok, r.Contains(tt.name))
		})
	}
}

func TestUnknownColorUsesNeutralStyle(t *testing.T) {
	var buf bytes.Buffer
	r := ForWriter(&buf, true).Colors

	assert.Equal(t, "Purple", r.Paint("Purple", "Purple"))
}

func TestColoredPaint(t *testing.T) {
	var buf bytes.Buffer
	r := ForWriter(&buf, true).Colors

	out := r.Paint("Red", "Red")
	assert.Contains(t, out, "Red")
	assert.True(t, strings.HasPrefix(out, "\x1b["), "expected escape sequence, got %q", out)
}

func TestPlainThemeHasNoEscapes(t *testing.T) {
	theme := Plain()

	for _, s := range []string{
		theme.Title.Render("COLOR GAME"),
		theme.Success.Render("Correct!"),
		theme.Failure.Render("Wrong"),
		theme.Colors.Paint("Blue", "Blue"),
	} {
		assert.NotContains(t, s, "\x1b[")
	}
}
