package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/color-game/internal/palette"
)

func TestRenderScores(t *testing.T) {
	out := RenderScores(palette.Plain(), Players{
		{Name: "Alice", Score: 3},
		{Name: "Bartholomew", Score: 12},
	})

	for _, want := range []string{"Player", "Points", "Alice", "Bartholomew", "3", "12"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScores() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain theme produced escape sequences: %q", out)
	}
}

func TestRenderCatalog(t *testing.T) {
	out := RenderCatalog(palette.Plain(), fruitsCatalog())

	for _, want := range []string{"Category", "Red", "Yellow", "Fruits", "Apple, Strawberry", "Banana"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderCatalog() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCatalogMissingColor(t *testing.T) {
	out := RenderCatalog(palette.Plain(), redOnlyCatalog())

	if !strings.Contains(out, "Ferrari") || !strings.Contains(out, "-") {
		t.Errorf("RenderCatalog() = \n%s", out)
	}
}
