package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/color-game/internal/catalog/formats"
)

//go:embed defaults/categories.yaml
var defaultCategoriesYAML []byte

// Default returns the embedded default catalog.
func Default() *Catalog {
	doc, err := formats.ParseYAML(defaultCategoriesYAML)
	if err != nil {
		return builtin() // Fallback to hardcoded if embed fails
	}
	return fromDocument(doc)
}

// Load reads a catalog file, choosing the parser by extension.
// An empty path returns the embedded default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	parse, err := formats.Lookup(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	doc, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return fromDocument(doc), nil
}

// fromDocument converts a parsed file into a Catalog.
func fromDocument(doc formats.Document) *Catalog {
	categories := make([]Category, 0, len(doc.Categories))
	for _, cd := range doc.Categories {
		colors := make(map[string][]string, len(cd.Items))
		for color, items := range cd.Items {
			if len(items) == 0 {
				continue
			}
			colors[color] = append([]string(nil), items...)
		}
		categories = append(categories, Category{
			Name:     cd.Name,
			Singular: cd.Singular,
			Colors:   colors,
		})
	}
	return New(categories...)
}

// builtin is the hardcoded catalog used if the embedded file is unreadable.
func builtin() *Catalog {
	return New(Category{
		Name:     "Fruits",
		Singular: "Fruit",
		Colors: map[string][]string{
			"Red":    {"Apple", "Strawberry"},
			"Blue":   {"Blueberry"},
			"Green":  {"Kiwi"},
			"Yellow": {"Banana"},
		},
	})
}
