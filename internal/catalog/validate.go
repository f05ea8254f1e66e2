package catalog

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyCatalog      = errors.New("catalog: no categories")
	ErrUnnamedCategory   = errors.New("catalog: category has no name")
	ErrDuplicateCategory = errors.New("catalog: duplicate category")
	ErrUnknownColor      = errors.New("catalog: unknown color")
)

// ColorSet reports whether a color name is selectable.
type ColorSet interface {
	Contains(name string) bool
}

// Validate checks that c is non-empty, that category names are present
// and unique, and that every color key is a member of colors.
func Validate(c *Catalog, colors ColorSet) error {
	if c == nil || c.Len() == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, c.Len())
	for i, cat := range c.categories {
		if cat.Name == "" {
			return fmt.Errorf("%w (index %d)", ErrUnnamedCategory, i)
		}
		if seen[cat.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.Name)
		}
		seen[cat.Name] = true

		for color := range cat.Colors {
			if !colors.Contains(color) {
				return fmt.Errorf("%w %q in category %q", ErrUnknownColor, color, cat.Name)
			}
		}
	}

	return nil
}
