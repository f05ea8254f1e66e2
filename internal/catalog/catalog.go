// Package catalog holds the static category data of the game: for each
// category, the items players may name for each color.
package catalog

import "strings"

// Category is a named grouping with a list of accepted items per color.
type Category struct {
	Name     string
	Singular string              // Display form used in prompts ("Name a Red Fruit")
	Colors   map[string][]string // Color name -> accepted items, in display order
}

// ItemsFor returns the accepted items for a color.
// A color with no entries yields an empty slice.
func (c Category) ItemsFor(color string) []string {
	items := c.Colors[color]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Noun returns the singular display name of the category.
// Falls back to dropping a trailing "s" from Name.
func (c Category) Noun() string {
	if c.Singular != "" {
		return c.Singular
	}
	return strings.TrimSuffix(c.Name, "s")
}

// Catalog is the ordered, read-only collection of categories.
type Catalog struct {
	categories []Category
}

// New creates a catalog from categories. The slice is copied.
func New(categories ...Category) *Catalog {
	cs := make([]Category, len(categories))
	copy(cs, categories)
	return &Catalog{categories: cs}
}

// All returns the categories in catalog order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Get returns the category at index i.
func (c *Catalog) Get(i int) Category {
	return c.categories[i]
}

// Names returns the category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Find returns the category with the given name.
func (c *Catalog) Find(name string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// ItemsFor returns the accepted items for a category and color.
// Unknown categories and colors yield an empty slice.
func (c *Catalog) ItemsFor(category, color string) []string {
	cat, ok := c.Find(category)
	if !ok {
		return []string{}
	}
	return cat.ItemsFor(color)
}
