// Package formats provides pluggable catalog file parsers.
// Parsers register themselves by file extension in init().
package formats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupportedFormat is returned for extensions with no registered parser.
var ErrUnsupportedFormat = errors.New("formats: unsupported catalog format")

// Document is the on-disk shape of a catalog, shared by all formats.
type Document struct {
	Categories []CategoryDoc `yaml:"categories" toml:"categories"`
}

// CategoryDoc describes one category in a catalog file.
type CategoryDoc struct {
	Name     string              `yaml:"name" toml:"name"`
	Singular string              `yaml:"singular,omitempty" toml:"singular,omitempty"`
	Items    map[string][]string `yaml:"items" toml:"items"`
}

// Parser decodes raw file contents into a Document.
type Parser func(data []byte) (Document, error)

var (
	parsers = make(map[string]Parser)
	mu      sync.RWMutex
)

// Register adds a parser for a file extension (including the dot).
// Panics if the extension is already registered.
func Register(ext string, p Parser) {
	mu.Lock()
	defer mu.Unlock()

	ext = strings.ToLower(ext)
	if _, exists := parsers[ext]; exists {
		panic(fmt.Sprintf("formats: extension %q already registered", ext))
	}
	parsers[ext] = p
}

// Lookup returns the parser registered for ext.
func Lookup(ext string) (Parser, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := parsers[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return p, nil
}

// Extensions returns all registered extensions, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]string, 0, len(parsers))
	for ext := range parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
