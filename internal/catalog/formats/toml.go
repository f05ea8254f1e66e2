package formats

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

func init() {
	Register(".toml", ParseTOML)
}

// ParseTOML parses a TOML catalog file.
func ParseTOML(data []byte) (Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("toml unmarshal: %w", err)
	}
	return doc, nil
}
