// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager parses the bundled typeface once and hands out faces by
// size, caching each size.
type FontManager struct {
	source *opentype.Font
	faces  map[float64]font.Face
}

func NewFontManager() (*FontManager, error) {
	source, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled font: %w", err)
	}
	return &FontManager{
		source: source,
		faces:  make(map[float64]font.Face),
	}, nil
}

// Face returns a font.Face for the given point size.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.source, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face (size %v): %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}
