package menu

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces holds the fonts menus draw with.
type Faces struct {
	Title *text.GoTextFace
	Entry *text.GoTextFace
	Small *text.GoTextFace
}

// LoadFaces builds the menu faces from the embedded Go fonts.
func LoadFaces() (*Faces, error) {
	boldSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	regularSrc, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}

	return &Faces{
		Title: &text.GoTextFace{Source: boldSrc, Size: 48},
		Entry: &text.GoTextFace{Source: regularSrc, Size: 28},
		Small: &text.GoTextFace{Source: regularSrc, Size: 16},
	}, nil
}
