package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title  FontName = "title"
	Normal FontName = "normal"
	Small  FontName = "small"
)

var sizes = map[FontName]float64{
	Title:  24,
	Normal: 14,
	Small:  10,
}

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// Load registers every font face at its default size.
func Load() error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("fonts: %w", err)
	}
	for name, size := range sizes {
		fonts[name] = &text.GoTextFace{Source: source, Size: size}
	}
	return nil
}

// MustLoad is Load for callers that cannot continue without text.
func MustLoad() {
	if err := Load(); err != nil {
		panic(err)
	}
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
