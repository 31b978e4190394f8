package fonts

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/dustbag/config"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Body  FontName = "body"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	uiSource *text.GoTextFaceSource
)

// LoadDefaults registers the faces every scene draws with.
func LoadDefaults() {
	LoadFontWithSize(HUD, goregular.TTF, cfg.HUD.FontSize)
	LoadFontWithSize(Title, gobold.TTF, 40)
	LoadFontWithSize(Body, goregular.TTF, 18)
	LoadFontWithSize(Small, goregular.TTF, 12)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// UIFace returns a text/v2 face for ebitenui widgets.
func UIFace(size float64) text.Face {
	if uiSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("Failed to create UI font source: %v", err))
		}
		uiSource = src
	}
	return &text.GoTextFace{Source: uiSource, Size: size}
}
