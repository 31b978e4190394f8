package assets

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/automoto/dustbag/shared/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:images
var imageFS embed.FS

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

var (
	imageLoader = NewImageLoader()
)

// GetImage returns the texture for a key such as "player_up_left" or "heart_big".
func GetImage(key string) *ebiten.Image {
	return imageLoader.MustLoadImage(fmt.Sprintf("images/%s.png", key))
}

// ImageKeys lists every texture the arena draws.
func ImageKeys() []string {
	keys := []string{
		"dust", "ghost", "bag",
		"background", "background2", "background3",
	}
	for _, kind := range []rules.HeartKind{rules.HeartSmall, rules.HeartBig} {
		keys = append(keys, kind.Texture())
	}
	keys = append(keys, rules.Default.Texture())
	for _, d := range rules.Diagonals {
		keys = append(keys, d.Texture(), "arrow_"+d.String())
	}
	return keys
}

// PreloadAllImages decodes every texture up front to avoid a hitch on first draw.
func PreloadAllImages() {
	for _, key := range ImageKeys() {
		_ = GetImage(key)
	}
}
