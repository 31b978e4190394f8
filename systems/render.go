package systems

import (
	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackgrounds renders the arena backgrounds, oldest first so a fading-in one lands on top.
func DrawBackgrounds(ecs *ecs.ECS, screen *ebiten.Image) {
	offsetX, offsetY := cameraOffset(ecs)

	var outgoing, incoming []*donburi.Entry
	tags.Background.Each(ecs.World, func(e *donburi.Entry) {
		if components.Background.Get(e).Outgoing {
			outgoing = append(outgoing, e)
		} else {
			incoming = append(incoming, e)
		}
	})

	for _, e := range append(outgoing, incoming...) {
		sprite := components.Sprite.Get(e)
		if sprite.Alpha <= 0 {
			continue
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(offsetX, offsetY)
		drawOp.ColorScale.ScaleAlpha(float32(sprite.Alpha))
		screen.DrawImage(assets.GetImage(sprite.Image), drawOp)
	}
}

// DrawSprites renders every moving entity centred on its object.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	offsetX, offsetY := cameraOffset(ecs)

	// Hearts under dust under ghosts, with the player on top
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Heart, tags.Dust, tags.Ghost, tags.Player} {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			drawSprite(screen, e, offsetX, offsetY)
		})
	}
}

func drawSprite(screen *ebiten.Image, e *donburi.Entry, offsetX, offsetY float64) {
	sprite := components.Sprite.Get(e)
	if sprite.Alpha <= 0 {
		return
	}
	img := assets.GetImage(sprite.Image)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	center := objectCenter(e)

	scale := sprite.Scale
	if e.HasComponent(components.ScaleBump) {
		scale *= components.ScaleBump.Get(e).Scale
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Anchor at the centre of the sprite
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(center.X+offsetX, center.Y+offsetY)

	if e.HasComponent(components.Flash) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
		}
	}
	drawOp.ColorScale.ScaleAlpha(float32(sprite.Alpha))

	screen.DrawImage(img, drawOp)
}

// DrawBag renders the bag icon, tinted and pulsing while full.
func DrawBag(ecs *ecs.ECS, screen *ebiten.Image) {
	bagEntry, ok := tags.Bag.First(ecs.World)
	if !ok {
		return
	}
	bag := components.Bag.Get(bagEntry)
	sprite := components.Sprite.Get(bagEntry)
	img := assets.GetImage(sprite.Image)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	center := bag.Bounds.Center()

	scale := sprite.Scale * bag.Scale

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(center.X, center.Y)

	if bag.Full {
		tint := cfg.Bag.FullTint
		drawOp.ColorScale.Scale(float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, 1)
	}

	screen.DrawImage(img, drawOp)
}

// DrawButtons renders the on-screen arrows, slightly brighter while held.
func DrawButtons(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Button.Each(ecs.World, func(e *donburi.Entry) {
		button := components.Button.Get(e)
		sprite := components.Sprite.Get(e)
		img := assets.GetImage(sprite.Image)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		center := button.Bounds.Center()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
		drawOp.GeoM.Translate(center.X, center.Y)

		alpha := float32(sprite.Alpha)
		if button.Pressed {
			alpha = 1
		}
		drawOp.ColorScale.ScaleAlpha(alpha)

		screen.DrawImage(img, drawOp)
	})
}
