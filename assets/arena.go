package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:arena
var arenaFS embed.FS

// ArenaPath is the layout every round is played on.
const ArenaPath = "arena/arena.tmx"

// Corner is a dust entry point and the direction a dust from there carries.
type Corner struct {
	X, Y      float64
	Direction rules.Direction
}

// ButtonSpawn is an on-screen steering arrow.
type ButtonSpawn struct {
	Bounds    gamemath.Rect
	Direction rules.Direction
	Image     string
}

type Arena struct {
	Name        string
	Width       int
	Height      int
	PlayerSpawn math.Vec2
	Corners     []Corner
	Bag         gamemath.Rect
	Buttons     []ButtonSpawn
}

type ArenaLoader struct{}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{}
}

// LoadArena parses an arena layout from the embedded arena directory.
func (l *ArenaLoader) LoadArena(path string) (Arena, error) {
	arenaMap, err := tiled.LoadFile(path, tiled.WithFileSystem(arenaFS))
	if err != nil {
		return Arena{}, fmt.Errorf("failed to load arena %s: %w", path, err)
	}

	arena := Arena{
		Name:   path,
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
		PlayerSpawn: math.Vec2{
			X: float64(arenaMap.Width*arenaMap.TileWidth) / 2,
			Y: float64(arenaMap.Height*arenaMap.TileHeight) / 2,
		},
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.PlayerSpawn = math.Vec2{X: o.X, Y: o.Y}
			}
		case "Corners":
			for _, o := range og.Objects {
				dir, err := rules.ParseDirection(o.Properties.GetString("direction"))
				if err != nil {
					return Arena{}, fmt.Errorf("corner %q in %s: %w", o.Name, path, err)
				}
				arena.Corners = append(arena.Corners, Corner{X: o.X, Y: o.Y, Direction: dir})
			}
		case "Bag":
			for _, o := range og.Objects {
				arena.Bag = gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		case "Buttons":
			for _, o := range og.Objects {
				dir, err := rules.ParseDirection(o.Properties.GetString("direction"))
				if err != nil {
					return Arena{}, fmt.Errorf("button %q in %s: %w", o.Name, path, err)
				}
				arena.Buttons = append(arena.Buttons, ButtonSpawn{
					Bounds:    gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Direction: dir,
					Image:     o.Name,
				})
			}
		}
	}

	if len(arena.Corners) == 0 {
		return Arena{}, fmt.Errorf("arena %s has no dust corners", path)
	}
	return arena, nil
}

// MustLoadArena is LoadArena for startup, where a broken layout is fatal.
func (l *ArenaLoader) MustLoadArena(path string) Arena {
	arena, err := l.LoadArena(path)
	if err != nil {
		panic(err)
	}
	return arena
}
