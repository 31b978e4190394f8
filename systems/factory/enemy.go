package factory

import (
	"github.com/automoto/dustbag/archetypes"
	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateDust spawns a dust at a corner, heading for target.
func CreateDust(ecs *ecs.ECS, corner assets.Corner, target math.Vec2, speed float64) *donburi.Entry {
	dust := archetypes.Dust.Spawn(ecs)

	size := cfg.Dust.HitboxSize
	newCenteredObject(ecs, dust, corner.X, corner.Y, size, size, tags.ResolvDust)

	components.Dust.SetValue(dust, components.DustData{Direction: corner.Direction})
	components.Velocity.SetValue(dust, components.VelocityData{
		Vec2: gamemath.VelocityToward(math.NewVec2(corner.X, corner.Y), target, speed),
	})
	components.Sprite.SetValue(dust, components.SpriteData{
		Image: "dust",
		Scale: cfg.Dust.Scale,
		Alpha: 1,
	})

	return dust
}

// CreateHeart spawns a heart at pos. Its velocity is set once and never re-aimed.
func CreateHeart(ecs *ecs.ECS, kind rules.HeartKind, pos, target math.Vec2) *donburi.Entry {
	heart := archetypes.Heart.Spawn(ecs)

	size := cfg.Heart.HitboxSize
	newCenteredObject(ecs, heart, pos.X, pos.Y, size, size, tags.ResolvHeart)

	components.Heart.SetValue(heart, components.HeartData{Kind: kind})
	components.Velocity.SetValue(heart, components.VelocityData{
		Vec2: gamemath.VelocityToward(pos, target, cfg.Heart.Speed),
	})
	components.Sprite.SetValue(heart, components.SpriteData{
		Image: kind.Texture(),
		Scale: cfg.Heart.Scale,
		Alpha: 1,
	})

	return heart
}

// CreateGhost spawns a ghost outside the given edge, flying through target.
func CreateGhost(ecs *ecs.ECS, side gamemath.Side, pos, target math.Vec2, speed float64) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(ecs)

	newCenteredObject(ecs, ghost, pos.X, pos.Y, cfg.Ghost.HitboxWidth, cfg.Ghost.HitboxHeight, tags.ResolvGhost)

	components.Ghost.SetValue(ghost, components.GhostData{Side: side.String()})
	components.Velocity.SetValue(ghost, components.VelocityData{
		Vec2: gamemath.VelocityToward(pos, target, speed),
	})
	components.Sprite.SetValue(ghost, components.SpriteData{
		Image: "ghost",
		Scale: cfg.Ghost.Scale,
		Alpha: 1,
	})
	components.AutoDestroy.SetValue(ghost, components.AutoDestroyData{
		FramesRemaining: cfg.Frames(cfg.Ghost.Lifetime),
	})

	return ghost
}
