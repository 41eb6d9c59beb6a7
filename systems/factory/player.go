package factory

import (
	"github.com/automoto/spellcard/archetypes"
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	pos := gamemath.V(cfg.Player.StartX, cfg.Player.StartY)

	components.Transform.SetValue(player, components.TransformData{Position: pos})
	components.Collider.SetValue(player, components.ColliderData{Radius: cfg.Player.Radius})
	components.Sprite.SetValue(player, components.SpriteData{Key: "player", Size: 32})
	components.Player.SetValue(player, components.PlayerData{Speed: cfg.Player.Speed})
	components.Lives.SetValue(player, components.LivesData{Lives: cfg.Player.Lives})
	components.Ammo.SetValue(player, components.AmmoData{Ammo: cfg.Player.Ammo})

	obj := components.NewCircleObject(pos, cfg.Player.Radius, tags.ResolvPlayer)
	obj.Data = player.Entity()
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}
