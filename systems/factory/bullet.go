package factory

import (
	"github.com/automoto/spellcard/archetypes"
	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Bullet sprite sizes
const (
	SmallBullet  = 15.0
	MediumBullet = 30.0
	BigBullet    = 45.0
)

// CreateEnemyBullet spawns an enemy bullet from proto at pos. The prototype's
// laws are copied onto the new entity unchanged.
func CreateEnemyBullet(ecs *ecs.ECS, proto components.BulletSpawner, pos gamemath.Vec2) *donburi.Entry {
	return createBullet(ecs, proto, pos, tags.ResolvEnemyBullet)
}

// CreatePlayerBullet spawns a player owned bullet carrying its damage and
// modifier tags.
func CreatePlayerBullet(ecs *ecs.ECS, proto components.BulletSpawner, pos gamemath.Vec2, damage int, salted, phasing bool) *donburi.Entry {
	b := createBullet(ecs, proto, pos, tags.ResolvPlayerBullet)
	donburi.Add(b, components.PlayerBullet, &components.PlayerBulletData{Damage: damage})
	if salted {
		b.AddComponent(tags.Salted)
	}
	if phasing {
		b.AddComponent(tags.Phasing)
	}
	return b
}

func createBullet(ecs *ecs.ECS, proto components.BulletSpawner, pos gamemath.Vec2, resolvTag string) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	components.Transform.SetValue(bullet, components.TransformData{
		Position: pos,
		Rotation: proto.Rotation,
	})
	components.Collider.SetValue(bullet, components.ColliderData{Radius: proto.Radius})
	components.Sprite.SetValue(bullet, proto.Sprite)

	obj := components.NewCircleObject(pos, proto.Radius, resolvTag)
	obj.Data = bullet.Entity()
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	proto.Attach(bullet)
	return bullet
}
