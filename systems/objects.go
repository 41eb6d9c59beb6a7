package systems

import (
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var collidableQuery = donburi.NewQuery(filter.Contains(
	components.Object, components.Transform, components.Collider,
))

// SyncObjects moves broad-phase bodies to the positions the motion systems
// produced this tick.
func SyncObjects(ecs *ecs.ECS) {
	collidableQuery.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		radius := components.Collider.Get(e).Radius
		components.Object.Get(e).Sync(pos, radius)
	})
}

// DespawnOutOfBounds removes bullets that left the despawn rectangle. Player
// bullets are culled the same way as enemy bullets.
func DespawnOutOfBounds(ecs *ecs.ECS) {
	bounds := gamemath.RectFromCenter(gamemath.Vec2{},
		cfg.Arena.DespawnExtent*2, cfg.Arena.DespawnExtent*2)

	var out []donburi.Entity
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		if !bounds.Contains(components.Transform.Get(e).Position) {
			out = append(out, e.Entity())
		}
	})
	for _, e := range out {
		destroyEntry(ecs, e)
	}
}

// UpdateLifetimes ages every bullet by one tick.
func UpdateLifetimes(ecs *ecs.ECS) {
	step := dt()
	for e := range components.Lifetime.Iter(ecs.World) {
		components.Lifetime.Get(e).Elapsed += step
	}
}
