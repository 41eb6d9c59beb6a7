package archetypes

import (
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Encounter = newArchetype(
		components.Encounter,
		components.HitQueue,
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Collider,
		components.Object,
		components.Sprite,
		components.Lives,
		components.Ammo,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Collider,
		components.Object,
		components.Sprite,
		components.Health,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Transform,
		components.Collider,
		components.Object,
		components.Sprite,
		components.Lifetime,
	)
	Emitter = newArchetype(
		tags.Emitter,
		components.Emitter,
	)
	Spellcard = newArchetype(
		tags.Spellcard,
		components.Spellcard,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
