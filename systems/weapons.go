package systems

import (
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAltFire switches the active weapon group. Every weapon timer restarts
// when the modifier is pressed or released.
func UpdateAltFire(ecs *ecs.ECS) {
	input := GetInput(ecs)
	player, ok := FindPlayer(ecs)
	if input == nil || !ok {
		return
	}

	if input.AltFireChanged() {
		tags.Weapon.Each(ecs.World, func(e *donburi.Entry) {
			components.Weapon.Get(e).Timer.Reset()
		})
	}

	switch {
	case input.AltFire && !player.HasComponent(tags.AltFire):
		player.AddComponent(tags.AltFire)
	case !input.AltFire && player.HasComponent(tags.AltFire):
		player.RemoveComponent(tags.AltFire)
	}
	input.PrevAltFire = input.AltFire
}

// UpdateWeapons fires the weapons of the active group while fire is held.
// Weapons of a group are stacked vertically around the player, and a weapon
// that cannot pay its ammo cost stays silent.
func UpdateWeapons(ecs *ecs.ECS) {
	input := GetInput(ecs)
	player, ok := FindPlayer(ecs)
	if input == nil || !ok || !input.Fire {
		return
	}

	alt := player.HasComponent(tags.AltFire)
	var group []*donburi.Entry
	tags.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.AltFire) == alt {
			group = append(group, e)
		}
	})

	ammo := components.Ammo.Get(player)
	pos := components.Transform.Get(player).Position
	step := dt()
	count := len(group)

	for i, e := range group {
		weapon := components.Weapon.Get(e)
		weapon.Timer.Tick(step)
		if !weapon.Timer.Finished() {
			continue
		}
		weapon.Timer.Reset()

		if ammo.Ammo < weapon.AmmoCost {
			continue
		}
		ammo.Ammo -= weapon.AmmoCost

		spacing := cfg.Player.WeaponSpacing
		at := pos.Sub(gamemath.V(0, float64(i)*spacing-spacing/2*float64(count-1)))
		factory.CreatePlayerBullet(ecs, weapon.Bullet, at.Add(weapon.Bullet.Offset),
			weapon.Damage, weapon.Salted, weapon.Phasing)
	}
}
