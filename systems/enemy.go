package systems

import (
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBossMovement eases bosses between random waypoints on their half of
// the arena.
func UpdateBossMovement(ecs *ecs.ECS) {
	enc := GetEncounter(ecs)
	if enc == nil {
		return
	}
	step := dt()

	components.RandomMovement.Each(ecs.World, func(e *donburi.Entry) {
		move := components.RandomMovement.Get(e)
		t := components.Transform.Get(e)

		if pos, ok := move.Advance(step); ok {
			t.Position = pos
		}

		move.NextMove.Tick(step)
		if !move.NextMove.Finished() {
			return
		}
		move.NextMove.Reset()
		move.NextMove.SetDuration(move.MoveTime +
			randRange(enc, cfg.BossMovement.ExtraDelayMin, cfg.BossMovement.ExtraDelayMax))
		move.StartLeg(gamemath.V(
			randRange(enc, cfg.BossMovement.MinX, cfg.BossMovement.MaxX),
			randRange(enc, cfg.BossMovement.MinY, cfg.BossMovement.MaxY),
		))
	})
}

// UpdateEnemyDeaths removes enemies whose health ran out together with the
// emitters and spellcards they own.
func UpdateEnemyDeaths(ecs *ecs.ECS) {
	var dead []donburi.Entity
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Current <= 0 {
			dead = append(dead, e.Entity())
		}
	})

	for _, enemy := range dead {
		entry, ok := entryOf(ecs, enemy)
		if !ok {
			continue
		}
		name := components.Enemy.Get(entry).Name
		owned := ownedBy(ecs, enemy)
		for _, ent := range owned {
			destroyEntry(ecs, ent)
		}
		destroyEntry(ecs, enemy)

		logf(ecs, "enemy %q defeated, removed %d emitters and spellcards", name, len(owned))
		EnemyDefeatedEvent.Publish(ecs.World, EnemyDefeated{Name: name})
	}
}

func ownedBy(ecs *ecs.ECS, owner donburi.Entity) []donburi.Entity {
	var owned []donburi.Entity
	tags.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		if components.Emitter.Get(e).Owner == owner {
			owned = append(owned, e.Entity())
		}
	})
	tags.Spellcard.Each(ecs.World, func(e *donburi.Entry) {
		if components.Spellcard.Get(e).Owner == owner {
			owned = append(owned, e.Entity())
		}
	})
	return owned
}
