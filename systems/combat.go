package systems

import (
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hits are resolved in a fixed order: bullet against bullet, then the
// player, then enemies. Removals are collected per stage and applied when
// the stage ends, so a later stage only sees what survived the earlier ones.

// ResolveBulletHits cancels enemy bullets struck by player bullets. The player
// bullet is always spent, the enemy bullet only when the shot was salted.
func ResolveBulletHits(ecs *ecs.ECS) {
	queue := getHitQueue(ecs)
	if queue == nil {
		return
	}

	despawn := newDespawnSet()
	for _, hit := range queue.BulletHits {
		if !ecs.World.Valid(hit.Player) || !ecs.World.Valid(hit.Enemy) {
			continue
		}
		despawn.add(hit.Player)
		if hit.Salted {
			despawn.add(hit.Enemy)
		}
	}
	despawn.apply(ecs)
}

// ResolvePlayerHits costs the player at most one life per tick. Enemy bullets
// that were cancelled by a salted shot this tick do not count.
func ResolvePlayerHits(ecs *ecs.ECS) {
	queue := getHitQueue(ecs)
	if queue == nil {
		return
	}

	// --------------------------------------------------------------------
	// 1. Enemy bullets already claimed by a salted player bullet
	// --------------------------------------------------------------------
	salted := make(map[donburi.Entity]bool, len(queue.BulletHits))
	for _, hit := range queue.BulletHits {
		if hit.Salted {
			salted[hit.Enemy] = true
		}
	}

	player, ok := FindPlayer(ecs)
	if !ok {
		return
	}

	// --------------------------------------------------------------------
	// 2. Spend the bullets and take a life
	// --------------------------------------------------------------------
	despawn := newDespawnSet()
	lostLife := false
	for _, hit := range queue.PlayerHits {
		if salted[hit.Bullet] || !ecs.World.Valid(hit.Bullet) {
			continue
		}
		despawn.add(hit.Bullet)
		if lostLife || player.HasComponent(components.Invulnerability) {
			continue
		}

		lives := components.Lives.Get(player)
		if lives.Lives > 0 {
			lives.Lives--
		}
		lostLife = true
		donburi.Add(player, components.Invulnerability, &components.InvulnerabilityData{
			Timer: components.NewOnceTimer(cfg.Player.InvulnSeconds),
		})
		LifeLostEvent.Publish(ecs.World, LifeLost{LivesLeft: lives.Lives})
	}
	despawn.apply(ecs)
}

// ResolveEnemyHits applies player bullet damage to enemies. Phasing bullets
// deal their base damage, solid ones twice as much.
func ResolveEnemyHits(ecs *ecs.ECS) {
	queue := getHitQueue(ecs)
	if queue == nil {
		return
	}

	despawn := newDespawnSet()
	for _, hit := range queue.EnemyHits {
		bullet, ok := entryOf(ecs, hit.Bullet)
		if !ok || !bullet.HasComponent(components.PlayerBullet) {
			continue
		}
		enemy, ok := entryOf(ecs, hit.Enemy)
		if !ok || !enemy.HasComponent(components.Health) {
			continue
		}

		mult := cfg.Combat.SolidDamageMultiplier
		if bullet.HasComponent(tags.Phasing) {
			mult = cfg.Combat.PhasingDamageMultiplier
		}
		amount := components.PlayerBullet.Get(bullet).Damage * mult

		hp := components.Health.Get(enemy)
		hp.Damage(amount)
		EnemyDamagedEvent.Publish(ecs.World, EnemyDamaged{
			Enemy:  hit.Enemy,
			Amount: amount,
			Health: hp.Current,
		})
		despawn.add(hit.Bullet)
	}
	despawn.apply(ecs)
}

// ClearHits empties the hit queue once every stage has run.
func ClearHits(ecs *ecs.ECS) {
	if queue := getHitQueue(ecs); queue != nil {
		queue.Clear()
	}
}
