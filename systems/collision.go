package systems

import (
	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Detection only records hits. Nothing is removed or damaged until the
// resolution systems run, so every pair is judged against the same world.

var (
	playerBulletQuery = donburi.NewQuery(filter.Contains(
		tags.Bullet, components.PlayerBullet, components.Object,
	))
	solidPlayerBulletQuery = donburi.NewQuery(filter.And(
		filter.Contains(tags.Bullet, components.PlayerBullet, components.Object),
		filter.Not(filter.Contains(tags.Phasing)),
	))
)

// DetectPlayerHits records every enemy bullet overlapping the player.
func DetectPlayerHits(ecs *ecs.ECS) {
	queue := getHitQueue(ecs)
	player, ok := FindPlayer(ecs)
	if queue == nil || !ok {
		return
	}
	for _, bullet := range overlapping(ecs, player, tags.ResolvEnemyBullet) {
		queue.PlayerHits = append(queue.PlayerHits, components.PlayerHitEvent{Bullet: bullet})
	}
}

// DetectBulletHits records player bullets touching enemy bullets. Phasing
// bullets pass through and are not considered.
func DetectBulletHits(ecs *ecs.ECS) {
	queue := getHitQueue(ecs)
	if queue == nil {
		return
	}
	solidPlayerBulletQuery.Each(ecs.World, func(pb *donburi.Entry) {
		salted := pb.HasComponent(tags.Salted)
		for _, eb := range overlapping(ecs, pb, tags.ResolvEnemyBullet) {
			queue.BulletHits = append(queue.BulletHits, components.BulletHitEvent{
				Player: pb.Entity(),
				Enemy:  eb,
				Salted: salted,
			})
		}
	})
}

// DetectEnemyHits records player bullets touching enemies.
func DetectEnemyHits(ecs *ecs.ECS) {
	queue := getHitQueue(ecs)
	if queue == nil {
		return
	}
	playerBulletQuery.Each(ecs.World, func(pb *donburi.Entry) {
		for _, enemy := range overlapping(ecs, pb, tags.ResolvEnemy) {
			queue.EnemyHits = append(queue.EnemyHits, components.EnemyHitEvent{
				Bullet: pb.Entity(),
				Enemy:  enemy,
			})
		}
	})
}

// overlapping returns the entities carrying resolvTag whose circles overlap
// e. Resolv narrows the candidates, the circle test decides.
func overlapping(ecs *ecs.ECS, e *donburi.Entry, resolvTag string) []donburi.Entity {
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil {
		return nil
	}
	check := obj.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}

	self := circleOf(e)
	var hits []donburi.Entity
	seen := make(map[donburi.Entity]struct{})
	for _, other := range check.ObjectsByTags(resolvTag) {
		ent, ok := other.Data.(donburi.Entity)
		if !ok || ent == e.Entity() {
			continue
		}
		if _, dup := seen[ent]; dup {
			continue
		}
		seen[ent] = struct{}{}
		entry, alive := entryOf(ecs, ent)
		if !alive || !entry.HasComponent(components.Collider) {
			continue
		}
		if self.Hits(circleOf(entry)) {
			hits = append(hits, ent)
		}
	}
	return hits
}

func circleOf(e *donburi.Entry) gamemath.Circle {
	pos := components.Transform.Get(e).Position
	return components.Collider.Get(e).Circle(pos)
}
