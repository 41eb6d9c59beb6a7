package components

import "github.com/yohamta/donburi"

// Hit events hold versioned entity ids. An id whose entity was removed by an
// earlier resolution stage no longer validates against the world.

// BulletHitEvent is a player bullet touching an enemy bullet. Salted is
// captured at detection time since the player bullet is gone once resolved.
type BulletHitEvent struct {
	Player donburi.Entity
	Enemy  donburi.Entity
	Salted bool
}

// PlayerHitEvent is an enemy bullet touching the player.
type PlayerHitEvent struct {
	Bullet donburi.Entity
}

// EnemyHitEvent is a player bullet touching an enemy.
type EnemyHitEvent struct {
	Bullet donburi.Entity
	Enemy  donburi.Entity
}

// HitQueueData collects the hit events of one tick. Detection appends,
// resolution drains.
type HitQueueData struct {
	BulletHits []BulletHitEvent
	PlayerHits []PlayerHitEvent
	EnemyHits  []EnemyHitEvent
}

func (q *HitQueueData) Clear() {
	q.BulletHits = q.BulletHits[:0]
	q.PlayerHits = q.PlayerHits[:0]
	q.EnemyHits = q.EnemyHits[:0]
}

var HitQueue = donburi.NewComponentType[HitQueueData]()
