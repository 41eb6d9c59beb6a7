package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Bullet    = donburi.NewTag().SetName("Bullet")
	Emitter   = donburi.NewTag().SetName("Emitter")
	Spellcard = donburi.NewTag().SetName("Spellcard")
	Weapon    = donburi.NewTag().SetName("Weapon")

	// Player bullet modifiers
	Salted  = donburi.NewTag().SetName("Salted")
	Phasing = donburi.NewTag().SetName("Phasing")

	// Present on the player while alt-fire is held, and on alternate weapons
	AltFire = donburi.NewTag().SetName("AltFire")
)

// Resolv tags for broad-phase collision
const (
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvPlayerBullet = "PlayerBullet"
	ResolvEnemyBullet  = "EnemyBullet"
)
