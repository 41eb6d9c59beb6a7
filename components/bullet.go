package components

import (
	"github.com/automoto/spellcard/gamemath"
	"github.com/yohamta/donburi"
)

// LifetimeData is the age of a bullet in seconds.
type LifetimeData struct {
	Elapsed float64
}

var Lifetime = donburi.NewComponentType[LifetimeData]()

// PlayerBulletData marks a bullet as player owned. Bullets without it belong
// to the enemy.
type PlayerBulletData struct {
	Damage int
}

var PlayerBullet = donburi.NewComponentType[PlayerBulletData]()

// NormalBulletData moves the bullet by Velocity every tick.
type NormalBulletData struct {
	Velocity gamemath.Vec2
}

var NormalBullet = donburi.NewComponentType[NormalBulletData]()

// RotatingBulletData orbits the bullet around Origin.
type RotatingBulletData struct {
	Origin gamemath.Vec2
	// radians per second
	RotationSpeed float64
}

var RotatingBullet = donburi.NewComponentType[RotatingBulletData]()

// Target selects what a homing bullet steers toward.
type Target int

const (
	TargetEnemy Target = iota
	TargetPlayer
)

func (t Target) String() string {
	if t == TargetPlayer {
		return "player"
	}
	return "enemy"
}

// HomingBulletData steers the normal velocity toward the target while the
// bullet is younger than SeekingTime.
type HomingBulletData struct {
	RotationSpeed float64
	SeekingTime   float64
	Target        Target
}

var HomingBullet = donburi.NewComponentType[HomingBulletData]()

// StutterBulletData holds the bullet still until WaitTime, then launches it once.
type StutterBulletData struct {
	WaitTime        float64
	InitialVelocity gamemath.Vec2
	HasStarted      bool
}

var StutterBullet = donburi.NewComponentType[StutterBulletData]()

// WaveBulletData pulses the speed along TrueVelocity.
type WaveBulletData struct {
	TrueVelocity gamemath.Vec2
	SineMod      float64
}

var WaveBullet = donburi.NewComponentType[WaveBulletData]()

// DelayedBulletData attaches the laws of Bullet to the same entity once the
// bullet is Delay seconds old.
type DelayedBulletData struct {
	Bullet   BulletSpawner
	Delay    float64
	Deployed bool
}

var DelayedBullet = donburi.NewComponentType[DelayedBulletData]()
