package components

import (
	"github.com/automoto/spellcard/gamemath"
	"github.com/yohamta/donburi"
)

// BulletSpawner is a bullet prototype: where it appears relative to its
// spawn point, how big it is, and the kinematics it starts with.
type BulletSpawner struct {
	Offset   gamemath.Vec2
	Rotation float64
	Radius   float64
	Sprite   SpriteData

	Normal   *NormalBulletData
	Rotating *RotatingBulletData
	Stutter  *StutterBulletData
	Homing   *HomingBulletData
	Wave     *WaveBulletData
	Delayed  *DelayedBulletData
}

// NewBulletSpawner returns a prototype without kinematics.
func NewBulletSpawner(radius float64, sprite SpriteData) BulletSpawner {
	return BulletSpawner{Radius: radius, Sprite: sprite}
}

func (s BulletSpawner) WithOffset(offset gamemath.Vec2, rotation float64) BulletSpawner {
	s.Offset = offset
	s.Rotation = rotation
	return s
}

func (s BulletSpawner) WithNormal(velocity gamemath.Vec2) BulletSpawner {
	s.Normal = &NormalBulletData{Velocity: velocity}
	return s
}

func (s BulletSpawner) WithRotation(origin gamemath.Vec2, rotationSpeed float64) BulletSpawner {
	s.Rotating = &RotatingBulletData{Origin: origin, RotationSpeed: rotationSpeed}
	return s
}

func (s BulletSpawner) WithHoming(seekingTime, rotationSpeed float64, target Target) BulletSpawner {
	s.Homing = &HomingBulletData{SeekingTime: seekingTime, RotationSpeed: rotationSpeed, Target: target}
	return s
}

func (s BulletSpawner) WithStutter(waitTime float64, initialVelocity gamemath.Vec2) BulletSpawner {
	s.Stutter = &StutterBulletData{WaitTime: waitTime, InitialVelocity: initialVelocity}
	return s
}

func (s BulletSpawner) WithWave(sineMod float64, trueVelocity gamemath.Vec2) BulletSpawner {
	s.Wave = &WaveBulletData{SineMod: sineMod, TrueVelocity: trueVelocity}
	return s
}

func (s BulletSpawner) WithDelayed(bullet BulletSpawner, delay float64) BulletSpawner {
	s.Delayed = &DelayedBulletData{Bullet: bullet, Delay: delay}
	return s
}

// Attach writes every law of the prototype onto e. Laws e already carries are
// overwritten, the rest are added. Values are copied so entities never share
// state with the prototype.
func (s BulletSpawner) Attach(e *donburi.Entry) {
	if s.Normal != nil {
		setOrAdd(e, NormalBullet, *s.Normal)
	}
	if s.Rotating != nil {
		setOrAdd(e, RotatingBullet, *s.Rotating)
	}
	if s.Stutter != nil {
		setOrAdd(e, StutterBullet, *s.Stutter)
	}
	if s.Homing != nil {
		setOrAdd(e, HomingBullet, *s.Homing)
	}
	if s.Wave != nil {
		setOrAdd(e, WaveBullet, *s.Wave)
	}
	if s.Delayed != nil {
		setOrAdd(e, DelayedBullet, *s.Delayed)
	}
}

func setOrAdd[T any](e *donburi.Entry, c *donburi.ComponentType[T], v T) {
	if e.HasComponent(c) {
		c.SetValue(e, v)
		return
	}
	donburi.Add(e, c, &v)
}
