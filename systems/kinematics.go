package systems

import (
	"math"

	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// The motion laws run once per tick in this order:
//
//	Normal -> Rotating -> Homing -> Wave -> Stutter -> Delayed
//
// Rotating sees the position Normal produced and turns the velocity Normal
// will use next tick. Homing, Wave and Stutter write the velocity only, so the
// change shows up on the following tick. Delayed arming runs last and takes
// effect from the next tick.

var (
	normalQuery = donburi.NewQuery(filter.Contains(
		components.NormalBullet, components.Transform,
	))
	rotatingQuery = donburi.NewQuery(filter.Contains(
		components.RotatingBullet, components.Transform,
	))
	homingQuery = donburi.NewQuery(filter.Contains(
		components.HomingBullet, components.NormalBullet, components.Lifetime, components.Transform,
	))
	waveQuery = donburi.NewQuery(filter.Contains(
		components.WaveBullet, components.Lifetime, components.Transform,
	))
	stutterQuery = donburi.NewQuery(filter.Contains(
		components.StutterBullet, components.NormalBullet, components.Lifetime,
	))
	delayedQuery = donburi.NewQuery(filter.Contains(
		components.DelayedBullet, components.Lifetime,
	))
)

// UpdateNormalBullets moves every bullet by its velocity.
func UpdateNormalBullets(ecs *ecs.ECS) {
	normalQuery.Each(ecs.World, func(e *donburi.Entry) {
		normal := components.NormalBullet.Get(e)
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(normal.Velocity)
	})
}

// UpdateRotatingBullets turns each bullet around its origin. A bullet that
// also moves in a straight line gets its velocity turned by the same angle,
// which bends the line into a spiral.
func UpdateRotatingBullets(ecs *ecs.ECS) {
	step := dt()
	rotatingQuery.Each(ecs.World, func(e *donburi.Entry) {
		rot := components.RotatingBullet.Get(e)
		t := components.Transform.Get(e)

		angle := rot.RotationSpeed * step
		t.Position = t.Position.RotateAround(&rot.Origin, angle)

		if e.HasComponent(components.NormalBullet) {
			normal := components.NormalBullet.Get(e)
			normal.Velocity = normal.Velocity.Rotate(angle)
		}
	})
}

// UpdateHomingBullets steers velocities toward the player or the boss while
// the bullet is still seeking. Speed is preserved.
func UpdateHomingBullets(ecs *ecs.ECS) {
	var playerPos, bossPos *gamemath.Vec2
	if p, ok := FindPlayer(ecs); ok {
		pos := components.Transform.Get(p).Position
		playerPos = &pos
	}
	if b, ok := FindBoss(ecs); ok {
		pos := components.Transform.Get(b).Position
		bossPos = &pos
	}

	step := dt()
	missing := false
	homingQuery.Each(ecs.World, func(e *donburi.Entry) {
		homing := components.HomingBullet.Get(e)

		var target *gamemath.Vec2
		switch homing.Target {
		case components.TargetPlayer:
			target = playerPos
		default:
			target = bossPos
		}
		if target == nil {
			missing = true
			return
		}

		age := components.Lifetime.Get(e).Elapsed
		normal := components.NormalBullet.Get(e)
		speed := normal.Velocity.Magnitude()
		if age > homing.SeekingTime || speed <= cfg.Combat.HomingMinSpeed {
			return
		}

		t := components.Transform.Get(e)
		want := target.Sub(t.Position).Normalized().MulScalar(speed)
		normal.Velocity = gamemath.RotateTowards(normal.Velocity, want, homing.RotationSpeed*step)
		t.Rotation = gamemath.ToAngle(normal.Velocity)
	})

	if missing {
		logf(ecs, "homing: target not found, skipping guidance this tick")
	}
}

// UpdateWaveBullets pulses the speed of wave bullets between zero and twice
// their true velocity. Without a normal law the bullet is moved directly.
func UpdateWaveBullets(ecs *ecs.ECS) {
	waveQuery.Each(ecs.World, func(e *donburi.Entry) {
		wave := components.WaveBullet.Get(e)
		age := components.Lifetime.Get(e).Elapsed
		v := wave.TrueVelocity.MulScalar(WaveFactor(age, wave.SineMod))

		if e.HasComponent(components.NormalBullet) {
			components.NormalBullet.Get(e).Velocity = v
			return
		}
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(v)
	})
}

// WaveFactor is the speed multiplier of a wave bullet, always in [0, 2].
func WaveFactor(age, sineMod float64) float64 {
	return math.Sin(age*sineMod) + 1.0
}

// UpdateStutterBullets holds bullets still until their wait time passes, then
// launches them once.
func UpdateStutterBullets(ecs *ecs.ECS) {
	stutterQuery.Each(ecs.World, func(e *donburi.Entry) {
		stutter := components.StutterBullet.Get(e)
		normal := components.NormalBullet.Get(e)
		age := components.Lifetime.Get(e).Elapsed

		if age < stutter.WaitTime {
			normal.Velocity = gamemath.Vec2{}
		} else if !stutter.HasStarted {
			normal.Velocity = stutter.InitialVelocity
			stutter.HasStarted = true
		}
	})
}

// UpdateDelayedBullets arms delayed bullets whose fuse has burnt down by
// attaching the secondary laws to the same entity.
func UpdateDelayedBullets(ecs *ecs.ECS) {
	type arming struct {
		entity donburi.Entity
		bullet components.BulletSpawner
	}
	var toArm []arming

	delayedQuery.Each(ecs.World, func(e *donburi.Entry) {
		delayed := components.DelayedBullet.Get(e)
		if delayed.Deployed || components.Lifetime.Get(e).Elapsed < delayed.Delay {
			return
		}
		delayed.Deployed = true
		toArm = append(toArm, arming{entity: e.Entity(), bullet: delayed.Bullet})
	})

	// Attaching changes the archetype, so it happens outside the query.
	for _, a := range toArm {
		if !ecs.World.Valid(a.entity) {
			continue
		}
		a.bullet.Attach(ecs.World.Entry(a.entity))
	}
}
