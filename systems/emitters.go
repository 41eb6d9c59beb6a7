package systems

import (
	"math"

	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Emitters only run while their spellcard keeps them active. The period
// timer advances only on active ticks, so a deactivated emitter resumes
// where it stopped.

func emitterQuery(pattern donburi.IComponentType) *donburi.Query {
	return donburi.NewQuery(filter.Contains(components.Emitter, pattern))
}

var (
	circularAimedQuery  = emitterQuery(components.CircularAimed)
	circularHomingQuery = emitterQuery(components.CircularHoming)
	circularWaveQuery   = emitterQuery(components.CircularWave)
	sprayQuery          = emitterQuery(components.Spray)
	rotatingSprayQuery  = emitterQuery(components.RotatingSpray)
	tentacleQuery       = emitterQuery(components.Tentacle)
	floodQuery          = emitterQuery(components.Flood)
	divisiveQuery       = emitterQuery(components.Divisive)
)

// emitterPosition returns the owner's position plus the emitter offset.
func emitterPosition(ecs *ecs.ECS, em *components.EmitterData) (gamemath.Vec2, bool) {
	owner, ok := entryOf(ecs, em.Owner)
	if !ok || !owner.HasComponent(components.Transform) {
		return gamemath.Vec2{}, false
	}
	return components.Transform.Get(owner).Position.Add(em.Offset), true
}

// eachTriggered calls fire for every active emitter of the query whose
// period elapsed this tick.
func eachTriggered(ecs *ecs.ECS, q *donburi.Query, fire func(e *donburi.Entry, em *components.EmitterData, pos gamemath.Vec2)) {
	step := dt()
	var ready []*donburi.Entry
	q.Each(ecs.World, func(e *donburi.Entry) {
		em := components.Emitter.Get(e)
		if !em.Active {
			return
		}
		em.Timer.Tick(step)
		if !em.Timer.Finished() {
			return
		}
		em.Timer.Reset()
		ready = append(ready, e)
	})

	// Spawning creates entities, so it happens outside the query.
	for _, e := range ready {
		em := components.Emitter.Get(e)
		pos, ok := emitterPosition(ecs, em)
		if !ok {
			continue
		}
		fire(e, em, pos)
	}
}

// spawnPatternBullet spawns one enemy bullet from proto at pos. Velocities
// are turned by dir (a unit vector) and the rotation origin moved by shift.
func spawnPatternBullet(ecs *ecs.ECS, proto components.BulletSpawner, pos, dir, shift gamemath.Vec2) *donburi.Entry {
	b := proto
	if proto.Normal != nil {
		n := *proto.Normal
		n.Velocity = gamemath.Rotate(dir, n.Velocity)
		b.Normal = &n
	}
	if proto.Rotating != nil {
		r := *proto.Rotating
		r.Origin = r.Origin.Add(shift)
		b.Rotating = &r
	}
	if proto.Stutter != nil {
		s := *proto.Stutter
		s.InitialVelocity = gamemath.Rotate(dir, s.InitialVelocity)
		b.Stutter = &s
	}
	if proto.Wave != nil {
		w := *proto.Wave
		w.TrueVelocity = gamemath.Rotate(dir, w.TrueVelocity)
		b.Wave = &w
	}
	return factory.CreateEnemyBullet(ecs, b, pos)
}

// ringSlot returns the direction and spawn position of slot i of a ring.
func ringSlot(base gamemath.Vec2, offset float64, angle float64) (dir, pos gamemath.Vec2) {
	dir = gamemath.FromAngle(angle)
	return dir, base.Add(dir.MulScalar(offset))
}

// UpdateCircularAimedEmitters fires full rings.
func UpdateCircularAimedEmitters(ecs *ecs.ECS) {
	eachTriggered(ecs, circularAimedQuery, func(e *donburi.Entry, em *components.EmitterData, pos gamemath.Vec2) {
		ring := components.CircularAimed.Get(e)
		if ring.Count <= 0 {
			return
		}
		base := pos.Add(em.Spawner.Offset)
		step := 2 * math.Pi / float64(ring.Count)
		for i := 0; i < ring.Count; i++ {
			dir, at := ringSlot(base, ring.Offset, step*float64(i))
			spawnPatternBullet(ecs, em.Spawner, at, dir, pos)
		}
	})
}

// UpdateCircularHomingEmitters fires one bullet from the next slot of the
// ring, cycling through the turret arms.
func UpdateCircularHomingEmitters(ecs *ecs.ECS) {
	eachTriggered(ecs, circularHomingQuery, func(e *donburi.Entry, em *components.EmitterData, pos gamemath.Vec2) {
		ring := components.CircularHoming.Get(e)
		if ring.Count <= 0 {
			return
		}
		base := pos.Add(em.Spawner.Offset)
		dir, at := ringSlot(base, ring.Offset, 2*math.Pi/float64(ring.Count)*float64(ring.Idx))
		spawnPatternBullet(ecs, em.Spawner, at, dir, pos)

		ring.Idx++
		if ring.Idx >= cfg.CircularHomingSlots {
			ring.Idx = 0
		}
	})
}

// UpdateCircularWaveEmitters fires rings of wave bullets, precessing the ring
// after every trigger.
func UpdateCircularWaveEmitters(ecs *ecs.ECS) {
	eachTriggered(ecs, circularWaveQuery, func(e *donburi.Entry, em *components.EmitterData, pos gamemath.Vec2) {
		ring := components.CircularWave.Get(e)
		if ring.Count <= 0 {
			return
		}
		base := pos.Add(em.Spawner.Offset)
		step := 2 * math.Pi / float64(ring.Count)
		for i := 0; i < ring.Count; i++ {
			dir, at := ringSlot(base, ring.Offset, step*float64(i)+ring.Rotation)
			spawnPatternBullet(ecs, em.Spawner, at, dir, pos)
		}
		ring.Rotation += ring.RotationSpeed
	})
}

// UpdateTentacleEmitters fires rings whose bullets arm into player seekers
// after a short fuse.
func UpdateTentacleEmitters(ecs *ecs.ECS) {
	eachTriggered(ecs, tentacleQuery, func(e *donburi.Entry, em *components.EmitterData, pos gamemath.Vec2) {
		ring := components.Tentacle.Get(e)
		if ring.Count <= 0 {
			return
		}
		seeker := components.NewBulletSpawner(cfg.Tentacle.Radius, em.Spawner.Sprite).
			WithHoming(cfg.Tentacle.SeekingTime, cfg.Tentacle.RotationSpeed, components.TargetPlayer)
		proto := em.Spawner.WithDelayed(seeker, cfg.Tentacle.Delay)

		base := pos.Add(em.Spawner.Offset)
		step := 2 * math.Pi / float64(ring.Count)
		for i := 0; i < ring.Count; i++ {
			dir, at := ringSlot(base, ring.Offset, step*float64(i))
			spawnPatternBullet(ecs, proto, at, dir, pos)
		}
	})
}

// UpdateFloodEmitters drops one bullet per trigger from a random point on the
// right edge.
func UpdateFloodEmitters(ecs *ecs.ECS) {
	enc := GetEncounter(ecs)
	if enc == nil {
		return
	}
	eachTriggered(ecs, floodQuery, func(e *donburi.Entry, em *components.EmitterData, _ gamemath.Vec2) {
		flood := components.Flood.Get(e)
		dir := gamemath.FromAngle(randRange(enc, -flood.Spray/2, flood.Spray/2))
		at := gamemath.V(cfg.Arena.FloodX, randRange(enc, -cfg.Arena.FloodSpreadY, cfg.Arena.FloodSpreadY))
		spawnPatternBullet(ecs, em.Spawner, at, dir, gamemath.Vec2{})
	})
}

// UpdateDivisiveEmitters spawns walls along the top edge moving down and the
// right edge moving left.
func UpdateDivisiveEmitters(ecs *ecs.ECS) {
	eachTriggered(ecs, divisiveQuery, func(e *donburi.Entry, em *components.EmitterData, _ gamemath.Vec2) {
		wall := components.Divisive.Get(e)
		down := gamemath.V(0, -1)
		left := gamemath.V(-1, 0)

		gap := cfg.Arena.Width / float64(wall.Columns+1)
		for i := 0; i < wall.Columns; i++ {
			at := gamemath.V(-cfg.Arena.Width/2+gap*float64(i+1), cfg.Arena.WallTopY)
			spawnPatternBullet(ecs, em.Spawner, at.Add(em.Spawner.Offset), down, gamemath.Vec2{})
		}

		gap = cfg.Arena.Height / float64(wall.Rows+1)
		for i := 0; i < wall.Rows; i++ {
			at := gamemath.V(cfg.Arena.WallRightX, -cfg.Arena.Height/2+gap*float64(i+1))
			spawnPatternBullet(ecs, em.Spawner, at.Add(em.Spawner.Offset), left, gamemath.Vec2{})
		}
	})
}

// UpdateSprayEmitters fires random cones at the player during the first
// FiringTime seconds of every period.
func UpdateSprayEmitters(ecs *ecs.ECS) {
	enc := GetEncounter(ecs)
	player, ok := FindPlayer(ecs)
	if enc == nil || !ok {
		return
	}
	playerPos := components.Transform.Get(player).Position
	step := dt()

	type shot struct {
		proto components.BulletSpawner
		pos   gamemath.Vec2
		dir   gamemath.Vec2
	}
	var shots []shot

	sprayQuery.Each(ecs.World, func(e *donburi.Entry) {
		em := components.Emitter.Get(e)
		if !em.Active {
			return
		}
		pos, ok := emitterPosition(ecs, em)
		if !ok {
			return
		}
		spray := components.Spray.Get(e)
		em.Timer.Tick(step)

		if em.Timer.Elapsed < spray.FiringTime && spray.FiringSpeed > 0 {
			spray.Count += step / spray.FiringSpeed
			aim := playerPos.Sub(pos).Normalized()
			for spray.Count >= 1 {
				ang := randRange(enc, -spray.SprayWidth/2, spray.SprayWidth/2)
				shots = append(shots, shot{
					proto: em.Spawner,
					pos:   pos.Add(em.Spawner.Offset),
					dir:   gamemath.Rotate(aim, gamemath.FromAngle(ang)),
				})
				spray.Count--
			}
		}
		if em.Timer.Finished() {
			em.Timer.Reset()
		}
	})

	for _, s := range shots {
		spawnPatternBullet(ecs, s.proto, s.pos, s.dir, gamemath.Vec2{})
	}
}

// UpdateRotatingSprayEmitters fires several evenly spaced cones that spin
// continuously. They are not aimed.
func UpdateRotatingSprayEmitters(ecs *ecs.ECS) {
	enc := GetEncounter(ecs)
	if enc == nil {
		return
	}
	step := dt()

	type shot struct {
		proto components.BulletSpawner
		pos   gamemath.Vec2
		dir   gamemath.Vec2
	}
	var shots []shot

	rotatingSprayQuery.Each(ecs.World, func(e *donburi.Entry) {
		em := components.Emitter.Get(e)
		if !em.Active {
			return
		}
		pos, ok := emitterPosition(ecs, em)
		if !ok {
			return
		}
		spray := components.RotatingSpray.Get(e)
		em.Timer.Tick(step)
		spray.Rotation += spray.RotationSpeed * step

		if em.Timer.Elapsed < spray.FiringTime && spray.FiringSpeed > 0 && spray.SprayCount > 0 {
			for i := 0; i < spray.SprayCount; i++ {
				arm := spray.Rotation + 2*math.Pi/float64(spray.SprayCount)*float64(i)
				spray.Count += step / spray.FiringSpeed
				for spray.Count >= 1 {
					ang := randRange(enc, -spray.SprayWidth/2, spray.SprayWidth/2) + arm
					shots = append(shots, shot{
						proto: em.Spawner,
						pos:   pos.Add(em.Spawner.Offset),
						dir:   gamemath.FromAngle(ang),
					})
					spray.Count--
				}
			}
		}
		if em.Timer.Finished() {
			em.Timer.Reset()
		}
	})

	for _, s := range shots {
		spawnPatternBullet(ecs, s.proto, s.pos, s.dir, gamemath.Vec2{})
	}
}

// randRange draws uniformly from [min, max) using the encounter's seeded
// source.
func randRange(enc *components.EncounterData, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + enc.Rand.Float64()*(max-min)
}
