package components

import (
	"github.com/automoto/spellcard/gamemath"
	"github.com/yohamta/donburi"
)

// EmitterData is a periodic bullet source owned by an enemy. Its position is
// the owner's position plus Offset.
type EmitterData struct {
	Owner   donburi.Entity
	Offset  gamemath.Vec2
	Timer   Timer
	Spawner BulletSpawner
	Active  bool
}

var Emitter = donburi.NewComponentType[EmitterData]()

// Pattern is one of the spawn geometries an emitter can carry.
type Pattern interface {
	Attach(e *donburi.Entry)
}

// CircularAimedData fires Count bullets evenly around a ring of radius Offset.
type CircularAimedData struct {
	Offset float64
	Count  int
}

var CircularAimed = donburi.NewComponentType[CircularAimedData]()

func (p CircularAimedData) Attach(e *donburi.Entry) { donburi.Add(e, CircularAimed, &p) }

// CircularHomingData fires one homing bullet per trigger from the next ring slot.
type CircularHomingData struct {
	Offset float64
	Count  int
	Idx    int
}

var CircularHoming = donburi.NewComponentType[CircularHomingData]()

func (p CircularHomingData) Attach(e *donburi.Entry) { donburi.Add(e, CircularHoming, &p) }

// CircularWaveData is a ring of wave bullets that precesses each trigger.
type CircularWaveData struct {
	Offset        float64
	Count         int
	Rotation      float64
	RotationSpeed float64
}

var CircularWave = donburi.NewComponentType[CircularWaveData]()

func (p CircularWaveData) Attach(e *donburi.Entry) { donburi.Add(e, CircularWave, &p) }

// SprayData fires random bullets in a cone aimed at the player during the
// first FiringTime seconds of each period, one per FiringSpeed seconds.
type SprayData struct {
	SprayWidth  float64
	FiringTime  float64
	FiringSpeed float64
	Count       float64
}

var Spray = donburi.NewComponentType[SprayData]()

func (p SprayData) Attach(e *donburi.Entry) { donburi.Add(e, Spray, &p) }

// RotatingSprayData is SprayCount unaimed cones spinning at RotationSpeed.
type RotatingSprayData struct {
	SprayWidth    float64
	FiringTime    float64
	FiringSpeed   float64
	Count         float64
	RotationSpeed float64
	Rotation      float64
	SprayCount    int
}

var RotatingSpray = donburi.NewComponentType[RotatingSprayData]()

func (p RotatingSprayData) Attach(e *donburi.Entry) { donburi.Add(e, RotatingSpray, &p) }

// TentacleData is a ring burst whose bullets arm into player seekers.
type TentacleData struct {
	Offset float64
	Count  int
}

var Tentacle = donburi.NewComponentType[TentacleData]()

func (p TentacleData) Attach(e *donburi.Entry) { donburi.Add(e, Tentacle, &p) }

// FloodData drops one bullet from the right edge each period.
type FloodData struct {
	Spray float64
}

var Flood = donburi.NewComponentType[FloodData]()

func (p FloodData) Attach(e *donburi.Entry) { donburi.Add(e, Flood, &p) }

// DivisiveData spawns a wall of bullets along the top and right edges.
type DivisiveData struct {
	Columns int
	Rows    int
}

var Divisive = donburi.NewComponentType[DivisiveData]()

func (p DivisiveData) Attach(e *donburi.Entry) { donburi.Add(e, Divisive, &p) }
