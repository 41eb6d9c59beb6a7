// Package encounter runs one boss fight without any window or renderer. The
// client scene and the simulate command both drive it.
package encounter

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/systems"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/automoto/spellcard/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// ErrUnknownBoss is returned when Params names a boss that does not exist.
var ErrUnknownBoss = factory.ErrUnknownBoss

// Params is what the surrounding game decides before the fight starts.
type Params struct {
	Boss    string
	Loadout factory.Loadout
	Seed    int64
}

// Input is the control state for the next tick.
type Input struct {
	MoveX   float64
	MoveY   float64
	Fire    bool
	AltFire bool
}

// Snapshot is a read-out of the values a HUD shows.
type Snapshot struct {
	Tick       uint64
	Time       float64
	Loops      int
	Lives      int
	Ammo       int
	BossName   string
	BossHealth int
	BossMax    int
	Bullets    int
	Outcome    components.MissionOutcome
}

var bulletQuery = donburi.NewQuery(filter.Contains(tags.Bullet))

type Encounter struct {
	mu     sync.Mutex
	ecs    *ecs.ECS
	id     uuid.UUID
	player *donburi.Entry
}

// New builds the world for one fight: the player with its loadout, the boss
// with its spellcards, and the systems in their fixed order.
func New(p Params) (*Encounter, error) {
	w := donburi.NewWorld()
	e := ecs.NewECS(w)

	enc := factory.CreateEncounter(e, p.Boss, p.Seed)
	factory.CreateSpace(e)
	player := factory.CreatePlayer(e)
	factory.ApplyLoadout(e, player, p.Loadout)
	if _, err := factory.CreateBoss(e, p.Boss); err != nil {
		return nil, fmt.Errorf("create encounter: %w", err)
	}

	addSystems(e)

	id := components.Encounter.Get(enc).ID
	log.Printf("[encounter %s] boss %q, loadout %q, seed %d", id.String()[:8], p.Boss, p.Loadout, p.Seed)

	return &Encounter{ecs: e, id: id, player: player}, nil
}

// addSystems registers the tick pipeline. Order matters:
// input, kinematics, detection, culling, clocks, firing, then resolution.
func addSystems(e *ecs.ECS) {
	gameplay := func(s ecs.System) {
		e.AddSystem(systems.WithGameplayChecks(s))
	}

	// Player and boss
	gameplay(systems.UpdateAltFire)
	gameplay(systems.UpdatePlayer)
	gameplay(systems.UpdateInvulnerability)
	gameplay(systems.UpdateBossMovement)

	// Kinematics
	gameplay(systems.UpdateNormalBullets)
	gameplay(systems.UpdateRotatingBullets)
	gameplay(systems.UpdateHomingBullets)
	gameplay(systems.UpdateWaveBullets)
	gameplay(systems.UpdateStutterBullets)
	gameplay(systems.UpdateDelayedBullets)
	gameplay(systems.SyncObjects)

	// Detection only records hits
	gameplay(systems.DetectPlayerHits)
	gameplay(systems.DetectBulletHits)
	gameplay(systems.DetectEnemyHits)

	gameplay(systems.DespawnOutOfBounds)
	gameplay(systems.UpdateLifetimes)
	gameplay(systems.UpdateEncounterTime)
	gameplay(systems.UpdateSpellcards)

	// Firing
	gameplay(systems.UpdateCircularAimedEmitters)
	gameplay(systems.UpdateCircularHomingEmitters)
	gameplay(systems.UpdateCircularWaveEmitters)
	gameplay(systems.UpdateSprayEmitters)
	gameplay(systems.UpdateRotatingSprayEmitters)
	gameplay(systems.UpdateTentacleEmitters)
	gameplay(systems.UpdateFloodEmitters)
	gameplay(systems.UpdateDivisiveEmitters)
	gameplay(systems.UpdateWeapons)

	// Resolution
	gameplay(systems.ResolveBulletHits)
	gameplay(systems.ResolvePlayerHits)
	gameplay(systems.ResolveEnemyHits)
	e.AddSystem(systems.ClearHits)
	gameplay(systems.UpdateEnemyDeaths)
	gameplay(systems.UpdateMission)

	e.AddSystem(systems.ProcessEvents)
}

// SetInput stores the control state read by the next Tick.
func (enc *Encounter) SetInput(in Input) {
	enc.mu.Lock()
	defer enc.mu.Unlock()

	input := systems.GetInput(enc.ecs)
	input.MoveX = in.MoveX
	input.MoveY = in.MoveY
	input.Fire = in.Fire
	input.AltFire = in.AltFire
}

// Tick advances the fight by one fixed step. Ticks after the outcome is
// decided do nothing.
func (enc *Encounter) Tick() {
	enc.mu.Lock()
	defer enc.mu.Unlock()
	enc.ecs.Update()
}

// Outcome reports whether the fight is still going.
func (enc *Encounter) Outcome() components.MissionOutcome {
	enc.mu.Lock()
	defer enc.mu.Unlock()
	return systems.GetEncounter(enc.ecs).Outcome
}

func (enc *Encounter) Lives() int {
	enc.mu.Lock()
	defer enc.mu.Unlock()
	return components.Lives.Get(enc.player).Lives
}

func (enc *Encounter) Ammo() int {
	enc.mu.Lock()
	defer enc.mu.Unlock()
	return components.Ammo.Get(enc.player).Ammo
}

// BossHealth returns the current and maximum health of the boss. ok is false
// once the boss is gone.
func (enc *Encounter) BossHealth() (current, max int, ok bool) {
	enc.mu.Lock()
	defer enc.mu.Unlock()
	boss, ok := systems.FindBoss(enc.ecs)
	if !ok {
		return 0, 0, false
	}
	hp := components.Health.Get(boss)
	return hp.Current, hp.Max, true
}

func (enc *Encounter) ID() uuid.UUID {
	return enc.id
}

// Snapshot reads every HUD value under one lock.
func (enc *Encounter) Snapshot() Snapshot {
	enc.mu.Lock()
	defer enc.mu.Unlock()

	data := systems.GetEncounter(enc.ecs)
	s := Snapshot{
		Tick:    data.Tick,
		Time:    data.Time,
		Loops:   data.Loops,
		Lives:   components.Lives.Get(enc.player).Lives,
		Ammo:    components.Ammo.Get(enc.player).Ammo,
		Outcome: data.Outcome,
	}
	if boss, ok := systems.FindBoss(enc.ecs); ok {
		hp := components.Health.Get(boss)
		s.BossName = components.Enemy.Get(boss).Name
		s.BossHealth, s.BossMax = hp.Current, hp.Max
	}
	s.Bullets = bulletQuery.Count(enc.ecs.World)
	return s
}

// Do runs f with exclusive access to the world. Renderers use it to read
// entity state between ticks.
func (enc *Encounter) Do(f func(e *ecs.ECS)) {
	enc.mu.Lock()
	defer enc.mu.Unlock()
	f(enc.ecs)
}
