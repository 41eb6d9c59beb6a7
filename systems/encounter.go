package systems

import (
	"fmt"
	"log"

	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetEncounter returns the encounter singleton, or nil before it exists.
func GetEncounter(ecs *ecs.ECS) *components.EncounterData {
	e, ok := components.Encounter.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Encounter.Get(e)
}

// GetInput returns the ambient input state, or nil before it exists.
func GetInput(ecs *ecs.ECS) *components.InputData {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(e)
}

func getHitQueue(ecs *ecs.ECS) *components.HitQueueData {
	e, ok := components.HitQueue.First(ecs.World)
	if !ok {
		return nil
	}
	return components.HitQueue.Get(e)
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	e, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// FindPlayer returns the player entry.
func FindPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// FindBoss returns the first living enemy.
func FindBoss(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Enemy.First(ecs.World)
}

// WithGameplayChecks wraps a system to skip execution once the mission
// outcome is decided.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if enc := GetEncounter(e); enc != nil && enc.Outcome != components.MissionOngoing {
			return
		}
		system(e)
	}
}

func dt() float64 {
	return cfg.C.DeltaTime()
}

// logf prefixes encounter log lines with the encounter id.
func logf(ecs *ecs.ECS, format string, args ...interface{}) {
	prefix := "[encounter]"
	if enc := GetEncounter(ecs); enc != nil {
		prefix = fmt.Sprintf("[encounter %s]", enc.ID.String()[:8])
	}
	log.Printf(prefix+" "+format, args...)
}

// entryOf returns the entry of ent if it is still alive. Entries are shared
// per entity id and get rebound when an id is reused, so anything kept across
// ticks or removals holds the versioned Entity instead.
func entryOf(ecs *ecs.ECS, ent donburi.Entity) (*donburi.Entry, bool) {
	if !ecs.World.Valid(ent) {
		return nil, false
	}
	return ecs.World.Entry(ent), true
}

// destroyEntry removes an entity and its broad-phase body.
func destroyEntry(ecs *ecs.ECS, ent donburi.Entity) {
	e, ok := entryOf(ecs, ent)
	if !ok {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if space := getSpace(ecs); space != nil && obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(ent)
}

// despawnSet defers removals until the end of a pass so every event in the
// pass sees the same world.
type despawnSet struct {
	entities []donburi.Entity
	seen     map[donburi.Entity]struct{}
}

func newDespawnSet() *despawnSet {
	return &despawnSet{seen: make(map[donburi.Entity]struct{})}
}

func (d *despawnSet) add(ent donburi.Entity) {
	if _, ok := d.seen[ent]; ok {
		return
	}
	d.seen[ent] = struct{}{}
	d.entities = append(d.entities, ent)
}

func (d *despawnSet) apply(ecs *ecs.ECS) {
	for _, ent := range d.entities {
		destroyEntry(ecs, ent)
	}
}
