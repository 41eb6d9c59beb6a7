package factory

import (
	"github.com/automoto/spellcard/archetypes"
	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EmitterDef describes one emitter of a spellcard.
type EmitterDef struct {
	Period  float64
	Offset  gamemath.Vec2
	Spawner components.BulletSpawner
	Pattern components.Pattern
}

// SpellcardDef is a named time window and the emitters it drives.
type SpellcardDef struct {
	Name     string
	Start    float64
	End      float64
	Emitters []EmitterDef
}

// entityOf returns the entity of e, or donburi.Null for an unowned emitter.
func entityOf(e *donburi.Entry) donburi.Entity {
	if e == nil {
		return donburi.Null
	}
	return e.Entity()
}

// CreateEmitter spawns an inactive emitter owned by owner.
func CreateEmitter(ecs *ecs.ECS, owner *donburi.Entry, def EmitterDef) *donburi.Entry {
	emitter := archetypes.Emitter.Spawn(ecs)
	components.Emitter.SetValue(emitter, components.EmitterData{
		Owner:   entityOf(owner),
		Offset:  def.Offset,
		Timer:   components.NewRepeatingTimer(def.Period),
		Spawner: def.Spawner,
	})
	if def.Pattern != nil {
		def.Pattern.Attach(emitter)
	}
	return emitter
}

// CreateSpellcard spawns the spellcard and all of its emitters.
func CreateSpellcard(ecs *ecs.ECS, owner *donburi.Entry, def SpellcardDef) *donburi.Entry {
	emitters := make([]donburi.Entity, 0, len(def.Emitters))
	for _, em := range def.Emitters {
		emitters = append(emitters, CreateEmitter(ecs, owner, em).Entity())
	}

	card := archetypes.Spellcard.Spawn(ecs)
	components.Spellcard.SetValue(card, components.SpellcardData{
		Name:     def.Name,
		Owner:    entityOf(owner),
		Start:    def.Start,
		End:      def.End,
		Emitters: emitters,
	})
	return card
}
