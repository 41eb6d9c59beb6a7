package systems

import (
	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEncounterTime advances the tick counter and the spellcard clock.
func UpdateEncounterTime(ecs *ecs.ECS) {
	enc := GetEncounter(ecs)
	if enc == nil {
		return
	}
	enc.Tick++
	enc.Time += dt()
}

// UpdateSpellcards activates the emitters of every spellcard whose window
// holds the current clock value. Once every window has ended the clock is
// wound back to zero and the schedule repeats.
func UpdateSpellcards(ecs *ecs.ECS) {
	enc := GetEncounter(ecs)
	if enc == nil {
		return
	}

	wasActive := make(map[donburi.Entity]bool)
	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		em := components.Emitter.Get(e)
		wasActive[e.Entity()] = em.Active
		em.Active = false
	})

	allEnded := true
	cards := 0
	tags.Spellcard.Each(ecs.World, func(e *donburi.Entry) {
		card := components.Spellcard.Get(e)
		cards++
		if !card.Ended(enc.Time) {
			allEnded = false
		}
		if !card.Contains(enc.Time) {
			return
		}

		started := false
		for _, ent := range card.Emitters {
			em, ok := entryOf(ecs, ent)
			if !ok || !em.HasComponent(components.Emitter) {
				continue
			}
			components.Emitter.Get(em).Active = true
			if !wasActive[ent] {
				started = true
			}
		}
		if started {
			SpellcardStartedEvent.Publish(ecs.World, SpellcardStarted{Name: card.Name, Time: enc.Time})
		}
	})

	if allEnded {
		enc.Time = 0
		if cards > 0 {
			enc.Loops++
			logf(ecs, "spellcards: schedule complete, looping (loop %d)", enc.Loops)
		}
	}
}
