package factory

import (
	"math/rand"

	"github.com/automoto/spellcard/archetypes"
	"github.com/automoto/spellcard/components"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEncounter creates the encounter singleton. Every random draw of the
// encounter comes from seed, so equal seeds replay equal fights.
func CreateEncounter(ecs *ecs.ECS, boss string, seed int64) *donburi.Entry {
	enc := archetypes.Encounter.Spawn(ecs)
	components.Encounter.SetValue(enc, components.EncounterData{
		ID:      uuid.New(),
		Boss:    boss,
		Outcome: components.MissionOngoing,
		Rand:    rand.New(rand.NewSource(seed)),
	})
	return enc
}
