package components

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// MissionOutcome is the state of the encounter as seen by the host game.
type MissionOutcome int

const (
	MissionOngoing MissionOutcome = iota
	MissionSuccess
	MissionFail
)

func (m MissionOutcome) String() string {
	switch m {
	case MissionSuccess:
		return "success"
	case MissionFail:
		return "fail"
	}
	return "ongoing"
}

// EncounterData is the singleton context of one boss fight. Time is the
// shared spellcard clock; only the spellcard scheduler resets it.
type EncounterData struct {
	ID      uuid.UUID
	Boss    string
	Tick    uint64
	Time    float64
	Loops   int
	Outcome MissionOutcome
	Rand    *rand.Rand
}

var Encounter = donburi.NewComponentType[EncounterData]()
