package systems

import (
	"github.com/automoto/spellcard/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

type LifeLost struct {
	LivesLeft int
}

type EnemyDamaged struct {
	Enemy  donburi.Entity
	Amount int
	Health int
}

type EnemyDefeated struct {
	Name string
}

type MissionEnded struct {
	Outcome components.MissionOutcome
	Time    float64
	Loops   int
}

type SpellcardStarted struct {
	Name string
	Time float64
}

var (
	LifeLostEvent         = events.NewEventType[LifeLost]()
	EnemyDamagedEvent     = events.NewEventType[EnemyDamaged]()
	EnemyDefeatedEvent    = events.NewEventType[EnemyDefeated]()
	MissionEndedEvent     = events.NewEventType[MissionEnded]()
	SpellcardStartedEvent = events.NewEventType[SpellcardStarted]()
)

// ProcessEvents delivers the events published during the tick. It runs last
// so subscribers see the settled world.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
