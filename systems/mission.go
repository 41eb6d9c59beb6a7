package systems

import (
	"github.com/automoto/spellcard/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMission decides the outcome. Losing the last life fails the mission
// even when the boss fell on the same tick.
func UpdateMission(ecs *ecs.ECS) {
	enc := GetEncounter(ecs)
	if enc == nil || enc.Outcome != components.MissionOngoing {
		return
	}

	outcome := components.MissionOngoing
	if player, ok := FindPlayer(ecs); ok && components.Lives.Get(player).Lives <= 0 {
		outcome = components.MissionFail
	} else if _, alive := FindBoss(ecs); !alive {
		outcome = components.MissionSuccess
	}
	if outcome == components.MissionOngoing {
		return
	}

	enc.Outcome = outcome
	logf(ecs, "mission %s after %.2fs (tick %d, loop %d)", outcome, enc.Time, enc.Tick, enc.Loops)
	MissionEndedEvent.Publish(ecs.World, MissionEnded{
		Outcome: outcome,
		Time:    enc.Time,
		Loops:   enc.Loops,
	})
}
