package encounter

import (
	"context"
	"log"
	"time"

	"github.com/automoto/spellcard/components"
)

// Loop ticks an encounter in real time until the outcome is decided or the
// context is cancelled.
type Loop struct {
	enc      *Encounter
	tickRate int

	// OnTick, when set, runs after every tick.
	OnTick func(s Snapshot)
}

func NewLoop(enc *Encounter, tickRate int) *Loop {
	return &Loop{
		enc:      enc,
		tickRate: tickRate,
	}
}

// Run blocks until the fight ends or ctx is done, returning the outcome
// reached so far.
func (l *Loop) Run(ctx context.Context) components.MissionOutcome {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[encounter %s] loop started at %d ticks/second", l.enc.ID().String()[:8], l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[encounter %s] loop stopped: %v", l.enc.ID().String()[:8], ctx.Err())
			return l.enc.Outcome()
		case <-ticker.C:
			if outcome, done := l.tick(); done {
				return outcome
			}
		}
	}
}

// RunTicks advances the encounter as fast as possible for at most n ticks.
func (l *Loop) RunTicks(n int) components.MissionOutcome {
	for i := 0; i < n; i++ {
		if outcome, done := l.tick(); done {
			return outcome
		}
	}
	return l.enc.Outcome()
}

func (l *Loop) tick() (components.MissionOutcome, bool) {
	l.enc.Tick()
	s := l.enc.Snapshot()
	if l.OnTick != nil {
		l.OnTick(s)
	}
	return s.Outcome, s.Outcome != components.MissionOngoing
}
