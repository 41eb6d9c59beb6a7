// Command simulate runs a boss encounter headless with a scripted pilot and
// reports the outcome.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/encounter"
	"github.com/automoto/spellcard/systems/factory"
)

func main() {
	boss := flag.String("boss", "redgirl", "Boss to fight ("+strings.Join(factory.Bosses(), ", ")+")")
	loadoutFlag := flag.String("loadout", factory.DefaultLoadout().String(), "Comma separated techs, suffix :alt for the alternate group")
	seed := flag.Int64("seed", 1, "Random seed")
	ticks := flag.Int("ticks", 0, "Stop after this many ticks (0 = run until decided)")
	realtime := flag.Bool("realtime", false, "Tick at the configured tick rate instead of as fast as possible")
	tickRate := flag.Int("tickrate", config.C.TickRate, "Ticks per second")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Tick rate must be positive, got %d", *tickRate)
	}
	config.C.TickRate = *tickRate

	loadout, err := factory.ParseLoadout(*loadoutFlag)
	if err != nil {
		log.Fatalf("Invalid loadout: %v", err)
	}

	enc, err := encounter.New(encounter.Params{
		Boss:    *boss,
		Loadout: loadout,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("Failed to start encounter: %v", err)
	}

	loop := encounter.NewLoop(enc, *tickRate)
	loop.OnTick = func(s encounter.Snapshot) {
		enc.SetInput(pilot(s))
		if s.Tick%uint64(*tickRate*5) == 0 {
			log.Printf("t=%6.2fs loop=%d lives=%d ammo=%d boss=%d/%d bullets=%d",
				s.Time, s.Loops, s.Lives, s.Ammo, s.BossHealth, s.BossMax, s.Bullets)
		}
	}
	enc.SetInput(encounter.Input{Fire: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limit := *ticks
	if limit <= 0 {
		limit = math.MaxInt32
	}

	var outcome = enc.Outcome()
	if *realtime {
		if *ticks > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			defer cancel()
			prev := loop.OnTick
			loop.OnTick = func(s encounter.Snapshot) {
				prev(s)
				if s.Tick >= uint64(limit) {
					cancel()
				}
			}
		}
		outcome = loop.Run(ctx)
	} else {
		outcome = loop.RunTicks(limit)
	}

	s := enc.Snapshot()
	log.Printf("Encounter %s finished: %s after %d ticks (%.2fs on the clock, %d loops), lives=%d boss=%d/%d",
		enc.ID(), outcome, s.Tick, s.Time, s.Loops, s.Lives, s.BossHealth, s.BossMax)
}

// pilot weaves up and down the left side while holding fire.
func pilot(s encounter.Snapshot) encounter.Input {
	phase := float64(s.Tick) / float64(config.C.TickRate)
	return encounter.Input{
		MoveY: math.Sin(phase),
		Fire:  true,
	}
}
