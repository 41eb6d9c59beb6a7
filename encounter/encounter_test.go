package encounter

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/systems/factory"
)

func newEncounter(t *testing.T, boss string, seed int64) *Encounter {
	t.Helper()
	enc, err := New(Params{Boss: boss, Loadout: factory.DefaultLoadout(), Seed: seed})
	if err != nil {
		t.Fatalf("New(%q): %v", boss, err)
	}
	return enc
}

func TestNewUnknownBoss(t *testing.T) {
	_, err := New(Params{Boss: "nobody", Loadout: factory.DefaultLoadout()})
	if !errors.Is(err, ErrUnknownBoss) {
		t.Fatalf("err = %v, want ErrUnknownBoss", err)
	}
}

func TestInitialSnapshot(t *testing.T) {
	enc := newEncounter(t, "redgirl", 1)
	s := enc.Snapshot()

	if s.Outcome != components.MissionOngoing {
		t.Errorf("outcome = %v, want ongoing", s.Outcome)
	}
	if s.Lives != cfg.Player.Lives || s.Ammo != cfg.Player.Ammo {
		t.Errorf("lives %d ammo %d, want %d and %d", s.Lives, s.Ammo, cfg.Player.Lives, cfg.Player.Ammo)
	}
	if s.BossName != "redgirl" || s.BossHealth != s.BossMax || s.BossMax <= 0 {
		t.Errorf("boss = %q %d/%d", s.BossName, s.BossHealth, s.BossMax)
	}
	if s.Bullets != 0 || s.Tick != 0 {
		t.Errorf("fresh encounter has %d bullets at tick %d", s.Bullets, s.Tick)
	}
}

func TestTickAdvancesClock(t *testing.T) {
	enc := newEncounter(t, "lizard", 1)
	for i := 0; i < cfg.C.TickRate; i++ {
		enc.Tick()
	}
	s := enc.Snapshot()
	if s.Tick != uint64(cfg.C.TickRate) {
		t.Errorf("tick = %d, want %d", s.Tick, cfg.C.TickRate)
	}
	if math.Abs(s.Time-1) > 1e-9 {
		t.Errorf("time = %v, want 1", s.Time)
	}
}

func TestFiringSpendsAmmo(t *testing.T) {
	enc := newEncounter(t, "redgirl", 1)
	enc.SetInput(Input{Fire: true})
	for i := 0; i < 32; i++ {
		enc.Tick()
	}
	if ammo := enc.Ammo(); ammo >= cfg.Player.Ammo {
		t.Errorf("ammo = %d after half a second of fire", ammo)
	}
	if s := enc.Snapshot(); s.Bullets == 0 {
		t.Error("no bullets in flight")
	}
}

func TestSameSeedSameFight(t *testing.T) {
	run := func() Snapshot {
		enc := newEncounter(t, "moongirl", 42)
		enc.SetInput(Input{MoveY: 1, Fire: true})
		NewLoop(enc, cfg.C.TickRate).RunTicks(cfg.C.TickRate * 10)
		return enc.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("equal seeds diverged:\n%+v\n%+v", a, b)
	}
}

func TestRunTicksReportsEveryTick(t *testing.T) {
	enc := newEncounter(t, "tentacle", 1)
	loop := NewLoop(enc, cfg.C.TickRate)

	var seen []uint64
	loop.OnTick = func(s Snapshot) { seen = append(seen, s.Tick) }

	if outcome := loop.RunTicks(10); outcome != components.MissionOngoing {
		t.Fatalf("outcome = %v after 10 ticks", outcome)
	}
	if len(seen) != 10 || seen[9] != 10 {
		t.Errorf("OnTick saw %v", seen)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	enc := newEncounter(t, "redgirl", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if outcome := NewLoop(enc, cfg.C.TickRate).Run(ctx); outcome != components.MissionOngoing {
		t.Errorf("outcome = %v, want ongoing", outcome)
	}
}

func TestBossHealth(t *testing.T) {
	enc := newEncounter(t, "tentacle", 1)
	cur, max, ok := enc.BossHealth()
	if !ok || cur != max {
		t.Errorf("BossHealth() = %d, %d, %v", cur, max, ok)
	}
}
