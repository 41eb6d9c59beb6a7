package systems

import (
	"testing"

	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/yohamta/donburi"
)

func TestSpellcardWindowsOverlapAndLoop(t *testing.T) {
	e := newTestECS(t)
	first := factory.CreateSpellcard(e, nil, factory.SpellcardDef{
		Name: "first", Start: 0, End: 10,
		Emitters: []factory.EmitterDef{{Period: 1}},
	})
	second := factory.CreateSpellcard(e, nil, factory.SpellcardDef{
		Name: "second", Start: 5, End: 20,
		Emitters: []factory.EmitterDef{{Period: 1}},
	})
	emitterOf := func(card *donburi.Entry) *components.EmitterData {
		return components.Emitter.Get(e.World.Entry(components.Spellcard.Get(card).Emitters[0]))
	}

	tests := []struct {
		time      float64
		firstOn   bool
		secondOn  bool
		wantReset bool
	}{
		{time: 0, firstOn: true},
		{time: 4.99, firstOn: true},
		{time: 5, firstOn: true, secondOn: true},
		{time: 9.99, firstOn: true, secondOn: true},
		{time: 10, secondOn: true},
		{time: 19.99, secondOn: true},
		{time: 20, wantReset: true},
		{time: 25, wantReset: true},
	}

	for _, tt := range tests {
		enc := GetEncounter(e)
		enc.Time = tt.time
		loops := enc.Loops

		UpdateSpellcards(e)

		if got := emitterOf(first).Active; got != tt.firstOn {
			t.Errorf("t=%v: first active = %v, want %v", tt.time, got, tt.firstOn)
		}
		if got := emitterOf(second).Active; got != tt.secondOn {
			t.Errorf("t=%v: second active = %v, want %v", tt.time, got, tt.secondOn)
		}
		if tt.wantReset {
			if enc.Time != 0 || enc.Loops != loops+1 {
				t.Errorf("t=%v: clock = %v loops = %d, want reset to 0 and loop %d", tt.time, enc.Time, enc.Loops, loops+1)
			}
		} else if enc.Time != tt.time {
			t.Errorf("t=%v: clock changed to %v", tt.time, enc.Time)
		}
	}
}

func TestSpellcardDeactivationKeepsTimer(t *testing.T) {
	e := newTestECS(t)
	card := factory.CreateSpellcard(e, nil, factory.SpellcardDef{
		Name: "only", Start: 0, End: 1,
		Emitters: []factory.EmitterDef{{Period: 2}},
	})
	emitter := e.World.Entry(components.Spellcard.Get(card).Emitters[0])
	components.Emitter.Get(emitter).Timer.Elapsed = 0.7

	GetEncounter(e).Time = 0.5
	UpdateSpellcards(e)
	if !components.Emitter.Get(emitter).Active {
		t.Fatal("emitter not active inside its window")
	}

	// A second card keeps the schedule from looping.
	factory.CreateSpellcard(e, nil, factory.SpellcardDef{Name: "later", Start: 1, End: 3})
	GetEncounter(e).Time = 1.5
	UpdateSpellcards(e)
	em := components.Emitter.Get(emitter)
	if em.Active {
		t.Fatal("emitter still active outside its window")
	}
	if em.Timer.Elapsed != 0.7 {
		t.Errorf("timer elapsed = %v, want untouched 0.7", em.Timer.Elapsed)
	}
}

func TestEncounterTimeAdvances(t *testing.T) {
	e := newTestECS(t)
	runTicks(e, 64, UpdateEncounterTime)

	enc := GetEncounter(e)
	if enc.Tick != 64 {
		t.Errorf("tick = %d, want 64", enc.Tick)
	}
	if !near(enc.Time, 1) {
		t.Errorf("time = %v, want 1", enc.Time)
	}
}
