package factory

import (
	"errors"
	"testing"

	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateEncounter(e, "test", 1)
	CreateSpace(e)
	return e
}

func TestParseLoadout(t *testing.T) {
	tests := []struct {
		in   string
		want Loadout
	}{
		{"", nil},
		{"machinegun", Loadout{{Tech: MachineGun}}},
		{"machinegun, rocket:alt", Loadout{{Tech: MachineGun}, {Tech: Rocket, Alt: true}}},
		{"HeavyBody,,phase:ALT", Loadout{{Tech: HeavyBody}, {Tech: Phase, Alt: true}}},
	}
	for _, tt := range tests {
		got, err := ParseLoadout(tt.in)
		if err != nil {
			t.Errorf("ParseLoadout(%q): %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseLoadout(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseLoadout(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseLoadoutUnknownTech(t *testing.T) {
	_, err := ParseLoadout("machinegun,laser")
	if !errors.Is(err, ErrUnknownTech) {
		t.Errorf("err = %v, want ErrUnknownTech", err)
	}
}

func TestLoadoutRoundTrip(t *testing.T) {
	l := DefaultLoadout()
	back, err := ParseLoadout(l.String())
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != "machinegun,rocket:alt" {
		t.Errorf("default loadout = %q", back.String())
	}
}

func TestLookupUnknownBoss(t *testing.T) {
	if _, err := LookupBoss("nobody"); !errors.Is(err, ErrUnknownBoss) {
		t.Errorf("err = %v, want ErrUnknownBoss", err)
	}
}

func TestBossCatalog(t *testing.T) {
	names := Bosses()
	if len(names) != 4 {
		t.Fatalf("bosses = %v, want 4", names)
	}
	for _, name := range names {
		def, err := LookupBoss(name)
		if err != nil {
			t.Fatalf("LookupBoss(%q): %v", name, err)
		}
		if def.Health <= 0 || def.Radius <= 0 {
			t.Errorf("%s: health %d radius %v", name, def.Health, def.Radius)
		}
		if len(def.Spellcards) == 0 {
			t.Errorf("%s has no spellcards", name)
		}
		for _, card := range def.Spellcards {
			if card.End <= card.Start {
				t.Errorf("%s/%s: empty window [%v, %v)", name, card.Name, card.Start, card.End)
			}
			for i, em := range card.Emitters {
				if em.Pattern == nil {
					t.Errorf("%s/%s emitter %d has no pattern", name, card.Name, i)
				}
				s := em.Spawner
				if s.Normal == nil && s.Rotating == nil && s.Stutter == nil &&
					s.Homing == nil && s.Wave == nil && s.Delayed == nil {
					t.Errorf("%s/%s emitter %d spawns motionless bullets", name, card.Name, i)
				}
			}
		}
	}
}

func TestCreateBossSpawnsSpellcards(t *testing.T) {
	e := newTestECS()
	boss, err := CreateBoss(e, "redgirl")
	if err != nil {
		t.Fatal(err)
	}
	def, _ := LookupBoss("redgirl")

	if h := components.Health.Get(boss); h.Current != def.Health || h.Max != def.Health {
		t.Errorf("health = %+v, want %d", h, def.Health)
	}

	var cards, emitters int
	tags.Spellcard.Each(e.World, func(card *donburi.Entry) {
		cards++
		sc := components.Spellcard.Get(card)
		if sc.Owner != boss.Entity() {
			t.Errorf("spellcard %s not owned by the boss", sc.Name)
		}
		for _, em := range sc.Emitters {
			if !e.World.Valid(em) {
				t.Fatalf("spellcard %s references a removed emitter", sc.Name)
			}
			if components.Emitter.Get(e.World.Entry(em)).Active {
				t.Errorf("spellcard %s starts with an active emitter", sc.Name)
			}
		}
	})
	tags.Emitter.Each(e.World, func(*donburi.Entry) { emitters++ })

	want := 0
	for _, card := range def.Spellcards {
		want += len(card.Emitters)
	}
	if cards != len(def.Spellcards) || emitters != want {
		t.Errorf("spawned %d spellcards and %d emitters, want %d and %d", cards, emitters, len(def.Spellcards), want)
	}
}

func TestCreatePlayerBulletTags(t *testing.T) {
	e := newTestECS()
	proto := components.NewBulletSpawner(6, components.SpriteData{})

	plain := CreatePlayerBullet(e, proto, gamemath.Vec2{}, 2, false, false)
	if plain.HasComponent(tags.Salted) || plain.HasComponent(tags.Phasing) {
		t.Error("plain bullet carries modifiers")
	}
	if d := components.PlayerBullet.Get(plain).Damage; d != 2 {
		t.Errorf("damage = %d, want 2", d)
	}

	both := CreatePlayerBullet(e, proto, gamemath.Vec2{}, 2, true, true)
	if !both.HasComponent(tags.Salted) || !both.HasComponent(tags.Phasing) {
		t.Error("modifiers missing")
	}

	enemy := CreateEnemyBullet(e, proto, gamemath.Vec2{})
	if enemy.HasComponent(components.PlayerBullet) {
		t.Error("enemy bullet marked as player owned")
	}
}
