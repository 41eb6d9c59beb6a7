package factory

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/automoto/spellcard/archetypes"
	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownTech = errors.New("unknown tech")

// Tech is one loadout selection. Some add weapons, others modify the player
// or the weapons of their group.
type Tech int

const (
	MachineGun Tech = iota
	MachineGunT2
	Rocket
	AmmoStockpile
	HeavyBody
	MagicBullet
	EngineT1
	EngineT2
	Phase
)

var techNames = map[Tech]string{
	MachineGun:    "machinegun",
	MachineGunT2:  "machinegun2",
	Rocket:        "rocket",
	AmmoStockpile: "ammo",
	HeavyBody:     "heavybody",
	MagicBullet:   "magicbullet",
	EngineT1:      "engine1",
	EngineT2:      "engine2",
	Phase:         "phase",
}

func (t Tech) String() string {
	if name, ok := techNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tech(%d)", int(t))
}

// ParseTech looks a tech up by name.
func ParseTech(name string) (Tech, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range techNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("tech %q: %w", name, ErrUnknownTech)
}

// Selection is a tech bound to the primary or the alternate group.
type Selection struct {
	Tech Tech
	Alt  bool
}

// Loadout is the ordered list of selections made before the mission.
type Loadout []Selection

// ParseLoadout reads a comma separated list such as
// "machinegun,rocket:alt,heavybody".
func ParseLoadout(s string) (Loadout, error) {
	var loadout Loadout
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, group, _ := strings.Cut(part, ":")
		tech, err := ParseTech(name)
		if err != nil {
			return nil, err
		}
		loadout = append(loadout, Selection{Tech: tech, Alt: strings.EqualFold(group, "alt")})
	}
	return loadout, nil
}

func (l Loadout) String() string {
	parts := make([]string, 0, len(l))
	for _, s := range l {
		if s.Alt {
			parts = append(parts, s.Tech.String()+":alt")
			continue
		}
		parts = append(parts, s.Tech.String())
	}
	return strings.Join(parts, ",")
}

// DefaultLoadout is a machine gun with a rocket launcher on alt-fire.
func DefaultLoadout() Loadout {
	return Loadout{
		{Tech: MachineGun},
		{Tech: Rocket, Alt: true},
	}
}

func machineGun() components.WeaponData {
	bullet := components.NewBulletSpawner(6, components.SpriteData{Key: "player_bullet", Size: SmallBullet}).
		WithOffset(gamemath.Vec2{}, math.Pi/2).
		WithNormal(gamemath.V(20, 0))
	return components.WeaponData{
		Name:     "machinegun",
		Timer:    components.NewRepeatingTimer(0.05),
		AmmoCost: 1,
		Bullet:   bullet,
		Damage:   2,
	}
}

func rocketLauncher() components.WeaponData {
	sprite := components.SpriteData{Key: "rocket", Size: 100}
	armed := components.NewBulletSpawner(20, sprite).
		WithNormal(gamemath.V(10, 0)).
		WithHoming(60, tau/2, components.TargetEnemy)
	bullet := components.NewBulletSpawner(20, sprite).
		WithNormal(gamemath.V(10, 0)).
		WithDelayed(armed, 0.3)
	return components.WeaponData{
		Name:     "rocket",
		Timer:    components.NewRepeatingTimer(0.5),
		AmmoCost: 100,
		Bullet:   bullet,
		Damage:   50,
	}
}

// ApplyLoadout creates the weapons of the loadout on player and applies the
// stat modifiers. Modifiers act on the whole group they were selected for,
// regardless of their position in the list.
func ApplyLoadout(ecs *ecs.ECS, player *donburi.Entry, loadout Loadout) []*donburi.Entry {
	var primary, alt []components.WeaponData
	var salted, altSalted, phasing, altPhasing bool
	ammoMult, damageMult := 1.0, 1.0

	add := func(isAlt bool, w components.WeaponData) {
		if isAlt {
			alt = append(alt, w)
			return
		}
		primary = append(primary, w)
	}

	stats := components.Player.Get(player)
	ammo := components.Ammo.Get(player)
	lives := components.Lives.Get(player)
	collider := components.Collider.Get(player)

	for _, sel := range loadout {
		switch sel.Tech {
		case MachineGun:
			add(sel.Alt, machineGun())
		case MachineGunT2:
			add(sel.Alt, machineGun())
			add(sel.Alt, machineGun())
		case Rocket:
			add(sel.Alt, rocketLauncher())
		case AmmoStockpile:
			ammo.Ammo += 1000
		case HeavyBody:
			ammoMult += 0.5
			lives.Lives += 3
			collider.Radius += 5
		case MagicBullet:
			if sel.Alt {
				altSalted = true
			} else {
				salted = true
			}
		case Phase:
			if sel.Alt {
				altPhasing = true
			} else {
				phasing = true
			}
		case EngineT1:
			stats.Speed *= 2
		case EngineT2:
			stats.Speed *= 4
			damageMult += 0.5
		}
	}
	ammo.Ammo = int(float64(ammo.Ammo) * ammoMult)

	var weapons []*donburi.Entry
	for _, w := range primary {
		w.Salted = salted
		w.Phasing = phasing
		w.Damage = int(float64(w.Damage) * damageMult)
		weapons = append(weapons, CreateWeapon(ecs, player, w, false))
	}
	for _, w := range alt {
		w.Salted = altSalted
		w.Phasing = altPhasing
		w.Damage = int(float64(w.Damage) * damageMult)
		weapons = append(weapons, CreateWeapon(ecs, player, w, true))
	}
	return weapons
}

// CreateWeapon attaches a weapon to owner, in the alternate group when alt
// is set.
func CreateWeapon(ecs *ecs.ECS, owner *donburi.Entry, w components.WeaponData, alt bool) *donburi.Entry {
	weapon := archetypes.Weapon.Spawn(ecs)
	w.Owner = owner.Entity()
	components.Weapon.SetValue(weapon, w)
	if alt {
		weapon.AddComponent(tags.AltFire)
	}
	return weapon
}
