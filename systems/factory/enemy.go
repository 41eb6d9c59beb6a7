package factory

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/automoto/spellcard/archetypes"
	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownBoss = errors.New("unknown boss")

const tau = 2 * math.Pi

// BossDef is everything needed to put a boss into an encounter.
type BossDef struct {
	Name       string
	Health     int
	Radius     float64
	Sprite     components.SpriteData
	Start      gamemath.Vec2
	FirstLeg   gamemath.Vec2
	Spellcards []SpellcardDef
}

var bosses = map[string]func() BossDef{
	"redgirl":  redGirl,
	"tentacle": tentacle,
	"lizard":   lizard,
	"moongirl": moonGirl,
}

// Bosses lists the known boss names in a stable order.
func Bosses() []string {
	names := make([]string, 0, len(bosses))
	for name := range bosses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupBoss returns the definition of a boss by name.
func LookupBoss(name string) (BossDef, error) {
	def, ok := bosses[name]
	if !ok {
		return BossDef{}, fmt.Errorf("boss %q: %w", name, ErrUnknownBoss)
	}
	return def(), nil
}

// CreateBoss spawns the named boss with its spellcards.
func CreateBoss(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	def, err := LookupBoss(name)
	if err != nil {
		return nil, err
	}
	return CreateEnemy(ecs, def), nil
}

func CreateEnemy(ecs *ecs.ECS, def BossDef) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	components.Enemy.SetValue(enemy, components.EnemyData{Name: def.Name})
	components.Transform.SetValue(enemy, components.TransformData{Position: def.Start})
	components.Collider.SetValue(enemy, components.ColliderData{Radius: def.Radius})
	components.Sprite.SetValue(enemy, def.Sprite)
	components.Health.SetValue(enemy, components.HealthData{
		Current: def.Health,
		Max:     def.Health,
	})

	obj := components.NewCircleObject(def.Start, def.Radius, tags.ResolvEnemy)
	obj.Data = enemy.Entity()
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	move := components.RandomMovementData{
		NextMove: components.NewRepeatingTimer(cfg.BossMovement.FirstMoveSeconds),
		MoveEnd:  def.Start,
		MoveTime: cfg.BossMovement.MoveSeconds,
	}
	move.StartLeg(def.FirstLeg)
	donburi.Add(enemy, components.RandomMovement, &move)

	for _, card := range def.Spellcards {
		CreateSpellcard(ecs, enemy, card)
	}
	return enemy
}

func bossBullet(key string, size float64) components.BulletSpawner {
	return components.NewBulletSpawner(5, components.SpriteData{Key: key, Size: size})
}

func newBoss(name string, health int, sprite components.SpriteData, cards ...SpellcardDef) BossDef {
	return BossDef{
		Name:       name,
		Health:     health,
		Radius:     150,
		Sprite:     sprite,
		Start:      gamemath.V(200, 0),
		FirstLeg:   gamemath.V(500, 0),
		Spellcards: cards,
	}
}

func redGirl() BossDef {
	bullet := bossBullet("redgirl_bullet", BigBullet)
	bullet2 := bossBullet("redgirl_bullet2", BigBullet)

	return newBoss("redgirl", 2000, components.SpriteData{Key: "redgirl", Size: 150},
		SpellcardDef{Name: "Crimson Pinwheel", Start: 0, End: 25, Emitters: []EmitterDef{
			{
				Period:  0.05,
				Spawner: bullet.WithNormal(gamemath.V(4, 0)).WithRotation(gamemath.Vec2{}, 0),
				Pattern: components.CircularAimedData{Offset: 0, Count: 8},
			},
			{
				Period:  0.25,
				Spawner: bullet2.WithNormal(gamemath.V(2, 0)).WithHoming(4, tau/8, components.TargetPlayer),
				Pattern: components.CircularHomingData{Offset: 150, Count: 4},
			},
		}},
		SpellcardDef{Name: "Twin Spirals", Start: 25, End: 45, Emitters: []EmitterDef{
			{
				Period:  1.5,
				Spawner: bullet.WithNormal(gamemath.V(2, 0)).WithRotation(gamemath.Vec2{}, tau/64),
				Pattern: components.CircularAimedData{Offset: 20, Count: 48},
			},
			{
				Period:  1.5,
				Spawner: bullet.WithNormal(gamemath.V(2, 0)).WithRotation(gamemath.Vec2{}, -tau/64),
				Pattern: components.CircularAimedData{Offset: 20, Count: 48},
			},
		}},
		SpellcardDef{Name: "Heartbeat", Start: 45, End: 70, Emitters: []EmitterDef{
			{
				Period:  0.1,
				Spawner: bullet.WithNormal(gamemath.V(2, 0)).WithWave(1, gamemath.V(2, 0)),
				Pattern: components.CircularWaveData{Offset: 150, Count: 6, RotationSpeed: 0.1},
			},
		}},
	)
}

func tentacle() BossDef {
	bullet := bossBullet("tentacle_bullet", SmallBullet).WithNormal(gamemath.V(4, 0))

	return newBoss("tentacle", 1500, components.SpriteData{Key: "tentacle", Size: 150},
		SpellcardDef{Name: "Ink Storm", Start: 0, End: 25, Emitters: []EmitterDef{
			{
				Period:  5,
				Spawner: bullet,
				Pattern: components.SprayData{SprayWidth: tau, FiringTime: 5, FiringSpeed: 0.05},
			},
		}},
		SpellcardDef{Name: "Grasping Arms", Start: 25, End: 45, Emitters: []EmitterDef{
			{
				Period:  0.05,
				Spawner: bullet,
				Pattern: components.TentacleData{Offset: 100, Count: 4},
			},
		}},
		SpellcardDef{Name: "Lash", Start: 45, End: 70, Emitters: []EmitterDef{
			{
				Period:  1.4,
				Spawner: bullet,
				Pattern: components.SprayData{SprayWidth: 0.4, FiringTime: 1, FiringSpeed: 0.01},
			},
		}},
	)
}

func lizard() BossDef {
	bullet := bossBullet("lizard_bullet", MediumBullet).WithNormal(gamemath.V(4, 0))

	return newBoss("lizard", 2000, components.SpriteData{Key: "lizard", Size: 150},
		SpellcardDef{Name: "Scale Fan", Start: 0, End: 25, Emitters: []EmitterDef{
			{
				Period:  1,
				Spawner: bullet,
				Pattern: components.SprayData{SprayWidth: tau / 4, FiringTime: 0.5, FiringSpeed: 0.02},
			},
		}},
		SpellcardDef{Name: "Tail Sweep", Start: 25, End: 45, Emitters: []EmitterDef{
			{
				Period:  1,
				Spawner: bullet,
				Pattern: components.RotatingSprayData{
					SprayWidth: tau / 4, FiringTime: 1, FiringSpeed: 0.01,
					RotationSpeed: tau / 8, SprayCount: 2,
				},
			},
		}},
		SpellcardDef{Name: "Sandstorm", Start: 45, End: 70, Emitters: []EmitterDef{
			{
				Period:  5,
				Spawner: bullet.WithRotation(gamemath.V(200, 0), tau/16),
				Pattern: components.SprayData{SprayWidth: tau, FiringTime: 5, FiringSpeed: 0.01},
			},
		}},
	)
}

func moonGirl() BossDef {
	bullet := bossBullet("moongirl_bullet", MediumBullet)

	return newBoss("moongirl", 5000, components.SpriteData{Key: "moongirl", Size: 100},
		SpellcardDef{Name: "Lattice", Start: 0, End: 25, Emitters: []EmitterDef{
			{
				Period:  0.05,
				Spawner: bullet.WithNormal(gamemath.V(5, 0)),
				Pattern: components.DivisiveData{Columns: 19, Rows: 11},
			},
		}},
		SpellcardDef{Name: "Moonfall", Start: 25, End: 45, Emitters: []EmitterDef{
			{
				Period:  0.01,
				Spawner: bullet.WithNormal(gamemath.V(-5, 0)),
				Pattern: components.FloodData{Spray: tau / 16},
			},
		}},
		SpellcardDef{Name: "Halo", Start: 0, End: 45, Emitters: []EmitterDef{
			{
				Period:  1.5,
				Spawner: bullet.WithNormal(gamemath.V(-2, 0)).WithRotation(gamemath.Vec2{}, tau/64),
				Pattern: components.CircularAimedData{Offset: 1120, Count: 64},
			},
		}},
		SpellcardDef{Name: "Lunar Sweep", Start: 45, End: 70, Emitters: []EmitterDef{
			{
				Period:  1,
				Spawner: bullet.WithNormal(gamemath.V(4, 0)),
				Pattern: components.RotatingSprayData{
					SprayWidth: tau / 4, FiringTime: 1, FiringSpeed: 0.01,
					RotationSpeed: tau / 8, SprayCount: 2,
				},
			},
		}},
		SpellcardDef{Name: "Counter Spirals", Start: 70, End: 100, Emitters: []EmitterDef{
			{
				Period:  0.05,
				Spawner: bullet.WithNormal(gamemath.V(4, 0)).WithRotation(gamemath.Vec2{}, tau/16),
				Pattern: components.CircularAimedData{Offset: 50, Count: 24},
			},
			{
				Period:  0.05,
				Spawner: bullet.WithNormal(gamemath.V(4, 0)).WithRotation(gamemath.Vec2{}, -tau/16),
				Pattern: components.CircularAimedData{Offset: 50, Count: 24},
			},
		}},
		SpellcardDef{Name: "Hunting Stars", Start: 45, End: 100, Emitters: []EmitterDef{
			{
				Period: 4,
				Spawner: bullet.WithNormal(gamemath.V(4, 0)).
					WithStutter(1, gamemath.V(4, 0)).
					WithHoming(3, tau/3, components.TargetPlayer),
				Pattern: components.CircularAimedData{Offset: 150, Count: 32},
			},
		}},
	)
}
