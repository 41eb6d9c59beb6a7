package systems

import (
	"testing"

	"github.com/automoto/spellcard/components"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collide runs detection and resolution in pipeline order.
func collide(e *ecs.ECS) {
	SyncObjects(e)
	DetectPlayerHits(e)
	DetectBulletHits(e)
	DetectEnemyHits(e)
	ResolveBulletHits(e)
	ResolvePlayerHits(e)
	ResolveEnemyHits(e)
	ClearHits(e)
}

func playerAt(e *ecs.ECS, pos gamemath.Vec2) {
	player := factory.CreatePlayer(e)
	components.Transform.Get(player).Position = pos
}

func lives(t *testing.T, e *ecs.ECS) int {
	t.Helper()
	player, ok := FindPlayer(e)
	if !ok {
		t.Fatal("no player")
	}
	return components.Lives.Get(player).Lives
}

func TestSaltedInterceptSavesLife(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(0, 0))

	enemyBullet := factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(3, 0)).Entity()
	playerBullet := factory.CreatePlayerBullet(e, testBullet(6), gamemath.V(8, 0), 2, true, false).Entity()

	collide(e)

	if got := lives(t, e); got != 3 {
		t.Errorf("lives = %d, want 3", got)
	}
	if e.World.Valid(enemyBullet) {
		t.Error("enemy bullet survived a salted hit")
	}
	if e.World.Valid(playerBullet) {
		t.Error("player bullet survived")
	}
}

func TestUnsaltedInterceptStillHurts(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(0, 0))

	enemyBullet := factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(3, 0)).Entity()
	playerBullet := factory.CreatePlayerBullet(e, testBullet(6), gamemath.V(8, 0), 2, false, false).Entity()

	collide(e)

	if got := lives(t, e); got != 2 {
		t.Errorf("lives = %d, want 2", got)
	}
	if e.World.Valid(playerBullet) {
		t.Error("player bullet survived")
	}
	if e.World.Valid(enemyBullet) {
		t.Error("enemy bullet survived hitting the player")
	}
	player, _ := FindPlayer(e)
	if !IsInvulnerable(player) {
		t.Error("player not invulnerable after losing a life")
	}
}

// Removals made while resolving the player's hits recycle entity ids, and the
// first life lost creates the event queue entity. Later stages must not act on
// the recycled ids.
func TestEnemyHitsAfterPlayerHitIgnoreRecycledIDs(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(0, 0))
	boss := newTestEnemy(e, gamemath.V(100, 0), 100)

	factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(3, 0))
	playerBullet := factory.CreatePlayerBullet(e, testBullet(6), gamemath.V(55, 0), 2, false, false).Entity()
	factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(60, 0))

	collide(e)

	if got := lives(t, e); got != 2 {
		t.Errorf("lives = %d, want 2", got)
	}
	if e.World.Valid(playerBullet) {
		t.Error("player bullet survived")
	}
	// The player bullet was spent on the enemy bullet before reaching the boss.
	if got := components.Health.Get(boss).Current; got != 100 {
		t.Errorf("boss health = %d, want 100", got)
	}
}

func TestAtMostOneLifePerTick(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(0, 0))

	for _, pos := range []gamemath.Vec2{gamemath.V(1, 0), gamemath.V(-1, 0), gamemath.V(0, 2)} {
		factory.CreateEnemyBullet(e, testBullet(5), pos)
	}

	collide(e)

	if got := lives(t, e); got != 2 {
		t.Errorf("lives = %d, want 2", got)
	}
	if n := len(bulletsOf(e)); n != 0 {
		t.Errorf("%d enemy bullets left, want all despawned", n)
	}
}

func TestInvulnerablePlayerKeepsLives(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(0, 0))

	factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(1, 0))
	collide(e)
	factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(1, 0))
	collide(e)

	if got := lives(t, e); got != 2 {
		t.Errorf("lives = %d, want 2", got)
	}
	if n := len(bulletsOf(e)); n != 0 {
		t.Errorf("%d enemy bullets left, want all despawned", n)
	}
}

func TestInvulnerabilityExpires(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(0, 0))
	factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(1, 0))
	collide(e)

	player, _ := FindPlayer(e)
	runTicks(e, 3*64+1, UpdateInvulnerability)
	if IsInvulnerable(player) {
		t.Fatal("still invulnerable after the grace period")
	}

	factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(1, 0))
	collide(e)
	if got := lives(t, e); got != 1 {
		t.Errorf("lives = %d, want 1", got)
	}
}

func TestEnemyHitDamage(t *testing.T) {
	tests := []struct {
		name    string
		phasing bool
		want    int
	}{
		{"solid doubles damage", false, 80},
		{"phasing deals base damage", true, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			playerAt(e, gamemath.V(-600, 0))
			enemy := newTestEnemy(e, gamemath.V(500, 0), 100)
			bullet := factory.CreatePlayerBullet(e, testBullet(6), gamemath.V(480, 0), 10, false, tt.phasing).Entity()

			collide(e)

			if got := components.Health.Get(enemy).Current; got != tt.want {
				t.Errorf("health = %d, want %d", got, tt.want)
			}
			if e.World.Valid(bullet) {
				t.Error("player bullet survived hitting the enemy")
			}
		})
	}
}

func TestPhasingBulletsPassEnemyBullets(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(-600, 0))

	enemyBullet := factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(100, 0)).Entity()
	playerBullet := factory.CreatePlayerBullet(e, testBullet(6), gamemath.V(104, 0), 2, true, true).Entity()

	SyncObjects(e)
	DetectBulletHits(e)
	if n := len(getHitQueue(e).BulletHits); n != 0 {
		t.Fatalf("%d bullet hits recorded for a phasing bullet", n)
	}

	collide(e)
	if !e.World.Valid(enemyBullet) || !e.World.Valid(playerBullet) {
		t.Error("phasing bullet interacted with an enemy bullet")
	}
}

func TestTouchingCirclesDoNotHit(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(0, 0))

	// Player radius 7.5 plus bullet radius 5
	factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(12.5, 0))
	collide(e)

	if got := lives(t, e); got != 3 {
		t.Errorf("lives = %d, want 3", got)
	}
}

func TestEnemyDeathRemovesOwnedEntities(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(-600, 0))
	boss := newTestEnemy(e, gamemath.V(500, 0), 10)
	card := factory.CreateSpellcard(e, boss, factory.SpellcardDef{
		Name: "card", Start: 0, End: 10,
		Emitters: []factory.EmitterDef{{Period: 1}},
	})
	enemy, spellcard := boss.Entity(), card.Entity()
	emitter := components.Spellcard.Get(card).Emitters[0]

	factory.CreatePlayerBullet(e, testBullet(6), gamemath.V(480, 0), 10, false, false)
	collide(e)
	UpdateEnemyDeaths(e)

	alive := func(ent donburi.Entity) bool { return e.World.Valid(ent) }
	if alive(enemy) || alive(spellcard) || alive(emitter) {
		t.Errorf("enemy=%v spellcard=%v emitter=%v, want all removed", alive(enemy), alive(spellcard), alive(emitter))
	}

	UpdateMission(e)
	if got := GetEncounter(e).Outcome; got != components.MissionSuccess {
		t.Errorf("outcome = %v, want success", got)
	}
}

func TestMissionFailsOnLastLife(t *testing.T) {
	e := newTestECS(t)
	playerAt(e, gamemath.V(0, 0))
	newTestEnemy(e, gamemath.V(500, 0), 100)

	player, _ := FindPlayer(e)
	components.Lives.Get(player).Lives = 1
	factory.CreateEnemyBullet(e, testBullet(5), gamemath.V(1, 0))
	collide(e)
	UpdateMission(e)

	if got := GetEncounter(e).Outcome; got != components.MissionFail {
		t.Fatalf("outcome = %v, want fail", got)
	}

	// Gameplay systems stop once the outcome is decided.
	b := factory.CreateEnemyBullet(e, testBullet(5).WithNormal(gamemath.V(1, 0)), gamemath.V(200, 0))
	WithGameplayChecks(UpdateNormalBullets)(e)
	if pos := components.Transform.Get(b).Position; !nearVec(pos, gamemath.V(200, 0)) {
		t.Errorf("bullet moved to %v after the mission ended", pos)
	}
}
