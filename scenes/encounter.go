package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/encounter"
	"github.com/automoto/spellcard/gamemath"
	"github.com/automoto/spellcard/systems"
	"github.com/automoto/spellcard/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// spriteColors maps sprite keys to the flat colors the client draws with.
var spriteColors = map[string]color.RGBA{
	"player":          colornames.Deepskyblue,
	"player_bullet":   colornames.Lightcyan,
	"rocket":          colornames.Orange,
	"redgirl":         colornames.Crimson,
	"redgirl_bullet":  colornames.Red,
	"redgirl_bullet2": colornames.Hotpink,
	"tentacle":        colornames.Mediumpurple,
	"tentacle_bullet": colornames.Violet,
	"lizard":          colornames.Olivedrab,
	"lizard_bullet":   colornames.Greenyellow,
	"moongirl":        colornames.Lightsteelblue,
	"moongirl_bullet": colornames.Gold,
}

// EncounterScene plays one fight in the window.
type EncounterScene struct {
	sceneChanger SceneChanger
	enc          *encounter.Encounter
	selection    *SavedSelection
	flash        int
	bossFlash    int
	banner       string
	bannerTicks  int
	ended        bool
	paused       bool
	debug        bool
}

func NewEncounterScene(sc SceneChanger, enc *encounter.Encounter, selection *SavedSelection) *EncounterScene {
	es := &EncounterScene{
		sceneChanger: sc,
		enc:          enc,
		selection:    selection,
	}
	enc.Do(func(e *ecs.ECS) {
		systems.LifeLostEvent.Subscribe(e.World, es.onLifeLost)
		systems.EnemyDamagedEvent.Subscribe(e.World, es.onEnemyDamaged)
		systems.EnemyDefeatedEvent.Subscribe(e.World, es.onEnemyDefeated)
		systems.SpellcardStartedEvent.Subscribe(e.World, es.onSpellcardStarted)
		systems.MissionEndedEvent.Subscribe(e.World, es.onMissionEnded)
	})
	return es
}

func (es *EncounterScene) onLifeLost(_ donburi.World, _ systems.LifeLost) {
	es.flash = cfg.C.TickRate / 4
}

func (es *EncounterScene) onEnemyDamaged(_ donburi.World, _ systems.EnemyDamaged) {
	es.bossFlash = cfg.C.TickRate / 16
}

func (es *EncounterScene) onEnemyDefeated(_ donburi.World, ev systems.EnemyDefeated) {
	es.showBanner(ev.Name + " defeated")
}

func (es *EncounterScene) onSpellcardStarted(_ donburi.World, ev systems.SpellcardStarted) {
	es.showBanner(ev.Name)
}

func (es *EncounterScene) onMissionEnded(_ donburi.World, _ systems.MissionEnded) {
	es.ended = true
}

func (es *EncounterScene) showBanner(text string) {
	es.banner = text
	es.bannerTicks = cfg.C.TickRate * 2
}

func (es *EncounterScene) Update() {
	if justPressed(actionBack) {
		es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger, es.selection))
		return
	}
	if justPressed(actionDebug) {
		es.debug = !es.debug
	}
	if justPressed(actionPause) {
		es.paused = !es.paused
	}
	if es.paused {
		return
	}

	es.enc.SetInput(pollInput())
	es.enc.Tick()
	if es.flash > 0 {
		es.flash--
	}
	if es.bossFlash > 0 {
		es.bossFlash--
	}
	if es.bannerTicks > 0 {
		es.bannerTicks--
	}

	if es.ended {
		es.sceneChanger.ChangeScene(NewOutcomeScene(es.sceneChanger, es.selection, es.enc.Snapshot()))
	}
}

func screenScale() float32 {
	return float32(float64(cfg.C.Width) / cfg.Arena.Width)
}

// toScreen maps world coordinates (origin centered, +Y up) onto the window.
func toScreen(p gamemath.Vec2) (float32, float32) {
	scale := float64(screenScale())
	x := (p.X + cfg.Arena.Width/2) * scale
	y := (cfg.Arena.Height/2 - p.Y) * scale
	return float32(x), float32(y)
}

func drawCircle(screen *ebiten.Image, e *donburi.Entry, fallback color.Color) {
	x, y := toScreen(components.Transform.Get(e).Position)
	r := float32(components.Collider.Get(e).Radius) * screenScale()
	if r < 1 {
		r = 1
	}
	c := fallback
	if e.HasComponent(components.Sprite) {
		if sc, ok := spriteColors[components.Sprite.Get(e).Key]; ok {
			c = sc
		}
	}
	vector.DrawFilledCircle(screen, x, y, r, c, true)
}

func (es *EncounterScene) Draw(screen *ebiten.Image) {
	if es.flash > 0 {
		screen.Fill(colornames.Darkred)
	} else {
		screen.Fill(color.Black)
	}

	es.enc.Do(func(e *ecs.ECS) {
		tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
			drawCircle(screen, entry, colornames.White)
		})
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			if systems.IsInvulnerable(entry) && (systems.GetEncounter(e).Tick/4)%2 == 0 {
				return
			}
			drawCircle(screen, entry, colornames.White)
		})
		tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
			drawCircle(screen, entry, colornames.White)
		})
		if es.debug {
			systems.DrawDebug(e, screen, toScreen, screenScale())
		}
	})

	es.drawHUD(screen, es.enc.Snapshot())
	if es.bannerTicks > 0 {
		ebitenutil.DebugPrintAt(screen, es.banner, cfg.C.Width/2-len(es.banner)*3, 40)
	}
	if es.paused {
		es.drawPause(screen)
	}
}

func (es *EncounterScene) drawPause(screen *ebiten.Image) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", cfg.C.Width/2-20, cfg.C.Height/2-20)
	ebitenutil.DebugPrintAt(screen, "p: resume   esc: boss select", cfg.C.Width/2-80, cfg.C.Height/2)
}

func (es *EncounterScene) drawHUD(screen *ebiten.Image, s encounter.Snapshot) {
	if s.BossMax > 0 {
		width := float32(cfg.C.Width - 40)
		vector.DrawFilledRect(screen, 20, 10, width, 8, colornames.Dimgray, false)
		bar := color.Color(colornames.Crimson)
		if es.bossFlash > 0 {
			bar = colornames.White
		}
		vector.DrawFilledRect(screen, 20, 10, width*float32(s.BossHealth)/float32(s.BossMax), 8, bar, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %.1fs  loop %d", s.BossName, s.Time, s.Loops), 20, 22)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d   Ammo: %d   Bullets: %d", s.Lives, s.Ammo, s.Bullets), 20, cfg.C.Height-24)
}
