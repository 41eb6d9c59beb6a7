package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/spellcard/encounter"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene picks the boss for the next fight.
type MenuScene struct {
	sceneChanger SceneChanger
	selection    *SavedSelection
	bosses       []string
	cursor       int
}

// NewMenuScene creates the boss selection menu. The cursor starts on the
// boss of the saved selection.
func NewMenuScene(sc SceneChanger, selection *SavedSelection) *MenuScene {
	ms := &MenuScene{
		sceneChanger: sc,
		selection:    selection,
		bosses:       factory.Bosses(),
	}
	for i, b := range ms.bosses {
		if b == selection.Boss {
			ms.cursor = i
		}
	}
	return ms
}

func (ms *MenuScene) Update() {
	switch {
	case justPressed(actionUp):
		ms.cursor = (ms.cursor + len(ms.bosses) - 1) % len(ms.bosses)
	case justPressed(actionDown):
		ms.cursor = (ms.cursor + 1) % len(ms.bosses)
	case justPressed(actionSelect):
		ms.start()
	}
}

func (ms *MenuScene) start() {
	ms.selection.Boss = ms.bosses[ms.cursor]
	_ = SaveSelection(ms.selection)

	loadout, err := factory.ParseLoadout(ms.selection.Loadout)
	if err != nil {
		log.Printf("Warning: saved loadout %q is invalid, using default: %v", ms.selection.Loadout, err)
		loadout = factory.DefaultLoadout()
	}

	enc, err := encounter.New(encounter.Params{
		Boss:    ms.selection.Boss,
		Loadout: loadout,
		Seed:    ms.selection.Seed,
	})
	if err != nil {
		log.Printf("Failed to start encounter: %v", err)
		return
	}
	ms.sceneChanger.ChangeScene(NewEncounterScene(ms.sceneChanger, enc, ms.selection))
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	ebitenutil.DebugPrintAt(screen, "SELECT BOSS", 80, 60)
	for i, b := range ms.bosses {
		line := "  " + b
		if i == ms.cursor {
			line = "> " + b
		}
		if best, ok := ms.selection.BestTimes[b]; ok {
			line += fmt.Sprintf("   best %.1fs", best)
		}
		ebitenutil.DebugPrintAt(screen, line, 80, 100+i*20)
	}
	ebitenutil.DebugPrintAt(screen, "loadout: "+ms.selection.Loadout, 80, 120+len(ms.bosses)*20)
	ebitenutil.DebugPrintAt(screen, "arrows: choose   enter: fight", 80, 140+len(ms.bosses)*20)
}
