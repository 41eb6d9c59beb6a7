package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/spellcard/components"
	cfg "github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/encounter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// OutcomeScene shows how the fight ended.
type OutcomeScene struct {
	sceneChanger SceneChanger
	selection    *SavedSelection
	snapshot     encounter.Snapshot
	seconds      float64
	newBest      bool
}

// NewOutcomeScene records a clear time when the boss was beaten.
func NewOutcomeScene(sc SceneChanger, selection *SavedSelection, s encounter.Snapshot) *OutcomeScene {
	oc := &OutcomeScene{
		sceneChanger: sc,
		selection:    selection,
		snapshot:     s,
		seconds:      float64(s.Tick) / float64(cfg.C.TickRate),
	}
	if s.Outcome == components.MissionSuccess {
		oc.newBest = RecordClear(selection, selection.Boss, oc.seconds)
		if oc.newBest {
			_ = SaveSelection(selection)
		}
	}
	return oc
}

func (oc *OutcomeScene) Update() {
	if justPressed(actionSelect) || justPressed(actionBack) {
		oc.sceneChanger.ChangeScene(NewMenuScene(oc.sceneChanger, oc.selection))
	}
}

func (oc *OutcomeScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	title := "MISSION FAILED"
	if oc.snapshot.Outcome == components.MissionSuccess {
		title = "MISSION COMPLETE"
	}
	ebitenutil.DebugPrintAt(screen, title, 80, 60)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("boss: %s   time: %.1fs   lives left: %d",
		oc.selection.Boss, oc.seconds, oc.snapshot.Lives), 80, 90)
	if oc.newBest {
		ebitenutil.DebugPrintAt(screen, "new best time!", 80, 110)
	}
	ebitenutil.DebugPrintAt(screen, "enter: back to boss select", 80, 140)
}
