package main

import (
	"flag"
	"image"
	"log"
	"strings"

	"github.com/automoto/spellcard/config"
	"github.com/automoto/spellcard/encounter"
	"github.com/automoto/spellcard/scenes"
	"github.com/automoto/spellcard/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(selection *scenes.SavedSelection, skipMenu bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, selection)

	if skipMenu {
		loadout, err := factory.ParseLoadout(selection.Loadout)
		if err != nil {
			log.Fatalf("Invalid loadout: %v", err)
		}
		enc, err := encounter.New(encounter.Params{
			Boss:    selection.Boss,
			Loadout: loadout,
			Seed:    selection.Seed,
		})
		if err != nil {
			log.Fatalf("Failed to start encounter: %v", err)
		}
		g.scene = scenes.NewEncounterScene(g, enc, selection)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	boss := flag.String("boss", "", "Boss to fight ("+strings.Join(factory.Bosses(), ", ")+"), empty = last played")
	loadout := flag.String("loadout", "", "Comma separated techs, suffix :alt for the alternate group, empty = last used")
	seed := flag.Int64("seed", 0, "Random seed, 0 = last used")
	skipMenu := flag.Bool("skipmenu", false, "Start the fight right away")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Spellcard")
	ebiten.SetTPS(config.C.TickRate)

	if err := scenes.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	selection := scenes.LoadSelection()
	if selection == nil {
		selection = &scenes.SavedSelection{
			Boss:    "redgirl",
			Loadout: factory.DefaultLoadout().String(),
			Seed:    1,
		}
	}
	if *boss != "" {
		selection.Boss = *boss
	}
	if *loadout != "" {
		selection.Loadout = *loadout
	}
	if *seed != 0 {
		selection.Seed = *seed
	}

	if err := ebiten.RunGame(NewGame(selection, *skipMenu)); err != nil {
		log.Fatal(err)
	}
}
