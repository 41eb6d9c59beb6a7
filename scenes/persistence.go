package scenes

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSelection is the last fight setup and the best clear time per boss.
type SavedSelection struct {
	Boss      string             `json:"boss"`
	Loadout   string             `json:"loadout"`
	Seed      int64              `json:"seed"`
	BestTimes map[string]float64 `json:"bestTimes"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the save storage. Without it the client still runs,
// nothing is remembered.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spellcard",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSelection returns the saved selection, or nil when there is none.
func LoadSelection() *SavedSelection {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("selection")
	if err != nil {
		log.Printf("Warning: Could not load selection: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var s SavedSelection
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("Warning: Could not parse saved selection: %v", err)
		return nil
	}
	return &s
}

func SaveSelection(s *SavedSelection) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize selection: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("selection", data); err != nil {
		log.Printf("Warning: Could not save selection: %v", err)
		return err
	}
	return nil
}

// RecordClear stores the clear time for boss if it beats the saved one.
// It reports whether a new best was set.
func RecordClear(s *SavedSelection, boss string, seconds float64) bool {
	if s == nil {
		return false
	}
	if s.BestTimes == nil {
		s.BestTimes = make(map[string]float64)
	}
	if best, ok := s.BestTimes[boss]; ok && best <= seconds {
		return false
	}
	s.BestTimes[boss] = seconds
	return true
}
