package components

import "github.com/yohamta/donburi"

// SpellcardData activates its emitters while the encounter clock lies in
// [Start, End).
type SpellcardData struct {
	Name     string
	Owner    donburi.Entity
	Start    float64
	End      float64
	Emitters []donburi.Entity
}

var Spellcard = donburi.NewComponentType[SpellcardData]()

func (s *SpellcardData) Contains(t float64) bool {
	return s.Start <= t && t < s.End
}

// Ended reports whether the clock has left the window for good.
func (s *SpellcardData) Ended(t float64) bool {
	return t >= s.End
}
