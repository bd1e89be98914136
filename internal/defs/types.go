// internal/defs/types.go
package defs

import "image/color"

// Visuals holds the drawing parameters of a definition.
type Visuals struct {
	Color RGBA    `json:"color"`
	Inset float64 `json:"inset"`
}

// RGBA is a JSON-friendly color.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// ToColor converts to the image/color representation.
func (c RGBA) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// AdversaryDefinition holds the static data for one adversary type.
type AdversaryDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SpeedFactor float64 `json:"speed_factor"` // multiplier on the level speed
	Visuals     Visuals `json:"visuals"`
}

// SpawnEntry is one row of a weighted spawn table.
type SpawnEntry struct {
	AdversaryID string `json:"adversary_id"`
	Weight      int    `json:"weight"`
}

// LevelTuning controls how difficulty scales with the level counter.
type LevelTuning struct {
	BaseSpeed       float64      `json:"base_speed"`
	SpeedPerLevel   float64      `json:"speed_per_level"`
	MaxAdversaries  int          `json:"max_adversaries"`
	KillScore       int          `json:"kill_score"`
	EscapeScoreBase int          `json:"escape_score_base"`
	SpawnTable      []SpawnEntry `json:"spawn_table"`
}

// AdversaryCount returns how many adversaries a level starts with.
// Level 1 is a free run; afterwards one more per level, capped.
func (t LevelTuning) AdversaryCount(level int) int {
	if level <= 1 {
		return 0
	}
	n := level - 1
	if n > t.MaxAdversaries {
		n = t.MaxAdversaries
	}
	return n
}

// AdversarySpeed returns the step rate for a level, in steps per second.
func (t LevelTuning) AdversarySpeed(level int) float64 {
	if level <= 1 {
		return t.BaseSpeed
	}
	return t.BaseSpeed + float64(level-2)*t.SpeedPerLevel
}

// EscapeScore returns the points for reaching the exit on a level.
func (t LevelTuning) EscapeScore(level int) int {
	return t.EscapeScoreBase * level
}
