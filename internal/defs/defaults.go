// internal/defs/defaults.go
package defs

import "go-mazemaster/internal/config"

// UseDefaults installs the compiled-in definitions. They mirror
// assets/defs/*.json and keep the game playable without asset files.
func UseDefaults() {
	AdversaryDefs = map[string]AdversaryDefinition{
		"ADV_CHASER": {
			ID:          "ADV_CHASER",
			Name:        "Chaser",
			SpeedFactor: 1.0,
			Visuals: Visuals{
				Color: RGBA{R: 255, G: 165, B: 0, A: 255},
				Inset: 2,
			},
		},
		"ADV_STALKER": {
			ID:          "ADV_STALKER",
			Name:        "Stalker",
			SpeedFactor: 1.25,
			Visuals: Visuals{
				Color: RGBA{R: 255, G: 120, B: 0, A: 255},
				Inset: 3,
			},
		},
	}

	Tuning = LevelTuning{
		BaseSpeed:       config.AdversaryBaseSpeed,
		SpeedPerLevel:   config.AdversarySpeedPerLevel,
		MaxAdversaries:  config.MaxAdversaries,
		KillScore:       config.KillScore,
		EscapeScoreBase: config.EscapeScoreBase,
		SpawnTable: []SpawnEntry{
			{AdversaryID: "ADV_CHASER", Weight: 4},
			{AdversaryID: "ADV_STALKER", Weight: 1},
		},
	}
}
