// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// AdversaryDefs is the library of all adversary definitions, mapped by ID.
var AdversaryDefs map[string]AdversaryDefinition

// Tuning is the active level-scaling table.
var Tuning LevelTuning

// LoadAdversaryDefinitions reads the adversary configuration file and
// populates AdversaryDefs.
func LoadAdversaryDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read adversary definitions file: %w", err)
	}

	var adversaryDefs []AdversaryDefinition
	if err := json.Unmarshal(file, &adversaryDefs); err != nil {
		return fmt.Errorf("failed to unmarshal adversary definitions: %w", err)
	}

	AdversaryDefs = make(map[string]AdversaryDefinition)
	for _, def := range adversaryDefs {
		AdversaryDefs[def.ID] = def
	}
	return nil
}

// LoadLevelTuning reads the level scaling file into Tuning.
func LoadLevelTuning(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read level tuning file: %w", err)
	}

	var tuning LevelTuning
	if err := json.Unmarshal(file, &tuning); err != nil {
		return fmt.Errorf("failed to unmarshal level tuning: %w", err)
	}

	Tuning = tuning
	return nil
}

// LoadAll loads every definition file from dir, falling back to the
// compiled-in defaults for anything missing so the game always starts.
func LoadAll(dir string) error {
	UseDefaults()
	var firstErr error
	if err := LoadAdversaryDefinitions(dir + "/adversaries.json"); err != nil {
		firstErr = err
	}
	if err := LoadLevelTuning(dir + "/levels.json"); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
