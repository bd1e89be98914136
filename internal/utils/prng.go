// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-mazemaster/internal/defs"
)

// PRNGService wraps the standard generator so the whole game can run
// on a predictable seed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. Seed 0 means
// "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted picks an adversary ID from a weighted spawn table.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].AdversaryID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.AdversaryID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].AdversaryID
}
