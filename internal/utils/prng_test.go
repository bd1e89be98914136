// internal/utils/prng_test.go
package utils_test

import (
	"testing"

	"go-mazemaster/internal/defs"
	"go-mazemaster/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestPRNGDeterministicPerSeed(t *testing.T) {
	a := utils.NewPRNGService(123)
	b := utils.NewPRNGService(123)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestPRNGIntnRange(t *testing.T) {
	s := utils.NewPRNGService(7)
	for i := 0; i < 100; i++ {
		v := s.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestPRNGFloat64Range(t *testing.T) {
	s := utils.NewPRNGService(7)
	for i := 0; i < 100; i++ {
		v := s.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestChooseWeightedReturnsValidIDs(t *testing.T) {
	s := utils.NewPRNGService(11)
	table := []defs.SpawnEntry{
		{AdversaryID: "A", Weight: 4},
		{AdversaryID: "B", Weight: 1},
	}

	counts := map[string]int{}
	for i := 0; i < 500; i++ {
		counts[s.ChooseWeighted(table)]++
	}

	assert.Len(t, counts, 2, "both entries should be drawn eventually")
	assert.Greater(t, counts["A"], counts["B"], "heavier weight should dominate")
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	s := utils.NewPRNGService(1)

	assert.Equal(t, "", s.ChooseWeighted(nil))

	zeroed := []defs.SpawnEntry{
		{AdversaryID: "ONLY", Weight: 0},
	}
	assert.Equal(t, "ONLY", s.ChooseWeighted(zeroed))
}
