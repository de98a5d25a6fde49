package risk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edusight/dropsight-backend/internal/model"
)

func TestScoreScenarios(t *testing.T) {
	tests := []struct {
		name            string
		attendance      int
		cgpa            float64
		assignments     int
		wantProbability int
		wantTier        model.RiskTier
	}{
		{"perfect student", 100, 10, 100, 0, model.RiskLow},
		{"worst case", 0, 0, 0, 100, model.RiskHigh},
		{"solid performer", 75, 7.5, 70, 26, model.RiskLow},
		{"middle of the road", 50, 5, 50, 50, model.RiskMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probability, tier := Score(tt.attendance, tt.cgpa, tt.assignments)
			assert.Equal(t, tt.wantProbability, probability)
			assert.Equal(t, tt.wantTier, tier)
		})
	}
}

func TestScoreTierBoundaries(t *testing.T) {
	// Cutoffs are inclusive: 70 is High, 30 is Medium, 29 is Low.
	probability, tier := Score(0, 5, 50)
	assert.Equal(t, 70, probability)
	assert.Equal(t, model.RiskHigh, tier)

	probability, tier = Score(70, 7, 70)
	assert.Equal(t, 30, probability)
	assert.Equal(t, model.RiskMedium, tier)

	probability, tier = Score(70, 7, 75)
	assert.Equal(t, 29, probability)
	assert.Equal(t, model.RiskLow, tier)

	probability, tier = Score(0, 5.25, 50)
	assert.Equal(t, 69, probability)
	assert.Equal(t, model.RiskMedium, tier)
}

func TestScoreRoundsHalfAwayFromZero(t *testing.T) {
	// CGPA 9.875 leaves a weighted deficit of exactly 0.5, which rounds up.
	probability, tier := Score(100, 9.875, 100)
	assert.Equal(t, 1, probability)
	assert.Equal(t, model.RiskLow, tier)
}

func TestScoreClampsOutOfRangeInputs(t *testing.T) {
	overProbability, overTier := Score(150, 12.5, 120)
	assert.Equal(t, 0, overProbability)
	assert.Equal(t, model.RiskLow, overTier)

	underProbability, underTier := Score(-10, -1, -5)
	assert.Equal(t, 100, underProbability)
	assert.Equal(t, model.RiskHigh, underTier)
}

func TestScoreStaysWithinBoundsAndTiersAreConsistent(t *testing.T) {
	for attendance := 0; attendance <= 100; attendance += 5 {
		for cgpa := 0.0; cgpa <= 10.0; cgpa += 0.5 {
			for assignments := 0; assignments <= 100; assignments += 5 {
				probability, tier := Score(attendance, cgpa, assignments)

				assert.GreaterOrEqual(t, probability, 0)
				assert.LessOrEqual(t, probability, 100)

				switch {
				case probability >= 70:
					assert.Equal(t, model.RiskHigh, tier)
				case probability >= 30:
					assert.Equal(t, model.RiskMedium, tier)
				default:
					assert.Equal(t, model.RiskLow, tier)
				}
			}
		}
	}
}

func TestScoreMonotonicity(t *testing.T) {
	// Improving any single metric never increases the probability.
	prev, _ := Score(0, 5, 50)
	for attendance := 1; attendance <= 100; attendance++ {
		p, _ := Score(attendance, 5, 50)
		assert.LessOrEqual(t, p, prev, fmt.Sprintf("attendance=%d", attendance))
		prev = p
	}

	prev, _ = Score(50, 0, 50)
	for cgpa := 0.1; cgpa <= 10.0; cgpa += 0.1 {
		p, _ := Score(50, cgpa, 50)
		assert.LessOrEqual(t, p, prev, fmt.Sprintf("cgpa=%.1f", cgpa))
		prev = p
	}

	prev, _ = Score(50, 5, 0)
	for assignments := 1; assignments <= 100; assignments++ {
		p, _ := Score(50, 5, assignments)
		assert.LessOrEqual(t, p, prev, fmt.Sprintf("assignments=%d", assignments))
		prev = p
	}
}
