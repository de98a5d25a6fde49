// Package risk implements the dropout-risk scoring model.
//
// The model is a fixed-weight linear formula over three raw metrics. It is
// deliberately a pure, allocation-free function so the exact same arithmetic
// serves both the persistence path (record creation) and the live preview
// endpoint — the two call sites share this single implementation and cannot
// drift apart.
package risk

import (
	"math"

	"github.com/edusight/dropsight-backend/internal/model"
)

// Factor weights. Attendance and academic standing matter twice as much as
// assignment diligence.
const (
	weightAttendance  = 0.4
	weightCGPA        = 0.4
	weightAssignments = 0.2
)

// Tier cutoffs, inclusive on the upper side.
const (
	highThreshold   = 70
	mediumThreshold = 30
)

// Score derives the dropout probability (0–100) and risk tier from raw
// metrics: attendance percentage [0,100], CGPA on a 10-point scale [0,10]
// and assignment completion percentage [0,100].
//
// Each factor contributes its shortfall from 100, weighted by importance.
// The result is rounded half away from zero (math.Round). Inputs are
// defensively clamped to their declared ranges; callers are still expected
// to validate and reject out-of-range input at the boundary.
func Score(attendance int, cgpa float64, assignmentCompletion int) (int, model.RiskTier) {
	att := clampInt(attendance, 0, 100)
	asg := clampInt(assignmentCompletion, 0, 100)
	normalizedCGPA := clampFloat(cgpa, 0, 10) / 10 * 100

	weighted := float64(100-att)*weightAttendance +
		(100-normalizedCGPA)*weightCGPA +
		float64(100-asg)*weightAssignments

	probability := int(math.Round(clampFloat(weighted, 0, 100)))

	return probability, tierFor(probability)
}

// tierFor maps a probability to its tier. First match wins.
func tierFor(probability int) model.RiskTier {
	switch {
	case probability >= highThreshold:
		return model.RiskHigh
	case probability >= mediumThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
