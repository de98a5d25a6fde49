package model

import (
	"time"

	"github.com/google/uuid"
)

// RiskTier is the discrete dropout-risk category derived from the
// dropout probability.
type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

// Ordinal maps a tier to its sort rank (High outranks Medium outranks Low).
// Used only for ordering, never inside the scoring formula.
func (t RiskTier) Ordinal() int {
	switch t {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether t is one of the three known tiers.
func (t RiskTier) Valid() bool {
	return t == RiskLow || t == RiskMedium || t == RiskHigh
}

// Student represents a student record with its derived risk fields.
// DropoutProbability and RiskTier are computed from the three raw metrics
// at creation time and are never settable by the caller.
type Student struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Attendance           int       `json:"attendance"`
	CGPA                 float64   `json:"cgpa"`
	AssignmentCompletion int       `json:"assignment_completion"`
	DropoutProbability   int       `json:"dropout_probability"`
	RiskTier             RiskTier  `json:"risk_tier"`
	CreatedAt            time.Time `json:"created_at"`
}

// CreateStudentRequest is the payload for creating a new student record.
// Metric fields are pointers so a legitimate zero passes the required check.
type CreateStudentRequest struct {
	Name                 string   `json:"name" binding:"required,min=1,max=100"`
	Attendance           *int     `json:"attendance" binding:"required,min=0,max=100"`
	CGPA                 *float64 `json:"cgpa" binding:"required,min=0,max=10"`
	AssignmentCompletion *int     `json:"assignment_completion" binding:"required,min=0,max=100"`
}

// PreviewRiskRequest carries raw metrics for a non-persisting score preview.
type PreviewRiskRequest struct {
	Attendance           *int     `json:"attendance" binding:"required,min=0,max=100"`
	CGPA                 *float64 `json:"cgpa" binding:"required,min=0,max=10"`
	AssignmentCompletion *int     `json:"assignment_completion" binding:"required,min=0,max=100"`
}

// RiskPreview is the result of a score preview.
type RiskPreview struct {
	DropoutProbability int      `json:"dropout_probability"`
	RiskTier           RiskTier `json:"risk_tier"`
}
