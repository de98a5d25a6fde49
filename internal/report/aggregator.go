// Package report turns a snapshot of student records into listing, summary
// and export views. Every operation is pure with respect to its input: the
// snapshot is never mutated and sorted results are returned as fresh slices.
package report

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/edusight/dropsight-backend/internal/model"
)

// SortKey identifies a sortable column of the student listing.
type SortKey string

const (
	SortByName        SortKey = "name"
	SortByAttendance  SortKey = "attendance"
	SortByCGPA        SortKey = "cgpa"
	SortByAssignments SortKey = "assignment_completion"
	SortByProbability SortKey = "dropout_probability"
	SortByRiskTier    SortKey = "risk_tier"
	SortByCreatedAt   SortKey = "created_at"
)

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Aggregation contract errors. These mark caller bugs, not user conditions;
// handlers translate them to 400s at the boundary rather than defaulting.
var (
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrInvalidPageIndex = errors.New("page index must not be negative")
)

// Filter returns the records whose name contains search (case-insensitive)
// and whose tier matches the given tier. A zero tier means no tier filter.
// Both predicates are AND-combined.
func Filter(records []model.Student, search string, tier model.RiskTier) []model.Student {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Student, 0, len(records))
	for _, s := range records {
		if needle != "" && !strings.Contains(strings.ToLower(s.Name), needle) {
			continue
		}
		if tier != "" && s.RiskTier != tier {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Sort returns a copy of records ordered by the given key and direction.
// The sort is stable: records with equal keys keep their prior relative
// order, which keeps pagination reproducible across requests. Names compare
// locale-aware and case-insensitively; tiers compare by ordinal
// (High > Medium > Low).
func Sort(records []model.Student, key SortKey, dir Direction) ([]model.Student, error) {
	if dir != Asc && dir != Desc {
		return nil, ErrInvalidDirection
	}

	less, err := lessFunc(key)
	if err != nil {
		return nil, err
	}

	out := make([]model.Student, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			i, j = j, i
		}
		return less(out[i], out[j])
	})
	return out, nil
}

// lessFunc builds the ascending comparison for a sort key.
func lessFunc(key SortKey) (func(a, b model.Student) bool, error) {
	switch key {
	case SortByName:
		// collate.Collator carries internal buffers and is not safe for
		// concurrent use, so each sort gets its own.
		c := collate.New(language.English, collate.IgnoreCase)
		return func(a, b model.Student) bool {
			return c.CompareString(a.Name, b.Name) < 0
		}, nil
	case SortByAttendance:
		return func(a, b model.Student) bool { return a.Attendance < b.Attendance }, nil
	case SortByCGPA:
		return func(a, b model.Student) bool { return a.CGPA < b.CGPA }, nil
	case SortByAssignments:
		return func(a, b model.Student) bool { return a.AssignmentCompletion < b.AssignmentCompletion }, nil
	case SortByProbability:
		return func(a, b model.Student) bool { return a.DropoutProbability < b.DropoutProbability }, nil
	case SortByRiskTier:
		return func(a, b model.Student) bool { return a.RiskTier.Ordinal() < b.RiskTier.Ordinal() }, nil
	case SortByCreatedAt:
		return func(a, b model.Student) bool { return a.CreatedAt.Before(b.CreatedAt) }, nil
	default:
		return nil, ErrInvalidSortKey
	}
}

// Paginate slices out page pageIndex (zero-based) of pageSize records,
// clamped to the available length. A page index past the end yields an
// empty slice, not an error.
func Paginate(records []model.Student, pageIndex, pageSize int) ([]model.Student, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	if pageIndex < 0 {
		return nil, ErrInvalidPageIndex
	}

	start := pageIndex * pageSize
	if start >= len(records) {
		return []model.Student{}, nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	out := make([]model.Student, end-start)
	copy(out, records[start:end])
	return out, nil
}

// Summary holds tier counts for a snapshot. Total always equals
// High + Medium + Low.
type Summary struct {
	Total  int `json:"total"`
	High   int `json:"high_count"`
	Medium int `json:"medium_count"`
	Low    int `json:"low_count"`
}

// Summarize counts records per tier. Empty input yields a zeroed summary.
func Summarize(records []model.Student) Summary {
	var sum Summary
	sum.Total = len(records)
	for _, s := range records {
		switch s.RiskTier {
		case model.RiskHigh:
			sum.High++
		case model.RiskMedium:
			sum.Medium++
		case model.RiskLow:
			sum.Low++
		}
	}
	return sum
}

// ExportRow is the flat projection of a record consumed by the PDF and
// spreadsheet renderers. CGPA is pre-formatted to exactly two decimals;
// CreatedAt feeds the spreadsheet's Date Added column only.
type ExportRow struct {
	Name                 string
	Attendance           int
	CGPA                 string
	AssignmentCompletion int
	DropoutProbability   int
	RiskTier             model.RiskTier
	CreatedAt            time.Time
}

// ExportRows projects records into export rows ordered by dropout
// probability descending. Reports are a full risk-ordered snapshot: the
// ordering is imposed here regardless of any filter or sort state the
// caller had applied on screen.
func ExportRows(records []model.Student) []ExportRow {
	ordered := make([]model.Student, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DropoutProbability > ordered[j].DropoutProbability
	})

	rows := make([]ExportRow, len(ordered))
	for i, s := range ordered {
		rows[i] = ExportRow{
			Name:                 s.Name,
			Attendance:           s.Attendance,
			CGPA:                 strconv.FormatFloat(s.CGPA, 'f', 2, 64),
			AssignmentCompletion: s.AssignmentCompletion,
			DropoutProbability:   s.DropoutProbability,
			RiskTier:             s.RiskTier,
			CreatedAt:            s.CreatedAt,
		}
	}
	return rows
}
