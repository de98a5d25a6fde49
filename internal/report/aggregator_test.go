package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusight/dropsight-backend/internal/model"
)

func makeStudent(name string, probability int, tier model.RiskTier) model.Student {
	return model.Student{
		ID:                 uuid.New(),
		Name:               name,
		DropoutProbability: probability,
		RiskTier:           tier,
	}
}

func TestFilter(t *testing.T) {
	records := []model.Student{
		makeStudent("Alice Johnson", 10, model.RiskLow),
		makeStudent("alicia keys", 80, model.RiskHigh),
		makeStudent("Bob Stone", 45, model.RiskMedium),
	}

	t.Run("case-insensitive substring on name", func(t *testing.T) {
		got := Filter(records, "ALIC", "")
		require.Len(t, got, 2)
		assert.Equal(t, "Alice Johnson", got[0].Name)
		assert.Equal(t, "alicia keys", got[1].Name)
	})

	t.Run("tier filter", func(t *testing.T) {
		got := Filter(records, "", model.RiskHigh)
		require.Len(t, got, 1)
		assert.Equal(t, "alicia keys", got[0].Name)
	})

	t.Run("search and tier are AND-combined", func(t *testing.T) {
		got := Filter(records, "alic", model.RiskLow)
		require.Len(t, got, 1)
		assert.Equal(t, "Alice Johnson", got[0].Name)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := Filter(nil, "x", model.RiskHigh)
		assert.Empty(t, got)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		Filter(records, "bob", "")
		assert.Equal(t, "Alice Johnson", records[0].Name)
		assert.Len(t, records, 3)
	})
}

func TestSortByName(t *testing.T) {
	records := []model.Student{
		makeStudent("charlie", 0, model.RiskLow),
		makeStudent("Bob", 0, model.RiskLow),
		makeStudent("alice", 0, model.RiskLow),
	}

	got, err := Sort(records, SortByName, Asc)
	require.NoError(t, err)

	// Case-insensitive collation: "Bob" sorts between "alice" and
	// "charlie", not before them by byte value.
	assert.Equal(t, "alice", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)
	assert.Equal(t, "charlie", got[2].Name)
}

func TestSortByRiskTierOrdinal(t *testing.T) {
	records := []model.Student{
		makeStudent("low", 10, model.RiskLow),
		makeStudent("high", 90, model.RiskHigh),
		makeStudent("medium", 50, model.RiskMedium),
	}

	got, err := Sort(records, SortByRiskTier, Desc)
	require.NoError(t, err)

	assert.Equal(t, model.RiskHigh, got[0].RiskTier)
	assert.Equal(t, model.RiskMedium, got[1].RiskTier)
	assert.Equal(t, model.RiskLow, got[2].RiskTier)
}

func TestSortIsStable(t *testing.T) {
	// All records share the same probability; order must survive the sort
	// and repeat sorts must be identical.
	records := []model.Student{
		makeStudent("first", 50, model.RiskMedium),
		makeStudent("second", 50, model.RiskMedium),
		makeStudent("third", 50, model.RiskMedium),
	}

	once, err := Sort(records, SortByProbability, Asc)
	require.NoError(t, err)
	twice, err := Sort(once, SortByProbability, Asc)
	require.NoError(t, err)

	assert.Equal(t, "first", once[0].Name)
	assert.Equal(t, "second", once[1].Name)
	assert.Equal(t, "third", once[2].Name)
	assert.Equal(t, once, twice)
}

func TestSortRejectsBadArguments(t *testing.T) {
	records := []model.Student{makeStudent("a", 1, model.RiskLow)}

	_, err := Sort(records, "shoe_size", Asc)
	assert.ErrorIs(t, err, ErrInvalidSortKey)

	_, err = Sort(records, SortByName, "sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestPaginate(t *testing.T) {
	records := make([]model.Student, 25)
	for i := range records {
		records[i] = makeStudent(fmt.Sprintf("student-%02d", i), i, model.RiskLow)
	}

	t.Run("full page", func(t *testing.T) {
		page, err := Paginate(records, 0, 10)
		require.NoError(t, err)
		require.Len(t, page, 10)
		assert.Equal(t, "student-00", page[0].Name)
	})

	t.Run("final partial page", func(t *testing.T) {
		page, err := Paginate(records, 2, 10)
		require.NoError(t, err)
		require.Len(t, page, 5)
		assert.Equal(t, "student-20", page[0].Name)
	})

	t.Run("past the end is empty, not an error", func(t *testing.T) {
		page, err := Paginate(records, 3, 10)
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("non-positive page size is rejected", func(t *testing.T) {
		_, err := Paginate(records, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("negative page index is rejected", func(t *testing.T) {
		_, err := Paginate(records, -1, 10)
		assert.ErrorIs(t, err, ErrInvalidPageIndex)
	})
}

func TestSummarize(t *testing.T) {
	records := []model.Student{
		makeStudent("a", 90, model.RiskHigh),
		makeStudent("b", 75, model.RiskHigh),
		makeStudent("c", 50, model.RiskMedium),
		makeStudent("d", 10, model.RiskLow),
		makeStudent("e", 5, model.RiskLow),
		makeStudent("f", 0, model.RiskLow),
	}

	sum := Summarize(records)
	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 2, sum.High)
	assert.Equal(t, 1, sum.Medium)
	assert.Equal(t, 3, sum.Low)
	assert.Equal(t, sum.Total, sum.High+sum.Medium+sum.Low)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Equal(t, Summary{}, sum)
	assert.Equal(t, sum.Total, sum.High+sum.Medium+sum.Low)
}

func TestExportRows(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	records := []model.Student{
		{Name: "middling", CGPA: 5, DropoutProbability: 50, RiskTier: model.RiskMedium, CreatedAt: createdAt},
		{Name: "thriving", CGPA: 9.5, DropoutProbability: 4, RiskTier: model.RiskLow, CreatedAt: createdAt},
		{Name: "struggling", CGPA: 2.134, DropoutProbability: 85, RiskTier: model.RiskHigh, CreatedAt: createdAt},
	}

	rows := ExportRows(records)
	require.Len(t, rows, 3)

	// Always probability-descending, whatever order the caller held.
	assert.Equal(t, "struggling", rows[0].Name)
	assert.Equal(t, "middling", rows[1].Name)
	assert.Equal(t, "thriving", rows[2].Name)

	// CGPA renders with exactly two decimals.
	assert.Equal(t, "2.13", rows[0].CGPA)
	assert.Equal(t, "5.00", rows[1].CGPA)
	assert.Equal(t, "9.50", rows[2].CGPA)

	assert.Equal(t, createdAt, rows[0].CreatedAt)

	// The input snapshot keeps its original order.
	assert.Equal(t, "middling", records[0].Name)
}

func TestExportRowsEmpty(t *testing.T) {
	assert.Empty(t, ExportRows(nil))
}
