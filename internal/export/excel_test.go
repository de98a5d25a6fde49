package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edusight/dropsight-backend/internal/report"
)

func TestRenderExcel(t *testing.T) {
	rows := []report.ExportRow{
		{
			Name:                 "Priya Patel",
			Attendance:           42,
			CGPA:                 "3.80",
			AssignmentCompletion: 55,
			DropoutProbability:   57,
			RiskTier:             "Medium",
			CreatedAt:            time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC),
		},
		{
			Name:                 "Aarav Sharma",
			Attendance:           95,
			CGPA:                 "8.75",
			AssignmentCompletion: 90,
			DropoutProbability:   9,
			RiskTier:             "Low",
			CreatedAt:            time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC),
		},
	}

	data, err := RenderExcel(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(ExcelSheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t,
		[]string{"Name", "Attendance %", "CGPA", "Assignments %", "Dropout Risk %", "Risk Level", "Date Added"},
		got[0])

	assert.Equal(t, []string{"Priya Patel", "42", "3.80", "55", "57", "Medium", "2/3/2026"}, got[1])
	assert.Equal(t, []string{"Aarav Sharma", "95", "8.75", "90", "9", "Low", "2/4/2026"}, got[2])
}

func TestRenderExcelEmptySnapshot(t *testing.T) {
	data, err := RenderExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(ExcelSheetName)
	require.NoError(t, err)
	require.Len(t, got, 1) // header only
}
