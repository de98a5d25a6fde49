package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/edusight/dropsight-backend/internal/report"
)

// ExcelSheetName is the single worksheet of the spreadsheet report.
const ExcelSheetName = "Students Dropout Report"

// excelHeaders matches the PDF columns plus a Date Added column sourced
// from the record creation timestamp. Percentage columns stay raw
// numerics here so the spreadsheet remains computable.
var excelHeaders = []string{"Name", "Attendance %", "CGPA", "Assignments %", "Dropout Risk %", "Risk Level", "Date Added"}

// RenderExcel produces the XLSX report bytes from the risk-ordered
// export rows.
func RenderExcel(rows []report.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExcelSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(ExcelSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Name,
			row.Attendance,
			row.CGPA,
			row.AssignmentCompletion,
			row.DropoutProbability,
			string(row.RiskTier),
			row.CreatedAt.Format("1/2/2006"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(ExcelSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
