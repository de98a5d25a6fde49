// Package export renders report aggregator output into downloadable
// documents. Renderers consume the fixed export-row projection and never
// reach back into storage.
package export

import (
	"fmt"
	"time"

	"github.com/signintech/gopdf"

	"github.com/edusight/dropsight-backend/internal/report"
)

// A4 landscape, in points.
const (
	pageWidth  = 841.89
	pageHeight = 595.28

	marginLeft   = 40.0
	marginTop    = 55.0
	marginBottom = 45.0

	rowHeight = 22.0
)

const fontName = "report"

// Table column layout: Name, Attendance %, CGPA, Assignments %,
// Dropout Risk %, Risk Level.
var columnWidths = [6]float64{230, 95, 80, 110, 115, 95}

var columnHeaders = [6]string{"Name", "Attendance %", "CGPA", "Assignments %", "Dropout Risk %", "Risk Level"}

// PDFRenderer renders the dropout risk report as a landscape A4 PDF:
// title, generated-on line, the full risk-ordered table with tier-colored
// cells, per-page footer and a closing summary block.
type PDFRenderer struct {
	fontPath string
}

// NewPDFRenderer creates a PDFRenderer using the TTF font at fontPath.
func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath}
}

// Render produces the report bytes. The rows must already be the full
// export projection (risk-ordered); the summary must come from the same
// snapshot so the footer matches the listing header.
func (r *PDFRenderer) Render(rows []report.ExportRow, summary report.Summary, generatedAt time.Time) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: pageWidth, H: pageHeight}})

	if err := pdf.AddTTFFont(fontName, r.fontPath); err != nil {
		return nil, fmt.Errorf("load report font: %w", err)
	}

	page := 1
	pdf.AddPage()

	// Title block.
	if err := pdf.SetFont(fontName, "", 20); err != nil {
		return nil, err
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, 25)
	if err := pdf.Cell(nil, "Student Dropout Risk Report"); err != nil {
		return nil, err
	}
	if err := pdf.SetFont(fontName, "", 11); err != nil {
		return nil, err
	}
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(marginLeft, 48)
	if err := pdf.Cell(nil, "Generated on: "+generatedAt.Format("Jan 2, 2006")); err != nil {
		return nil, err
	}

	y := marginTop + 15
	if err := drawHeaderRow(pdf, y); err != nil {
		return nil, err
	}
	y += rowHeight

	for i, row := range rows {
		if y+rowHeight > pageHeight-marginBottom {
			if err := drawFooter(pdf, page); err != nil {
				return nil, err
			}
			pdf.AddPage()
			page++
			y = marginTop
			if err := drawHeaderRow(pdf, y); err != nil {
				return nil, err
			}
			y += rowHeight
		}
		if err := drawDataRow(pdf, y, row, i%2 == 1); err != nil {
			return nil, err
		}
		y += rowHeight
	}

	// Summary block, on a fresh page if the table left no room.
	if y+4*rowHeight > pageHeight-marginBottom {
		if err := drawFooter(pdf, page); err != nil {
			return nil, err
		}
		pdf.AddPage()
		page++
		y = marginTop
	}
	if err := drawSummary(pdf, y+15, summary); err != nil {
		return nil, err
	}
	if err := drawFooter(pdf, page); err != nil {
		return nil, err
	}

	return pdf.GetBytesPdf(), nil
}

func drawHeaderRow(pdf *gopdf.GoPdf, y float64) error {
	if err := pdf.SetFont(fontName, "", 10); err != nil {
		return err
	}
	x := marginLeft
	for i, header := range columnHeaders {
		pdf.SetFillColor(41, 128, 185)
		pdf.RectFromUpperLeftWithStyle(x, y, columnWidths[i], rowHeight, "FD")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetXY(x, y)
		if err := pdf.CellWithOption(
			&gopdf.Rect{W: columnWidths[i], H: rowHeight},
			header,
			gopdf.CellOption{Align: gopdf.Middle | gopdf.Center},
		); err != nil {
			return err
		}
		x += columnWidths[i]
	}
	return nil
}

func drawDataRow(pdf *gopdf.GoPdf, y float64, row report.ExportRow, alternate bool) error {
	if err := pdf.SetFont(fontName, "", 9); err != nil {
		return err
	}

	// Percentages carry a trailing % in the PDF context only.
	cells := [6]string{
		row.Name,
		fmt.Sprintf("%d%%", row.Attendance),
		row.CGPA,
		fmt.Sprintf("%d%%", row.AssignmentCompletion),
		fmt.Sprintf("%d%%", row.DropoutProbability),
		string(row.RiskTier),
	}

	x := marginLeft
	for i, text := range cells {
		fill, textColor := cellColors(i, row, alternate)
		pdf.SetFillColor(fill[0], fill[1], fill[2])
		pdf.RectFromUpperLeftWithStyle(x, y, columnWidths[i], rowHeight, "FD")
		pdf.SetTextColor(textColor[0], textColor[1], textColor[2])
		pdf.SetXY(x, y)

		align := gopdf.Middle | gopdf.Center
		if i == 0 {
			align = gopdf.Middle | gopdf.Left
		}
		if err := pdf.CellWithOption(
			&gopdf.Rect{W: columnWidths[i], H: rowHeight},
			text,
			gopdf.CellOption{Align: align},
		); err != nil {
			return err
		}
		x += columnWidths[i]
	}
	return nil
}

// cellColors picks fill and text colors for a cell. The risk level column
// is color-coded by tier; other cells alternate white and light grey.
func cellColors(col int, row report.ExportRow, alternate bool) (fill, text [3]uint8) {
	if col == 5 {
		switch row.RiskTier {
		case "High":
			return [3]uint8{255, 0, 0}, [3]uint8{255, 255, 255}
		case "Medium":
			return [3]uint8{255, 165, 0}, [3]uint8{0, 0, 0}
		default:
			return [3]uint8{0, 128, 0}, [3]uint8{255, 255, 255}
		}
	}
	if alternate {
		return [3]uint8{245, 245, 245}, [3]uint8{0, 0, 0}
	}
	return [3]uint8{255, 255, 255}, [3]uint8{0, 0, 0}
}

func drawSummary(pdf *gopdf.GoPdf, y float64, summary report.Summary) error {
	if err := pdf.SetFont(fontName, "", 14); err != nil {
		return err
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	if err := pdf.Cell(nil, "Summary"); err != nil {
		return err
	}

	if err := pdf.SetFont(fontName, "", 10); err != nil {
		return err
	}
	pdf.SetXY(marginLeft, y+22)
	if err := pdf.Cell(nil, fmt.Sprintf("Total Students: %d", summary.Total)); err != nil {
		return err
	}
	pdf.SetXY(marginLeft, y+40)
	if err := pdf.Cell(nil, fmt.Sprintf("High Risk: %d", summary.High)); err != nil {
		return err
	}
	pdf.SetXY(marginLeft+130, y+40)
	if err := pdf.Cell(nil, fmt.Sprintf("Medium Risk: %d", summary.Medium)); err != nil {
		return err
	}
	pdf.SetXY(marginLeft+270, y+40)
	return pdf.Cell(nil, fmt.Sprintf("Low Risk: %d", summary.Low))
}

func drawFooter(pdf *gopdf.GoPdf, page int) error {
	if err := pdf.SetFont(fontName, "", 8); err != nil {
		return err
	}
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(marginLeft, pageHeight-25)
	return pdf.Cell(nil, fmt.Sprintf("Page %d", page))
}
