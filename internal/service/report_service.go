package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/edusight/dropsight-backend/internal/export"
	"github.com/edusight/dropsight-backend/internal/report"
	"github.com/edusight/dropsight-backend/internal/repository"
)

// ReportService builds downloadable reports. Reports are always a full,
// unfiltered snapshot ordered by dropout probability descending, no matter
// what filter or sort state the listing UI had applied.
type ReportService struct {
	studentRepo *repository.StudentRepository
	pdf         *export.PDFRenderer
	log         zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(studentRepo *repository.StudentRepository, pdf *export.PDFRenderer, log zerolog.Logger) *ReportService {
	return &ReportService{
		studentRepo: studentRepo,
		pdf:         pdf,
		log:         log.With().Str("component", "report_service").Logger(),
	}
}

// BuildPDF renders the PDF report from a fresh snapshot.
func (s *ReportService) BuildPDF(ctx context.Context) ([]byte, error) {
	snapshot, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.pdf.Render(report.ExportRows(snapshot), report.Summarize(snapshot), time.Now())
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("students", len(snapshot)).Int("bytes", len(data)).Msg("PDF report generated")
	return data, nil
}

// BuildExcel renders the XLSX report from a fresh snapshot.
func (s *ReportService) BuildExcel(ctx context.Context) ([]byte, error) {
	snapshot, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := export.RenderExcel(report.ExportRows(snapshot))
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("students", len(snapshot)).Int("bytes", len(data)).Msg("Excel report generated")
	return data, nil
}
