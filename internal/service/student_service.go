package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edusight/dropsight-backend/internal/config"
	"github.com/edusight/dropsight-backend/internal/model"
	"github.com/edusight/dropsight-backend/internal/report"
	"github.com/edusight/dropsight-backend/internal/repository"
	"github.com/edusight/dropsight-backend/internal/risk"
)

// StudentService handles student record business logic: creation with
// derived-field computation, listing through the report aggregator, score
// previews, and the cached population summary.
type StudentService struct {
	studentRepo *repository.StudentRepository
	rdb         *redis.Client
	cacheTTL    time.Duration
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		rdb:         rdb,
		cacheTTL:    cacheTTL,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

// Create derives the dropout probability and tier from the raw metrics and
// persists the record. The derivation happens here, as an ordinary function
// call before the insert, so it is visible, testable and cannot be skipped.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	probability, tier := risk.Score(*req.Attendance, *req.CGPA, *req.AssignmentCompletion)

	student := &model.Student{
		Name:                 strings.TrimSpace(req.Name),
		Attendance:           *req.Attendance,
		CGPA:                 *req.CGPA,
		AssignmentCompletion: *req.AssignmentCompletion,
		DropoutProbability:   probability,
		RiskTier:             tier,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	// Drop the cached summary so the next read reflects the new record.
	if err := s.rdb.Del(ctx, config.CacheKeyRiskSummary).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Summary cache invalidation failed")
	}

	s.log.Info().
		Str("student_id", student.ID.String()).
		Int("dropout_probability", probability).
		Str("risk_tier", string(tier)).
		Msg("Student record created")

	return student, nil
}

// Preview runs the scoring formula over raw metrics without persisting
// anything. It calls the exact same function as Create, so the preview a
// client shows before submission can never diverge from the stored result.
func (s *StudentService) Preview(req *model.PreviewRiskRequest) model.RiskPreview {
	probability, tier := risk.Score(*req.Attendance, *req.CGPA, *req.AssignmentCompletion)
	return model.RiskPreview{DropoutProbability: probability, RiskTier: tier}
}

// ListQuery carries the listing parameters. Page is 1-based at this layer;
// the aggregator works with zero-based page indexes.
type ListQuery struct {
	Search    string
	Tier      model.RiskTier
	SortKey   report.SortKey
	Direction report.Direction
	Page      int
	PerPage   int
}

// ListResult is a page of records plus the whole-population summary and
// the filtered total used for pagination.
type ListResult struct {
	Students   []model.Student
	Summary    report.Summary
	TotalItems int
}

// List takes a fresh snapshot and runs the filter → sort → paginate
// pipeline over it. The summary always covers the full population, matching
// what the PDF report footer shows.
func (s *StudentService) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	snapshot, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := report.Filter(snapshot, q.Search, q.Tier)

	sorted, err := report.Sort(filtered, q.SortKey, q.Direction)
	if err != nil {
		return nil, err
	}

	page, err := report.Paginate(sorted, q.Page-1, q.PerPage)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Students:   page,
		Summary:    report.Summarize(snapshot),
		TotalItems: len(filtered),
	}, nil
}

// Summary returns the population tier counts, served from Redis when the
// cached copy is fresh. Cache failures degrade to a direct recompute.
func (s *StudentService) Summary(ctx context.Context) (report.Summary, error) {
	cached, err := s.rdb.Get(ctx, config.CacheKeyRiskSummary).Bytes()
	if err == nil {
		var sum report.Summary
		if err := json.Unmarshal(cached, &sum); err == nil {
			return sum, nil
		}
		s.log.Warn().Msg("Corrupt summary cache entry, recomputing")
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Msg("Summary cache read failed")
	}

	return s.RefreshSummary(ctx)
}

// RefreshSummary recomputes the summary from a fresh snapshot and rewrites
// the cache entry. Used on cache miss, at startup prewarm and by the
// summary worker.
func (s *StudentService) RefreshSummary(ctx context.Context) (report.Summary, error) {
	snapshot, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return report.Summary{}, err
	}
	sum := report.Summarize(snapshot)

	payload, err := json.Marshal(sum)
	if err != nil {
		return report.Summary{}, err
	}
	if err := s.rdb.Set(ctx, config.CacheKeyRiskSummary, payload, s.cacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Summary cache write failed")
	}
	return sum, nil
}
