package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/edusight/dropsight-backend/internal/service"
)

// SummaryWorker periodically recomputes the population risk summary and
// rewrites the Redis cache entry, keeping the listing header and summary
// endpoint warm between create-driven invalidations.
type SummaryWorker struct {
	studentService *service.StudentService
	interval       time.Duration
	log            zerolog.Logger
}

// NewSummaryWorker creates a SummaryWorker.
func NewSummaryWorker(studentService *service.StudentService, interval time.Duration, log zerolog.Logger) *SummaryWorker {
	return &SummaryWorker{
		studentService: studentService,
		interval:       interval,
		log:            log.With().Str("component", "summary_worker").Logger(),
	}
}

// Start runs the refresh loop until ctx is cancelled.
func (w *SummaryWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", w.interval).Msg("Summary worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Summary worker stopped")
			return
		case <-ticker.C:
			if _, err := w.studentService.RefreshSummary(ctx); err != nil {
				w.log.Error().Err(err).Msg("Summary refresh failed")
			}
		}
	}
}
