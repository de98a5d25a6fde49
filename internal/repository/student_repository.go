package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edusight/dropsight-backend/internal/model"
)

// StudentRepository handles student record data access. Records are
// append-only: the surface is create and list, with no in-place updates.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create inserts a new student record, derived fields included, and fills
// the store-assigned ID and creation timestamp.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (name, attendance, cgpa, assignment_completion, dropout_probability, risk_tier)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		s.Name, s.Attendance, s.CGPA, s.AssignmentCompletion, s.DropoutProbability, s.RiskTier,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListAll retrieves the full snapshot of student records, newest first.
// The aggregator imposes any caller-requested ordering on top.
func (r *StudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, attendance, cgpa, assignment_completion, dropout_probability, risk_tier, created_at
		 FROM students ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Attendance, &s.CGPA, &s.AssignmentCompletion, &s.DropoutProbability, &s.RiskTier, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
