package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/edusight/dropsight-backend/internal/config"
	"github.com/edusight/dropsight-backend/internal/database"
	"github.com/edusight/dropsight-backend/internal/logger"
	"github.com/edusight/dropsight-backend/internal/model"
	"github.com/edusight/dropsight-backend/internal/repository"
	"github.com/edusight/dropsight-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	studentRepo := repository.NewStudentRepository(pool)
	studentService := service.NewStudentService(studentRepo, rdb, cfg.SummaryCacheTTL, log)

	names := []string{
		"Aarav Sharma", "Priya Patel", "Rohan Mehta", "Ananya Iyer", "Vikram Singh",
		"Sneha Reddy", "Arjun Nair", "Kavya Menon", "Rahul Verma", "Ishita Desai",
		"Karan Kapoor", "Meera Joshi", "Aditya Rao", "Divya Pillai", "Nikhil Gupta",
		"Pooja Kulkarni", "Siddharth Bose", "Riya Chatterjee", "Manish Tiwari", "Tanvi Shah",
		"Harsh Agarwal", "Neha Bhatt", "Varun Malhotra", "Shreya Saxena", "Amit Chauhan",
	}

	fmt.Printf("=== Seeding %d Students ===\n", len(names))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for _, name := range names {
		// Spread metrics across the range so every tier shows up.
		attendance := rng.Intn(101)
		cgpa := float64(rng.Intn(101)) / 10
		assignments := rng.Intn(101)

		req := &model.CreateStudentRequest{
			Name:                 name,
			Attendance:           &attendance,
			CGPA:                 &cgpa,
			AssignmentCompletion: &assignments,
		}

		student, err := studentService.Create(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to seed student")
			continue
		}
		created++
		fmt.Printf("  %-22s attendance=%3d cgpa=%4.1f assignments=%3d -> %3d%% %s\n",
			student.Name, student.Attendance, student.CGPA, student.AssignmentCompletion,
			student.DropoutProbability, student.RiskTier)
	}

	fmt.Printf("=== Done: %d/%d students created ===\n", created, len(names))
}
