// --- lightwork-server/db/db.go ---
package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"lightwork-server/models"
)

// InitDB initializes the PostgreSQL database connection pool
func InitDB(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Ping the database to verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL database!")
	return pool, nil
}

// CreateSchema sets up the completion log table.
func CreateSchema(pool *pgxpool.Pool) error {
	schemaSQL := `
	CREATE TABLE IF NOT EXISTS quiz_completions (
		id SERIAL PRIMARY KEY,
		session_id UUID NOT NULL UNIQUE,
		score INT NOT NULL CHECK (score >= 0),
		total INT NOT NULL CHECK (total > 0 AND score <= total),
		band VARCHAR(32) NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_quiz_completions_band ON quiz_completions (band);
	`
	if _, err := pool.Exec(context.Background(), schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Println("Database schema ensured.")
	return nil
}

// Recorder writes anonymous quiz completions to PostgreSQL.
type Recorder struct {
	pool *pgxpool.Pool
}

// NewRecorder returns a Recorder backed by pool.
func NewRecorder(pool *pgxpool.Pool) *Recorder {
	return &Recorder{pool: pool}
}

// RecordCompletion stores one finished session. A session id is recorded once;
// replays of the same completion are ignored.
func (r *Recorder) RecordCompletion(ctx context.Context, sessionID string, score, total int, band string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO quiz_completions (session_id, score, total, band)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id) DO NOTHING
	`, sessionID, score, total, band)
	if err != nil {
		return fmt.Errorf("failed to record completion for session %s: %w", sessionID, err)
	}
	return nil
}

// CompletionStats aggregates the completion log.
func (r *Recorder) CompletionStats(ctx context.Context) (*models.CompletionStats, error) {
	stats := &models.CompletionStats{ByBand: make(map[string]int)}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(score), 0)::float8 FROM quiz_completions
	`).Scan(&stats.Total, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to query completion totals: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT band, COUNT(*) FROM quiz_completions GROUP BY band`)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions by band: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var band string
		var count int
		if err := rows.Scan(&band, &count); err != nil {
			return nil, fmt.Errorf("failed to scan band count: %w", err)
		}
		stats.ByBand[band] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading band counts: %w", err)
	}
	return stats, nil
}

// LogRecorder is used when no database is configured. It only logs.
type LogRecorder struct{}

// RecordCompletion logs the completion.
func (LogRecorder) RecordCompletion(_ context.Context, sessionID string, score, total int, band string) error {
	log.Printf("Quiz session %s completed: %d/%d (%s)", sessionID, score, total, band)
	return nil
}
