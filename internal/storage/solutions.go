package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxSolutions caps the history: appends beyond it evict the oldest
// records.
const MaxSolutions = 1000

// Solution is one solve-history record.
type Solution struct {
	SolutionID      string
	OriginalState   string
	Solution        string
	MoveCount       int
	ExecutionTimeMs int64
	CreatedAt       time.Time
}

// SolutionRepository provides access to the solve history.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a repository over an open database.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Append stores a new record and trims the history to the most recent
// MaxSolutions entries. It returns the new record's ID.
func (r *SolutionRepository) Append(originalState, solution string, moveCount int, executionTime time.Duration) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solutions (solution_id, original_state, solution, move_count, execution_time_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, originalState, solution, moveCount, executionTime.Milliseconds(), createdAt.Format(time.RFC3339Nano))

	if err != nil {
		return "", fmt.Errorf("failed to append solution: %w", err)
	}

	// Keep only the newest MaxSolutions rows.
	_, err = r.db.Exec(`
		DELETE FROM solutions WHERE solution_id NOT IN (
			SELECT solution_id FROM solutions
			ORDER BY created_at DESC, rowid DESC
			LIMIT ?
		)
	`, MaxSolutions)
	if err != nil {
		return "", fmt.Errorf("failed to trim solution history: %w", err)
	}

	return id, nil
}

// Recent returns up to limit records, newest first.
func (r *SolutionRepository) Recent(limit int) ([]Solution, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(`
		SELECT solution_id, original_state, solution, move_count, execution_time_ms, created_at
		FROM solutions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query solutions: %w", err)
	}
	defer rows.Close()

	var solutions []Solution
	for rows.Next() {
		var s Solution
		var createdAt string
		if err := rows.Scan(&s.SolutionID, &s.OriginalState, &s.Solution, &s.MoveCount, &s.ExecutionTimeMs, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		solutions = append(solutions, s)
	}
	return solutions, rows.Err()
}

// Count returns the number of stored records.
func (r *SolutionRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM solutions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count solutions: %w", err)
	}
	return count, nil
}

// Clear deletes the whole history and returns how many records were
// removed.
func (r *SolutionRepository) Clear() (int, error) {
	result, err := r.db.Exec("DELETE FROM solutions")
	if err != nil {
		return 0, fmt.Errorf("failed to clear solutions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared solutions: %w", err)
	}
	return int(n), nil
}
