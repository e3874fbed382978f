// Package library stores the user's exercise collection in SQLite.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/hollandre/fitscan/internal/domain"
	"github.com/hollandre/fitscan/internal/ports"
)

const createExercisesTable = `
CREATE TABLE IF NOT EXISTS exercises (
	name TEXT NOT NULL,
	name_key TEXT NOT NULL,
	source_key TEXT NOT NULL,
	start_time REAL NOT NULL,
	end_time REAL NOT NULL,
	description TEXT NOT NULL,
	muscle_groups TEXT,
	equipment TEXT,
	difficulty TEXT,
	added_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (name_key, source_key, start_time, end_time)
);
`

// Store is a SQLite-backed exercise library.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open library db: %w", err)
	}

	if _, err := db.Exec(createExercisesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate library db: %w", err)
	}

	return &Store{db: db}, nil
}

// Add inserts an exercise unless an entry with the same dedup key exists.
// Names are normalized so "Goblet Squat" and " goblet squat " collide.
func (s *Store) Add(ctx context.Context, ex domain.Exercise) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO exercises
		 (name, name_key, source_key, start_time, end_time, description, muscle_groups, equipment, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(ex.Name), normalizeName(ex.Name), ex.SourceKey, ex.StartTime, ex.EndTime,
		ex.Description, marshalGroups(ex.MuscleGroups), ex.Equipment, string(ex.Difficulty),
	)
	if err != nil {
		return false, fmt.Errorf("library add: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("library add: %w", err)
	}
	return affected > 0, nil
}

func (s *Store) List(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, source_key, start_time, end_time, description, muscle_groups, equipment, difficulty
		 FROM exercises ORDER BY name, start_time`)
	if err != nil {
		return nil, fmt.Errorf("library list: %w", err)
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var ex domain.Exercise
		var groups, difficulty sql.NullString
		var equipment sql.NullString

		if err := rows.Scan(&ex.Name, &ex.SourceKey, &ex.StartTime, &ex.EndTime,
			&ex.Description, &groups, &equipment, &difficulty); err != nil {
			return nil, fmt.Errorf("library list: %w", err)
		}

		if groups.Valid && groups.String != "" {
			if err := json.Unmarshal([]byte(groups.String), &ex.MuscleGroups); err != nil {
				return nil, fmt.Errorf("library list: corrupt muscle groups for %s: %w", ex.Name, err)
			}
		}
		if equipment.Valid {
			ex.Equipment = equipment.String
		}
		if difficulty.Valid {
			ex.Difficulty = domain.Difficulty(difficulty.String)
		}

		exercises = append(exercises, ex)
	}

	return exercises, rows.Err()
}

func (s *Store) Remove(ctx context.Context, name string) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM exercises WHERE name_key = ?`, normalizeName(name))
	if err != nil {
		return 0, fmt.Errorf("library remove: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("library remove: %w", err)
	}
	if affected == 0 {
		return 0, domain.ErrExerciseNotFound
	}
	return int(affected), nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return 0, fmt.Errorf("library count: %w", err)
	}
	return count, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func marshalGroups(groups []string) string {
	if len(groups) == 0 {
		return ""
	}
	data, _ := json.Marshal(groups)
	return string(data)
}

var _ ports.ExerciseLibrary = (*Store)(nil)
