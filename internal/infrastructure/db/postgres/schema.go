package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// The email uniqueness constraint lives here, not in application code;
// concurrent registrations with the same email race down to one winner.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'student',
		faculty TEXT,
		department TEXT,
		stream TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		course_code TEXT NOT NULL,
		course_name TEXT NOT NULL,
		faculty TEXT,
		program_leader_id BIGINT REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		class_name TEXT NOT NULL,
		course_id BIGINT NOT NULL REFERENCES courses(id),
		lecturer_id BIGINT NOT NULL REFERENCES users(id),
		venue TEXT,
		scheduled_day TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		faculty_name TEXT NOT NULL,
		class_id BIGINT NOT NULL REFERENCES classes(id),
		week_of_reporting TEXT NOT NULL,
		date_of_lecture TEXT NOT NULL,
		course_id BIGINT NOT NULL REFERENCES courses(id),
		lecturer_id BIGINT NOT NULL REFERENCES users(id),
		actual_students_present INT NOT NULL,
		total_registered_students INT,
		venue TEXT,
		scheduled_lecture_time TEXT,
		topic_taught TEXT NOT NULL,
		learning_outcomes TEXT NOT NULL,
		recommendations TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS ratings (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		course_id BIGINT NOT NULL REFERENCES courses(id),
		score INT NOT NULL,
		comment TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Bootstrap creates the schema when absent and seeds the fixed test
// identity plus a small sample catalogue on first run.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return seed(ctx, pool)
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	var existing int64
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, "test@example.com").Scan(&existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("seed check: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), 12)
	if err != nil {
		return err
	}

	var userID int64
	err = pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password, role, faculty)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		"test@example.com", "Test User", string(hash), "lecturer",
		"Faculty of Information Communication Technology",
	).Scan(&userID)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	var courseID int64
	err = pool.QueryRow(ctx,
		`INSERT INTO courses (course_code, course_name, faculty, program_leader_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		"DIWA2110", "Web Application Development",
		"Faculty of Information Communication Technology", userID,
	).Scan(&courseID)
	if err != nil {
		return fmt.Errorf("seed course: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO classes (class_name, course_id, lecturer_id, venue, scheduled_day)
		 VALUES ($1, $2, $3, $4, $5)`,
		"BSCSM1A", courseID, userID, "Room 101", "Monday",
	)
	if err != nil {
		return fmt.Errorf("seed class: %w", err)
	}

	return nil
}
