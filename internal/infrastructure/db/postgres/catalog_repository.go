package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

// CatalogRepository persists courses, classes, and course ratings.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.course_code, c.course_name, COALESCE(c.faculty, ''),
			COALESCE(c.program_leader_id, 0), c.created_at, COALESCE(u.name, '')
		 FROM courses c
		 LEFT JOIN users u ON c.program_leader_id = u.id
		 ORDER BY c.course_code`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.CourseCode, &c.CourseName, &c.Faculty,
			&c.ProgramLeaderID, &c.CreatedAt, &c.ProgramLeaderName); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *CatalogRepository) CreateCourse(ctx context.Context, course *domain.Course) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (course_code, course_name, faculty, program_leader_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		course.CourseCode, course.CourseName, course.Faculty, course.ProgramLeaderID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert course: %w", err)
	}
	return id, nil
}

func (r *CatalogRepository) ListClasses(ctx context.Context, lecturerID int64) ([]domain.Class, error) {
	query := `SELECT c.id, c.class_name, c.course_id, c.lecturer_id,
			COALESCE(c.venue, ''), COALESCE(c.scheduled_day, ''), c.created_at,
			COALESCE(co.course_code, ''), COALESCE(co.course_name, ''),
			COALESCE(u.name, '')
		 FROM classes c
		 LEFT JOIN courses co ON c.course_id = co.id
		 LEFT JOIN users u ON c.lecturer_id = u.id`
	args := []any{}
	if lecturerID != 0 {
		query += ` WHERE c.lecturer_id = $1`
		args = append(args, lecturerID)
	}
	query += ` ORDER BY c.class_name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []domain.Class
	for rows.Next() {
		var c domain.Class
		if err := rows.Scan(&c.ID, &c.ClassName, &c.CourseID, &c.LecturerID,
			&c.Venue, &c.ScheduledDay, &c.CreatedAt,
			&c.CourseCode, &c.CourseName, &c.LecturerName); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func (r *CatalogRepository) ListRatings(ctx context.Context) ([]domain.Rating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.id, r.user_id, r.course_id, r.score, COALESCE(r.comment, ''),
			r.created_at, COALESCE(u.name, '')
		 FROM ratings r
		 JOIN users u ON r.user_id = u.id
		 ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.CourseID, &rt.Score,
			&rt.Comment, &rt.CreatedAt, &rt.UserName); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

func (r *CatalogRepository) CreateRating(ctx context.Context, rating *domain.Rating) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO ratings (user_id, course_id, score, comment)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		rating.UserID, rating.CourseID, rating.Score, rating.Comment,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert rating: %w", err)
	}
	return id, nil
}
