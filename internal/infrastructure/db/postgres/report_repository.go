package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

// ReportRepository persists weekly teaching reports.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, int, error) {
	offset := filter.Offset()
	where := ` WHERE 1=1`
	args := []any{}

	if filter.LecturerID != 0 {
		args = append(args, filter.LecturerID)
		where += fmt.Sprintf(" AND r.lecturer_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(` AND (c.course_name ILIKE $%d OR c.course_code ILIKE $%d
			OR u.name ILIKE $%d OR r.topic_taught ILIKE $%d OR cl.class_name ILIKE $%d)`,
			n, n, n, n, n)
	}

	const joins = `
		FROM reports r
		LEFT JOIN courses c ON r.course_id = c.id
		LEFT JOIN users u ON r.lecturer_id = u.id
		LEFT JOIN classes cl ON r.class_id = cl.id`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+joins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	args = append(args, filter.Limit, offset)
	query := `SELECT r.id, r.faculty_name, r.class_id, r.week_of_reporting,
			r.date_of_lecture, r.course_id, r.lecturer_id,
			r.actual_students_present, COALESCE(r.total_registered_students, 0),
			COALESCE(r.venue, ''), COALESCE(r.scheduled_lecture_time, ''),
			r.topic_taught, r.learning_outcomes, COALESCE(r.recommendations, ''),
			r.created_at,
			COALESCE(c.course_code, ''), COALESCE(c.course_name, ''),
			COALESCE(u.name, ''), COALESCE(cl.class_name, '')` +
		joins + where +
		fmt.Sprintf(` ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]domain.Report, 0, filter.Limit)
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(&rep.ID, &rep.FacultyName, &rep.ClassID, &rep.WeekOfReporting,
			&rep.DateOfLecture, &rep.CourseID, &rep.LecturerID,
			&rep.ActualStudentsPresent, &rep.TotalRegisteredStudents,
			&rep.Venue, &rep.ScheduledLectureTime,
			&rep.TopicTaught, &rep.LearningOutcomes, &rep.Recommendations,
			&rep.CreatedAt,
			&rep.CourseCode, &rep.CourseName,
			&rep.LecturerName, &rep.ClassName); err != nil {
			return nil, 0, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, total, rows.Err()
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO reports (
			faculty_name, class_id, week_of_reporting, date_of_lecture, course_id,
			lecturer_id, actual_students_present, total_registered_students,
			venue, scheduled_lecture_time, topic_taught, learning_outcomes, recommendations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		report.FacultyName, report.ClassID, report.WeekOfReporting,
		report.DateOfLecture, report.CourseID, report.LecturerID,
		report.ActualStudentsPresent, report.TotalRegisteredStudents,
		report.Venue, report.ScheduledLectureTime, report.TopicTaught,
		report.LearningOutcomes, report.Recommendations,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	return id, nil
}
