package ports

import (
	"context"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

// CreateReportInput is a report submission as received from a lecturer.
type CreateReportInput struct {
	FacultyName             string
	ClassID                 int64
	WeekOfReporting         string
	DateOfLecture           string
	CourseID                int64
	ActualStudentsPresent   int
	TotalRegisteredStudents int
	Venue                   string
	ScheduledLectureTime    string
	TopicTaught             string
	LearningOutcomes        string
	Recommendations         string
}

// ReportPage is one page of a report listing.
type ReportPage struct {
	Reports    []domain.Report
	Total      int
	Page       int
	TotalPages int
}

type ReportService interface {
	// List returns reports visible to the caller; lecturers only see
	// their own.
	List(ctx context.Context, caller *domain.User, filter domain.ReportFilter) (*ReportPage, error)
	Create(ctx context.Context, caller *domain.User, in CreateReportInput) (int64, error)
}
