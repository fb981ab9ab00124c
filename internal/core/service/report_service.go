package service

import (
	"context"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
	"github.com/limkokwing/luct-reporting/internal/core/ports"
)

// ReportService implements listing and creation of weekly teaching reports.
type ReportService struct {
	reports ports.ReportRepository
}

func NewReportService(reports ports.ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

// List returns one page of reports. Lecturers are scoped to their own
// reports regardless of the requested filter.
func (s *ReportService) List(ctx context.Context, caller *domain.User, filter domain.ReportFilter) (*ports.ReportPage, error) {
	if caller.Role == domain.RoleLecturer {
		filter.LecturerID = caller.ID
	}
	filter.Offset()

	reports, total, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / filter.Limit
	if total%filter.Limit != 0 {
		totalPages++
	}

	return &ports.ReportPage{
		Reports:    reports,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages,
	}, nil
}

// Create files a new report owned by the calling lecturer.
func (s *ReportService) Create(ctx context.Context, caller *domain.User, in ports.CreateReportInput) (int64, error) {
	faculty := in.FacultyName
	if faculty == "" {
		faculty = domain.DefaultFaculty
	}

	report := &domain.Report{
		FacultyName:             faculty,
		ClassID:                 in.ClassID,
		WeekOfReporting:         in.WeekOfReporting,
		DateOfLecture:           in.DateOfLecture,
		CourseID:                in.CourseID,
		LecturerID:              caller.ID,
		ActualStudentsPresent:   in.ActualStudentsPresent,
		TotalRegisteredStudents: in.TotalRegisteredStudents,
		Venue:                   in.Venue,
		ScheduledLectureTime:    in.ScheduledLectureTime,
		TopicTaught:             in.TopicTaught,
		LearningOutcomes:        in.LearningOutcomes,
		Recommendations:         in.Recommendations,
	}

	return s.reports.Create(ctx, report)
}
