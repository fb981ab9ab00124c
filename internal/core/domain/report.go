package domain

import (
	"errors"
	"time"
)

var ErrReportNotFound = errors.New("report not found")

// Report is a weekly teaching report filed by a lecturer for one lecture.
type Report struct {
	ID                      int64     `json:"id"`
	FacultyName             string    `json:"faculty_name"`
	ClassID                 int64     `json:"class_id"`
	WeekOfReporting         string    `json:"week_of_reporting"`
	DateOfLecture           string    `json:"date_of_lecture"`
	CourseID                int64     `json:"course_id"`
	LecturerID              int64     `json:"lecturer_id"`
	ActualStudentsPresent   int       `json:"actual_students_present"`
	TotalRegisteredStudents int       `json:"total_registered_students"`
	Venue                   string    `json:"venue,omitempty"`
	ScheduledLectureTime    string    `json:"scheduled_lecture_time,omitempty"`
	TopicTaught             string    `json:"topic_taught"`
	LearningOutcomes        string    `json:"learning_outcomes"`
	Recommendations         string    `json:"recommendations,omitempty"`
	CreatedAt               time.Time `json:"created_at"`

	// Denormalised display fields populated by list queries.
	CourseCode   string `json:"course_code,omitempty"`
	CourseName   string `json:"course_name,omitempty"`
	LecturerName string `json:"lecturer_name,omitempty"`
	ClassName    string `json:"class_name,omitempty"`
}

// ReportFilter narrows a report listing.
type ReportFilter struct {
	// LecturerID restricts results to one lecturer's reports when non-zero.
	LecturerID int64
	// Search matches course name/code, lecturer name, topic, or class name.
	Search string
	Page   int
	Limit  int
}

// Offset translates page/limit into a row offset, defaulting out-of-range
// values the same way the listing endpoints document them.
func (f *ReportFilter) Offset() int {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 10
	}
	return (f.Page - 1) * f.Limit
}
