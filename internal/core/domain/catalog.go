package domain

import (
	"errors"
	"time"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrClassNotFound  = errors.New("class not found")
)

// Course is a unit of the teaching catalogue owned by a program leader.
type Course struct {
	ID              int64     `json:"id"`
	CourseCode      string    `json:"course_code"`
	CourseName      string    `json:"course_name"`
	Faculty         string    `json:"faculty,omitempty"`
	ProgramLeaderID int64     `json:"program_leader_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	ProgramLeaderName string `json:"program_leader_name,omitempty"`
}

// Class is a scheduled group taught by one lecturer for one course.
type Class struct {
	ID           int64     `json:"id"`
	ClassName    string    `json:"class_name"`
	CourseID     int64     `json:"course_id"`
	LecturerID   int64     `json:"lecturer_id"`
	Venue        string    `json:"venue,omitempty"`
	ScheduledDay string    `json:"scheduled_day,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	CourseCode   string `json:"course_code,omitempty"`
	CourseName   string `json:"course_name,omitempty"`
	LecturerName string `json:"lecturer_name,omitempty"`
}

// Rating is a student's score for a course.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CourseID  int64     `json:"course_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	UserName string `json:"user_name,omitempty"`
}
