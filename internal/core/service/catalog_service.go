package service

import (
	"context"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
	"github.com/limkokwing/luct-reporting/internal/core/ports"
)

// CatalogService serves courses, classes, and course ratings.
type CatalogService struct {
	catalog ports.CatalogRepository
}

func NewCatalogService(catalog ports.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) Courses(ctx context.Context) ([]domain.Course, error) {
	return s.catalog.ListCourses(ctx)
}

// CreateCourse records a new course owned by the calling program leader.
func (s *CatalogService) CreateCourse(ctx context.Context, caller *domain.User, in ports.CreateCourseInput) (int64, error) {
	faculty := in.Faculty
	if faculty == "" {
		faculty = domain.DefaultFaculty
	}
	return s.catalog.CreateCourse(ctx, &domain.Course{
		CourseCode:      in.CourseCode,
		CourseName:      in.CourseName,
		Faculty:         faculty,
		ProgramLeaderID: caller.ID,
	})
}

// Classes lists classes visible to the caller; lecturers only see the
// classes assigned to them.
func (s *CatalogService) Classes(ctx context.Context, caller *domain.User) ([]domain.Class, error) {
	var lecturerID int64
	if caller.Role == domain.RoleLecturer {
		lecturerID = caller.ID
	}
	return s.catalog.ListClasses(ctx, lecturerID)
}

func (s *CatalogService) Ratings(ctx context.Context) ([]domain.Rating, error) {
	return s.catalog.ListRatings(ctx)
}

// CreateRating records a student's score for a course.
func (s *CatalogService) CreateRating(ctx context.Context, caller *domain.User, in ports.CreateRatingInput) (int64, error) {
	return s.catalog.CreateRating(ctx, &domain.Rating{
		UserID:   caller.ID,
		CourseID: in.CourseID,
		Score:    in.Score,
		Comment:  in.Comment,
	})
}
