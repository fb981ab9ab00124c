package ports

import (
	"context"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

type CreateCourseInput struct {
	CourseCode string
	CourseName string
	Faculty    string
}

type CreateRatingInput struct {
	CourseID int64
	Score    int
	Comment  string
}

type CatalogService interface {
	Courses(ctx context.Context) ([]domain.Course, error)
	CreateCourse(ctx context.Context, caller *domain.User, in CreateCourseInput) (int64, error)
	Classes(ctx context.Context, caller *domain.User) ([]domain.Class, error)
	Ratings(ctx context.Context) ([]domain.Rating, error)
	CreateRating(ctx context.Context, caller *domain.User, in CreateRatingInput) (int64, error)
}
