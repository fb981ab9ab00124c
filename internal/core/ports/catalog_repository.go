package ports

import (
	"context"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

// CatalogRepository persists courses, classes, and course ratings.
type CatalogRepository interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
	CreateCourse(ctx context.Context, course *domain.Course) (int64, error)

	// ListClasses restricts to one lecturer's classes when lecturerID is
	// non-zero.
	ListClasses(ctx context.Context, lecturerID int64) ([]domain.Class, error)

	ListRatings(ctx context.Context) ([]domain.Rating, error)
	CreateRating(ctx context.Context, rating *domain.Rating) (int64, error)
}
