// Package memory is the fallback data source used when the database cannot
// be reached at startup. It serves one fixed identity and a small fixed
// catalogue; every write fails closed with domain.ErrStoreUnavailable. The
// dataset never changes for the lifetime of the process.
package memory

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
	"github.com/limkokwing/luct-reporting/internal/core/ports"
)

// Test identity served in mock mode. Matches the row seeded into the live
// database so the login flow behaves identically in both modes.
const (
	TestEmail    = "test@example.com"
	TestPassword = "password"
)

// Store holds the fixed dataset and hands out read-mostly views satisfying
// the repository ports.
type Store struct {
	user    domain.User
	courses []domain.Course
	classes []domain.Class
	reports []domain.Report
	ratings []domain.Rating
}

// NewStore builds the fixed dataset. The password hash is computed once at
// construction so the mock store carries no hardcoded hash material.
func NewStore() *Store {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("memory: hash test password: " + err.Error())
	}

	created := time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC)

	s := &Store{
		user: domain.User{
			ID:           1,
			Email:        TestEmail,
			Name:         "Test User",
			PasswordHash: string(hash),
			Role:         domain.RoleLecturer,
			Faculty:      domain.DefaultFaculty,
			CreatedAt:    created,
		},
	}

	s.courses = []domain.Course{{
		ID:                1,
		CourseCode:        "DIWA2110",
		CourseName:        "Web Application Development",
		Faculty:           domain.DefaultFaculty,
		ProgramLeaderID:   1,
		ProgramLeaderName: s.user.Name,
		CreatedAt:         created,
	}}

	s.classes = []domain.Class{{
		ID:           1,
		ClassName:    "BSCSM1A",
		CourseID:     1,
		LecturerID:   1,
		Venue:        "Room 101",
		ScheduledDay: "Monday",
		CourseCode:   "DIWA2110",
		CourseName:   "Web Application Development",
		LecturerName: s.user.Name,
		CreatedAt:    created,
	}}

	s.reports = []domain.Report{{
		ID:                      1,
		FacultyName:             domain.DefaultFaculty,
		ClassID:                 1,
		WeekOfReporting:         "Week 6",
		DateOfLecture:           "2024-02-05",
		CourseID:                1,
		LecturerID:              1,
		ActualStudentsPresent:   38,
		TotalRegisteredStudents: 45,
		Venue:                   "Room 101",
		ScheduledLectureTime:    "08:30",
		TopicTaught:             "HTTP middleware and request pipelines",
		LearningOutcomes:        "Students can compose middleware chains",
		CourseCode:              "DIWA2110",
		CourseName:              "Web Application Development",
		LecturerName:            s.user.Name,
		ClassName:               "BSCSM1A",
		CreatedAt:               created,
	}}

	s.ratings = []domain.Rating{{
		ID:        1,
		UserID:    1,
		CourseID:  1,
		Score:     4,
		Comment:   "Clear lectures",
		UserName:  s.user.Name,
		CreatedAt: created,
	}}

	return s
}

// Users returns the credential-store view of the dataset.
func (s *Store) Users() ports.UserRepository { return userStore{s} }

// Reports returns the report-repository view of the dataset.
func (s *Store) Reports() ports.ReportRepository { return reportStore{s} }

// Catalog returns the catalogue view of the dataset.
func (s *Store) Catalog() ports.CatalogRepository { return catalogStore{s} }

// --- UserRepository ---

type userStore struct{ s *Store }

func (v userStore) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if id != v.s.user.ID {
		return nil, domain.ErrUserNotFound
	}
	u := v.s.user
	return &u, nil
}

func (v userStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if !strings.EqualFold(strings.TrimSpace(email), v.s.user.Email) {
		return nil, domain.ErrUserNotFound
	}
	u := v.s.user
	return &u, nil
}

func (v userStore) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, domain.ErrStoreUnavailable
}

// --- ReportRepository ---

type reportStore struct{ s *Store }

func (v reportStore) List(_ context.Context, filter domain.ReportFilter) ([]domain.Report, int, error) {
	offset := filter.Offset()
	out := make([]domain.Report, 0, len(v.s.reports))
	for _, r := range v.s.reports {
		if filter.LecturerID != 0 && r.LecturerID != filter.LecturerID {
			continue
		}
		if filter.Search != "" && !matchesSearch(r, filter.Search) {
			continue
		}
		out = append(out, r)
	}

	// Page the same way the live repository does.
	total := len(out)
	if offset >= total {
		return []domain.Report{}, total, nil
	}
	end := offset + filter.Limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (v reportStore) Create(_ context.Context, _ *domain.Report) (int64, error) {
	return 0, domain.ErrStoreUnavailable
}

func matchesSearch(r domain.Report, search string) bool {
	search = strings.ToLower(search)
	for _, field := range []string{r.CourseName, r.CourseCode, r.LecturerName, r.TopicTaught, r.ClassName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// --- CatalogRepository ---

type catalogStore struct{ s *Store }

func (v catalogStore) ListCourses(_ context.Context) ([]domain.Course, error) {
	return append([]domain.Course(nil), v.s.courses...), nil
}

func (v catalogStore) CreateCourse(_ context.Context, _ *domain.Course) (int64, error) {
	return 0, domain.ErrStoreUnavailable
}

func (v catalogStore) ListClasses(_ context.Context, lecturerID int64) ([]domain.Class, error) {
	out := make([]domain.Class, 0, len(v.s.classes))
	for _, c := range v.s.classes {
		if lecturerID != 0 && c.LecturerID != lecturerID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (v catalogStore) ListRatings(_ context.Context) ([]domain.Rating, error) {
	return append([]domain.Rating(nil), v.s.ratings...), nil
}

func (v catalogStore) CreateRating(_ context.Context, _ *domain.Rating) (int64, error) {
	return 0, domain.ErrStoreUnavailable
}
