package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/limkokwing/luct-reporting/internal/api/middleware"
	"github.com/limkokwing/luct-reporting/internal/core/domain"
	"github.com/limkokwing/luct-reporting/internal/core/ports"
)

// CatalogHandler serves courses, classes, and course ratings.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type createCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
	Faculty    string `json:"faculty,omitempty"`
}

type createRatingRequest struct {
	CourseID int64  `json:"course_id" validate:"required"`
	Score    int    `json:"score" validate:"required,min=1,max=5"`
	Comment  string `json:"comment,omitempty"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// Courses handles GET /api/courses.
func (h *CatalogHandler) Courses(c echo.Context) error {
	courses, err := h.service.Courses(c.Request().Context())
	if err != nil {
		return err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return c.JSON(http.StatusOK, map[string][]domain.Course{"courses": courses})
}

// CreateCourse handles POST /api/courses. Program leader only.
func (h *CatalogHandler) CreateCourse(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.CreateCourse(c.Request().Context(), caller, ports.CreateCourseInput{
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		Faculty:    req.Faculty,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "Course created successfully", ID: id})
}

// Classes handles GET /api/classes. Lecturers see only their own classes.
func (h *CatalogHandler) Classes(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	classes, err := h.service.Classes(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	if classes == nil {
		classes = []domain.Class{}
	}
	return c.JSON(http.StatusOK, map[string][]domain.Class{"classes": classes})
}

// Ratings handles GET /api/ratings.
func (h *CatalogHandler) Ratings(c echo.Context) error {
	ratings, err := h.service.Ratings(c.Request().Context())
	if err != nil {
		return err
	}
	if ratings == nil {
		ratings = []domain.Rating{}
	}
	return c.JSON(http.StatusOK, map[string][]domain.Rating{"ratings": ratings})
}

// CreateRating handles POST /api/ratings. Student only.
func (h *CatalogHandler) CreateRating(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.CreateRating(c.Request().Context(), caller, ports.CreateRatingInput{
		CourseID: req.CourseID,
		Score:    req.Score,
		Comment:  req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "Rating submitted successfully", ID: id})
}
