package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/limkokwing/luct-reporting/internal/api/metrics"
	"github.com/limkokwing/luct-reporting/internal/api/middleware"
	"github.com/limkokwing/luct-reporting/internal/core/domain"
	"github.com/limkokwing/luct-reporting/internal/core/ports"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/db/redis"
)

// ReportHandler handles HTTP requests for weekly teaching reports.
type ReportHandler struct {
	service ports.ReportService
	// dedup is nil when Redis is not configured; idempotency checks are
	// then skipped entirely.
	dedup *redis.DedupChecker
	log   zerolog.Logger
}

func NewReportHandler(service ports.ReportService, dedup *redis.DedupChecker, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{service: service, dedup: dedup, log: log}
}

type createReportRequest struct {
	FacultyName             string `json:"faculty_name,omitempty"`
	ClassID                 int64  `json:"class_id" validate:"required"`
	WeekOfReporting         string `json:"week_of_reporting" validate:"required"`
	DateOfLecture           string `json:"date_of_lecture" validate:"required,datetime=2006-01-02"`
	CourseID                int64  `json:"course_id" validate:"required"`
	ActualStudentsPresent   int    `json:"actual_students_present" validate:"gte=0"`
	TotalRegisteredStudents int    `json:"total_registered_students,omitempty"`
	Venue                   string `json:"venue,omitempty"`
	ScheduledLectureTime    string `json:"scheduled_lecture_time,omitempty"`
	TopicTaught             string `json:"topic_taught" validate:"required"`
	LearningOutcomes        string `json:"learning_outcomes" validate:"required"`
	Recommendations         string `json:"recommendations,omitempty"`
}

type createReportResponse struct {
	Message  string `json:"message"`
	ReportID int64  `json:"reportId"`
}

type listReportsResponse struct {
	Reports    []domain.Report `json:"reports"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// List handles GET /api/reports with search and pagination.
//
// @Summary      List weekly reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Matches course, lecturer, topic, or class"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Success      200     {object}  listReportsResponse
// @Failure      401     {object}  map[string]string
// @Router       /api/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	pageResult, err := h.service.List(c.Request().Context(), caller, domain.ReportFilter{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listReportsResponse{
		Reports:    pageResult.Reports,
		Total:      pageResult.Total,
		Page:       pageResult.Page,
		TotalPages: pageResult.TotalPages,
	})
}

// Create handles POST /api/reports. Lecturer only; an optional
// Idempotency-Key header suppresses duplicate submissions when Redis is
// available.
//
// @Summary      File a weekly report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string               false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createReportRequest  true   "Report details"
// @Success      201              {object}  createReportResponse
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	idemKey := c.Request().Header.Get("Idempotency-Key")
	if h.dedup != nil && idemKey != "" {
		dup, err := h.dedup.IsDuplicate(c.Request().Context(), caller.ID, idemKey)
		if err != nil {
			// Dedup is best effort; a Redis hiccup must not block filing.
			h.log.Warn().Err(err).Msg("idempotency check failed, continuing")
		} else if dup {
			metrics.ReportDedupTotal.WithLabelValues("hit").Inc()
			return echo.NewHTTPError(http.StatusConflict, "report already submitted")
		} else {
			metrics.ReportDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	id, err := h.service.Create(c.Request().Context(), caller, ports.CreateReportInput{
		FacultyName:             req.FacultyName,
		ClassID:                 req.ClassID,
		WeekOfReporting:         req.WeekOfReporting,
		DateOfLecture:           req.DateOfLecture,
		CourseID:                req.CourseID,
		ActualStudentsPresent:   req.ActualStudentsPresent,
		TotalRegisteredStudents: req.TotalRegisteredStudents,
		Venue:                   req.Venue,
		ScheduledLectureTime:    req.ScheduledLectureTime,
		TopicTaught:             req.TopicTaught,
		LearningOutcomes:        req.LearningOutcomes,
		Recommendations:         req.Recommendations,
	})
	if err != nil {
		return err
	}

	if h.dedup != nil && idemKey != "" {
		if err := h.dedup.Mark(c.Request().Context(), caller.ID, idemKey); err != nil {
			h.log.Warn().Err(err).Msg("idempotency mark failed")
		}
	}

	metrics.ReportsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createReportResponse{
		Message:  "Report created successfully",
		ReportID: id,
	})
}
