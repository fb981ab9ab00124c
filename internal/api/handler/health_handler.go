package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/limkokwing/luct-reporting/internal/infrastructure/store"
)

// HealthHandler handles GET /api/health. The reported database mode is
// fixed at startup and never re-evaluated, so repeated calls within one
// process always agree.
type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Server is running",
		Database:  h.store.Mode(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
