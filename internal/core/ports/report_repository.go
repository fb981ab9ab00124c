package ports

import (
	"context"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

// ReportRepository persists weekly teaching reports.
type ReportRepository interface {
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, int, error)
	Create(ctx context.Context, report *domain.Report) (int64, error)
}
