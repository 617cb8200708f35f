package services

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

// DashboardSvc computes the current-period financial summary.
type DashboardSvc interface {
	GetDashboard(ctx context.Context, ownerID string) (*domain.DashboardView, error)
}

// HistorySvc computes lifetime aggregates regardless of status.
type HistorySvc interface {
	GetHistory(ctx context.Context, ownerID string) (*domain.HistoryView, error)
}
