package dto

import (
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyAmounts is a per-party money split.
type PartyAmounts struct {
	Party1 decimal.Decimal `json:"party1"`
	Party2 decimal.Decimal `json:"party2"`
}

// PartyNamesResponse carries the display names of both parties.
type PartyNamesResponse struct {
	Party1 string `json:"party1"`
	Party2 string `json:"party2"`
}

// UpdatePartyNamesRequest renames both parties at once.
type UpdatePartyNamesRequest struct {
	Party1 string `json:"party1" binding:"required" validate:"required,max=100"`
	Party2 string `json:"party2" binding:"required" validate:"required,max=100"`
}

// DashboardResponse is the current-period summary.
type DashboardResponse struct {
	ActiveServicesCount int                   `json:"activeServicesCount"`
	TotalRevenue        decimal.Decimal       `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal       `json:"totalExpenses"`
	TotalProfit         decimal.Decimal       `json:"totalProfit"`
	Withdrawals         PartyAmounts          `json:"withdrawals"`
	PartNames           PartyNamesResponse    `json:"partNames"`
	Services            []ServiceResponse     `json:"services"`
	TodaysAppointments  []AppointmentResponse `json:"todaysAppointments"`
}

// HistoryResponse is the lifetime summary.
type HistoryResponse struct {
	TotalServices    int               `json:"totalServices"`
	TotalRevenue     decimal.Decimal   `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal   `json:"totalExpenses"`
	TotalBalance     decimal.Decimal   `json:"totalBalance"`
	ServicesByStatus map[string]int    `json:"servicesByStatus"`
	Services         []ServiceResponse `json:"services"`
}

func ToPartyNamesResponse(names domain.PartyNames) PartyNamesResponse {
	return PartyNamesResponse{Party1: names.Party1, Party2: names.Party2}
}

// ToDashboardResponse converts the domain view to its JSON shape.
func ToDashboardResponse(v domain.DashboardView) DashboardResponse {
	return DashboardResponse{
		ActiveServicesCount: v.ActiveServicesCount,
		TotalRevenue:        v.TotalRevenue,
		TotalExpenses:       v.TotalExpenses,
		TotalProfit:         v.TotalProfit,
		Withdrawals:         PartyAmounts{Party1: v.Withdrawals.Party1, Party2: v.Withdrawals.Party2},
		PartNames:           ToPartyNamesResponse(v.PartyNames),
		Services:            ToListServiceResponse(v.Services),
		TodaysAppointments:  ToListAppointmentResponse(v.TodaysAppointments),
	}
}

// ToHistoryResponse converts the domain view to its JSON shape.
func ToHistoryResponse(v domain.HistoryView) HistoryResponse {
	byStatus := v.ServicesByStatus
	if byStatus == nil {
		byStatus = map[string]int{}
	}
	return HistoryResponse{
		TotalServices:    v.TotalServices,
		TotalRevenue:     v.TotalRevenue,
		TotalExpenses:    v.TotalExpenses,
		TotalBalance:     v.TotalBalance,
		ServicesByStatus: byStatus,
		Services:         ToListServiceResponse(v.Services),
	}
}
