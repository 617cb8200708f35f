package domain

import "github.com/shopspring/decimal"

// Totals is the count and sum of a set of money-bearing rows.
type Totals struct {
	Count int
	Sum   decimal.Decimal
}

// DashboardView is the current-period financial picture for one owner.
type DashboardView struct {
	ActiveServicesCount int
	TotalRevenue        decimal.Decimal
	TotalExpenses       decimal.Decimal
	TotalProfit         decimal.Decimal
	Withdrawals         PartyTotals
	PartyNames          PartyNames
	Services            []ServiceRecord
	TodaysAppointments  []Appointment
}

// HistoryView is the lifetime financial picture for one owner.
type HistoryView struct {
	TotalServices    int
	TotalRevenue     decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalBalance     decimal.Decimal
	ServicesByStatus map[string]int
	Services         []ServiceRecord
}
