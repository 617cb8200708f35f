package accounting

import (
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Sum adds values exactly. An empty slice sums to zero.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// ServiceTotals returns the count and price sum of services.
func ServiceTotals(services []domain.ServiceRecord) domain.Totals {
	totals := domain.Totals{Count: len(services), Sum: decimal.Zero}
	for _, s := range services {
		totals.Sum = totals.Sum.Add(s.Price)
	}
	return totals
}

// Net is revenue minus expenses. It may be negative.
func Net(revenue, expenses decimal.Decimal) decimal.Decimal {
	return revenue.Sub(expenses)
}

// CountByStatusLabel groups services by status label. Unknown statuses count as "other".
func CountByStatusLabel(services []domain.ServiceRecord) map[string]int {
	counts := make(map[string]int)
	for _, s := range services {
		counts[s.Status.Label()]++
	}
	return counts
}
