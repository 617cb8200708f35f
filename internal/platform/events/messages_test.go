package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriodClosedMessage(t *testing.T) {
	closedAt := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	period := domain.ClosedPeriod{
		ID:            "p1",
		TotalServices: 2,
		TotalValue:    decimal.NewFromInt(150),
		TotalExpenses: decimal.NewFromInt(30),
		NetTotal:      decimal.NewFromInt(120),
		PeriodStart:   time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC),
		PeriodEnd:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Ownership:     domain.Ownership{OwnerID: "u1", CreatedAt: closedAt},
	}

	body, err := NewPeriodClosedMessage(period).ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, EventPeriodClosed, decoded["event"])
	assert.Equal(t, "p1", decoded["period_id"])
	assert.Equal(t, "u1", decoded["owner_id"])
	assert.Equal(t, "2024-02-14", decoded["period_start"])
	assert.Equal(t, "2024-03-15", decoded["period_end"])
	assert.EqualValues(t, 2, decoded["total_services"])
}
