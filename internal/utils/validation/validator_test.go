package validation

import (
	"testing"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStruct_DecimalGreaterThanZero(t *testing.T) {
	ok := dto.CreateServiceRequest{Description: "Oil change", Price: decimal.RequireFromString("100.50")}
	assert.NoError(t, Struct(ok))

	zero := dto.CreateServiceRequest{Description: "Oil change"}
	err := Struct(zero)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "price")

	negative := dto.CreateWithdrawalRequest{Amount: decimal.NewFromInt(-5), Party: "party1"}
	assert.ErrorIs(t, Struct(negative), apperrors.ErrValidation)
}

func TestStruct_OptionalPointerDecimal(t *testing.T) {
	assert.NoError(t, Struct(dto.UpdateServiceRequest{}))

	bad := decimal.Zero
	assert.ErrorIs(t, Struct(dto.UpdateServiceRequest{Price: &bad}), apperrors.ErrValidation)

	good := decimal.NewFromInt(10)
	assert.NoError(t, Struct(dto.UpdateServiceRequest{Price: &good}))
}

func TestStruct_PartyAndDates(t *testing.T) {
	err := Struct(dto.CreateWithdrawalRequest{Amount: decimal.NewFromInt(5), Party: "party3"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "party")

	err = Struct(dto.CreateAppointmentRequest{Date: "15/03/2024", Time: "10:00", Client: "Ana"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.NoError(t, Struct(dto.CreateAppointmentRequest{Date: "2024-03-15", Time: "10:00", Client: "Ana"}))
}

func TestStruct_MoneyPrecisionAndRange(t *testing.T) {
	testCases := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "two decimals", amount: "19.99"},
		{name: "trailing zeros beyond scale", amount: "10.500"},
		{name: "largest storable", amount: "999999999999.99"},
		{name: "sub-cent", amount: "0.001", wantErr: true},
		{name: "three decimals", amount: "10.005", wantErr: true},
		{name: "at the column limit", amount: "1000000000000", wantErr: true},
		{name: "far too large", amount: "1e15", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)

			withdrawal := Struct(dto.CreateWithdrawalRequest{Amount: amount, Party: "party1"})
			expense := Struct(dto.CreateExpenseRequest{Description: "Parts", Amount: amount})
			service := Struct(dto.CreateServiceRequest{Description: "Oil change", Price: amount})
			update := Struct(dto.UpdateServiceRequest{Price: &amount})

			for _, err := range []error{withdrawal, expense, service, update} {
				if tc.wantErr {
					assert.ErrorIs(t, err, apperrors.ErrValidation)
					assert.Contains(t, err.Error(), "money")
				} else {
					assert.NoError(t, err)
				}
			}
		})
	}
}
