package config

import (
	"errors"
	"testing"

	"github.com/iwvelando/loan-organizer/pkg/loans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func float(v float64) *float64 {
	return &v
}

func TestBuildAccounts(t *testing.T) {
	config, err := LoadConfiguration(testConfigPath)
	require.NoError(t, err)

	accounts, err := config.BuildAccounts(zap.NewNop())
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	car := accounts[0]
	assert.Equal(t, "Car Loan", car.Name())
	assert.Equal(t, loans.TypeAuto, car.Type())
	assert.Equal(t, "0.0399", car.AnnualInterestRate().String())
	assert.Equal(t, "2025-01-15", car.StartDate().Format(DateLayout))
	vehicle, ok := car.Auto()
	require.True(t, ok)
	assert.Equal(t, "Camry", vehicle.VehicleModel)
	assert.Equal(t, "30000", vehicle.VehicleValue.String())
	require.Len(t, car.PaymentHistory(), 2)
	assert.Equal(t, "920.5", car.TotalPaid().String())

	home := accounts[1]
	assert.Equal(t, loans.TypeMortgage, home.Type())
	property, ok := home.Mortgage()
	require.True(t, ok)
	assert.True(t, property.EscrowIncluded)
	assert.Equal(t, "350", property.EscrowAmount.String())

	personal := accounts[2]
	assert.Equal(t, loans.TypePersonal, personal.Type())
	assert.Equal(t, "0.05", personal.AnnualInterestRate().String())
	assert.Equal(t, 60, personal.TermInMonths())
}

func TestBuildAccountsNilLogger(t *testing.T) {
	config := Configuration{Loans: []Loan{{Name: "Quiet", Principal: 1000}}}
	accounts, err := config.BuildAccounts(nil)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, loans.TypeGeneral, accounts[0].Type())
}

func TestBuildAccountsUsesConfiguredDefaults(t *testing.T) {
	config := Configuration{
		Defaults: DefaultsConfig{InterestRate: float(0.07), TermInMonths: 36},
		Loans: []Loan{
			{Name: "Defaulted", Principal: 1000},
			{Name: "Explicit", Principal: 1000, InterestRate: float(0), TermInMonths: 12},
		},
	}

	accounts, err := config.BuildAccounts(zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "0.07", accounts[0].AnnualInterestRate().String())
	assert.Equal(t, 36, accounts[0].TermInMonths())
	assert.True(t, accounts[1].AnnualInterestRate().IsZero())
	assert.Equal(t, 12, accounts[1].TermInMonths())
}

func TestBuildAccountsInactive(t *testing.T) {
	config := Configuration{Loans: []Loan{{Name: "Closed", Principal: 1000, Inactive: true}}}
	accounts, err := config.BuildAccounts(zap.NewNop())
	require.NoError(t, err)
	assert.False(t, accounts[0].IsActive())
}

func TestBuildAccountsErrors(t *testing.T) {
	tests := []struct {
		name     string
		loan     Loan
		sentinel error
	}{
		{
			name:     "rejected payment",
			loan:     Loan{Name: "Refund", Principal: 1000, Payments: []Payment{{Amount: -100, Date: "2025-02-01"}}},
			sentinel: loans.ErrInvalidPaymentAmount,
		},
		{
			name:     "unknown type",
			loan:     Loan{Name: "Boat", Type: "boat", Principal: 1000},
			sentinel: loans.ErrInvalidType,
		},
		{
			name:     "auto type without vehicle",
			loan:     Loan{Name: "Car", Type: "auto", Principal: 1000},
			sentinel: loans.ErrInvalidType,
		},
		{
			name:     "personal type with vehicle",
			loan:     Loan{Name: "Car", Type: "personal", Principal: 1000, Vehicle: &Vehicle{Value: 5000}},
			sentinel: loans.ErrInvalidType,
		},
		{
			name:     "non-positive principal",
			loan:     Loan{Name: "Nothing", Principal: -5},
			sentinel: loans.ErrInvalidPrincipal,
		},
		{
			name:     "negative down payment",
			loan:     Loan{Name: "House", Principal: 1000, Property: &Property{Value: 5000, DownPayment: -1}},
			sentinel: loans.ErrInvalidDownPayment,
		},
		{
			name: "vehicle and property",
			loan: Loan{Name: "Both", Principal: 1000, Vehicle: &Vehicle{Value: 1}, Property: &Property{Value: 1}},
		},
		{
			name: "bad payment date",
			loan: Loan{Name: "Late", Principal: 1000, Payments: []Payment{{Amount: 10, Date: "yesterday"}}},
		},
		{
			name: "bad start date",
			loan: Loan{Name: "Early", Principal: 1000, StartDate: "2025/01/01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Configuration{Loans: []Loan{tt.loan}}
			accounts, err := config.BuildAccounts(zap.NewNop())
			require.Error(t, err)
			assert.Nil(t, accounts)
			assert.Contains(t, err.Error(), tt.loan.Name)
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel), "expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}
