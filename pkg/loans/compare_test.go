package loans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareLoanCosts(t *testing.T) {
	cheap, err := NewAccount(Terms{Name: "Cheap Loan", Principal: d("10000"), AnnualInterestRate: rate("0.05"), TermInMonths: 60})
	require.NoError(t, err)
	pricey, err := NewAccount(Terms{Name: "Pricey Loan", Principal: d("10000"), AnnualInterestRate: rate("0.06"), TermInMonths: 60})
	require.NoError(t, err)

	tests := []struct {
		name          string
		first, second *Account
	}{
		{"cheaper first", cheap, pricey},
		{"cheaper second", pricey, cheap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareLoanCosts(tt.first, tt.second)
			assert.False(t, result.Tie)
			assert.Same(t, cheap, result.Cheaper)
			assert.True(t, result.Difference.Equal(d("276.94")), "got %s", result.Difference)
			assert.Equal(t, "Cheap Loan has a lower total cost by $276.94", result.String())
		})
	}
}

func TestCompareLoanCostsTie(t *testing.T) {
	first := newTestLoan(t)
	second := newTestLoan(t)
	require.NoError(t, second.SetName("Twin"))

	result := CompareLoanCosts(first, second)
	assert.True(t, result.Tie)
	assert.Nil(t, result.Cheaper)
	assert.True(t, result.Difference.IsZero())
	assert.Equal(t, "Both loans have the same total cost", result.String())
}

func TestAccountString(t *testing.T) {
	assert.Equal(t,
		"Personal Loan: Test Loan - $10,000.00 at 5.00% for 60 months",
		newTestLoan(t).String())
	assert.Equal(t,
		"Auto Loan: Car Loan - $25,000.00 at 3.99% for 60 months on 2025 Toyota Camry",
		newTestAutoLoan(t, "25000", "0.0399", 60).String())
	assert.Equal(t,
		"Mortgage Loan: Home Loan - $200,000.00 at 4.50% for 360 months on property at 123 Main St, Anytown, USA",
		newTestMortgage(t, "200000", house()).String())
}
