package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLoanWindow(t *testing.T) {
	tests := []struct {
		name        string
		loanName    string
		startDate   string
		asOfDate    string
		termMonths  int
		expectWarn  int
		expectError bool
	}{
		{
			name:       "Loan active on report date",
			loanName:   "Active Loan",
			startDate:  "2025-01-15",
			asOfDate:   "2026-01-01",
			termMonths: 60,
		},
		{
			name:       "Loan starts after report date",
			loanName:   "Future Loan",
			startDate:  "2027-01-15",
			asOfDate:   "2026-01-01",
			termMonths: 60,
			expectWarn: 1,
		},
		{
			name:       "Loan matured before report date",
			loanName:   "Old Loan",
			startDate:  "2015-01-15",
			asOfDate:   "2026-01-01",
			termMonths: 36,
			expectWarn: 1,
		},
		{
			name:       "Loan matures exactly on report date",
			loanName:   "Exact Loan",
			startDate:  "2021-01-01",
			asOfDate:   "2026-01-01",
			termMonths: 60,
		},
		{
			name:       "No report date",
			loanName:   "Undated",
			startDate:  "2015-01-15",
			termMonths: 12,
		},
		{
			name:        "Invalid start date",
			loanName:    "Invalid Loan",
			startDate:   "invalid-date",
			asOfDate:    "2026-01-01",
			termMonths:  60,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings, err := ValidateLoanWindow(tt.loanName, tt.startDate, tt.asOfDate, tt.termMonths)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, warnings, tt.expectWarn, "warnings: %v", warnings)
			for _, warning := range warnings {
				assert.Contains(t, warning, tt.loanName)
			}
		})
	}
}

func TestValidatePaymentDates(t *testing.T) {
	warnings, err := ValidatePaymentDates("Car Loan", "2025-01-15", 12, []string{
		"2025-01-14", // before start
		"2025-02-15",
		"2026-01-15", // maturity
		"2026-01-16", // after maturity
	})
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "before the loan start")
	assert.Contains(t, warnings[1], "after maturity")

	_, err = ValidatePaymentDates("Bad", "01/15/2025", 12, nil)
	assert.Error(t, err, "malformed start date")
}

func TestConfigValidatorValidateAll(t *testing.T) {
	validator := ConfigValidator{
		AsOfDate: "2026-01-01",
		Loans: []LoanConfig{
			{Name: "Car Loan", StartDate: "2025-01-15", Term: 60, PaymentDates: []string{"2025-02-15"}},
			{Name: "car loan", StartDate: "2025-06-01", Term: 60},
			{Name: "Future", StartDate: "2026-06-01", Term: 12},
			{Name: "Broken", StartDate: "not-a-date", Term: 12},
		},
	}

	warnings := validator.ValidateAll()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "used more than once")
	assert.Contains(t, warnings[1], "Future")

	empty := ConfigValidator{}
	assert.Empty(t, empty.ValidateAll())
}
