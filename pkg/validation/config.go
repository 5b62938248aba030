// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-organizer/pkg/datetime"
)

// ValidateLoanWindow checks a loan's dates against the report date. Dates are
// YYYY-MM-DD strings, which compare correctly as text.
func ValidateLoanWindow(loanName, startDate, asOfDate string, termMonths int) ([]string, error) {
	var warnings []string
	if startDate == "" || asOfDate == "" {
		return warnings, nil
	}

	start, err := datetime.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	maturityDate := datetime.AddMonths(start, termMonths).Format(datetime.DateLayout)

	if startDate > asOfDate {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' starts after the report date (%s > %s) - balance is the full principal",
			loanName, startDate, asOfDate))
	}
	if maturityDate < asOfDate {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' matured before the report date (%s < %s) - balance is zero",
			loanName, maturityDate, asOfDate))
	}

	return warnings, nil
}

// ValidatePaymentDates checks that recorded payments fall inside the loan term.
func ValidatePaymentDates(loanName, startDate string, termMonths int, paymentDates []string) ([]string, error) {
	var warnings []string
	if startDate == "" {
		return warnings, nil
	}

	start, err := datetime.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	maturityDate := datetime.AddMonths(start, termMonths).Format(datetime.DateLayout)

	for _, date := range paymentDates {
		if date < startDate {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' has a payment dated before the loan start (%s < %s)",
				loanName, date, startDate))
		}
		if date > maturityDate {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' has a payment dated after maturity (%s > %s)",
				loanName, date, maturityDate))
		}
	}

	return warnings, nil
}

// ConfigValidator checks a loan book for suspicious but legal entries.
type ConfigValidator struct {
	AsOfDate string
	Loans    []LoanConfig
}

// LoanConfig is the subset of a configured loan that ConfigValidator checks.
// Dates use the configuration date layout.
type LoanConfig struct {
	Name         string
	StartDate    string
	Term         int
	PaymentDates []string
}

// ValidateAll validates the entire loan book and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string
	seen := make(map[string]bool)

	for _, loan := range cv.Loans {
		key := strings.ToLower(strings.TrimSpace(loan.Name))
		if seen[key] {
			warnings = append(warnings, fmt.Sprintf("Loan name '%s' is used more than once", loan.Name))
		}
		seen[key] = true

		windowWarnings, err := ValidateLoanWindow(loan.Name, loan.StartDate, cv.AsOfDate, loan.Term)
		if err == nil {
			warnings = append(warnings, windowWarnings...)
		}

		paymentWarnings, err := ValidatePaymentDates(loan.Name, loan.StartDate, loan.Term, loan.PaymentDates)
		if err == nil {
			warnings = append(warnings, paymentWarnings...)
		}
	}

	return warnings
}
