// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/loan-organizer/internal/report"
	"github.com/iwvelando/loan-organizer/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// FindLoan finds a loan summary by name in a report.
// Returns a pointer to the summary if found, nil otherwise.
func FindLoan(result report.Report, name string) *report.LoanSummary {
	for i := range result.Loans {
		if result.Loans[i].Name == name {
			return &result.Loans[i]
		}
	}
	return nil
}

// FindComparison finds the comparison between two named loans, in either order.
func FindComparison(result report.Report, first, second string) *report.ComparisonSummary {
	for i := range result.Comparisons {
		c := &result.Comparisons[i]
		if (c.First == first && c.Second == second) || (c.First == second && c.Second == first) {
			return c
		}
	}
	return nil
}

// AlmostEqual reports whether got is within tolerance of the expected amount.
func AlmostEqual(got decimal.Decimal, want, tolerance float64) bool {
	return mathutil.WithinTolerance(got, decimal.NewFromFloat(want), decimal.NewFromFloat(tolerance))
}
