package loans

import (
	"fmt"

	"github.com/iwvelando/loan-organizer/pkg/format"
	"github.com/iwvelando/loan-organizer/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Comparison is the outcome of comparing the total cost of two loans.
type Comparison struct {
	Cheaper    *Account
	Difference decimal.Decimal
	Tie        bool
}

// CompareLoanCosts compares the total cost (principal plus total interest) of
// two loans. Costs are compared to the cent; equal costs are a tie.
func CompareLoanCosts(first, second *Account) Comparison {
	firstCost := mathutil.Round(first.CalculateTotalCost())
	secondCost := mathutil.Round(second.CalculateTotalCost())

	switch firstCost.Cmp(secondCost) {
	case -1:
		return Comparison{Cheaper: first, Difference: secondCost.Sub(firstCost)}
	case 1:
		return Comparison{Cheaper: second, Difference: firstCost.Sub(secondCost)}
	default:
		return Comparison{Difference: decimal.Zero, Tie: true}
	}
}

// String describes which loan is cheaper and by how much.
func (c Comparison) String() string {
	if c.Tie || c.Cheaper == nil {
		return "Both loans have the same total cost"
	}
	return fmt.Sprintf("%s has a lower total cost by %s", c.Cheaper.Name(), format.Currency(c.Difference))
}

// String describes the loan on one line, including its collateral.
func (a *Account) String() string {
	s := a.snapshot()
	line := fmt.Sprintf("%s Loan: %s - %s at %s for %d months",
		s.loanType, s.name, format.Currency(s.principal), format.Percent(s.rate), s.termInMonths)

	switch d := s.variant.(type) {
	case AutoDetails:
		return fmt.Sprintf("%s on %d %s %s", line, d.VehicleYear, d.VehicleMake, d.VehicleModel)
	case MortgageDetails:
		return fmt.Sprintf("%s on property at %s", line, d.PropertyAddress)
	default:
		return line
	}
}
