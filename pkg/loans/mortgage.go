package loans

import (
	"github.com/iwvelando/loan-organizer/pkg/constants"
	"github.com/shopspring/decimal"
)

var pmiThreshold = decimal.RequireFromString(constants.PMIThreshold)

// NewMortgageLoan opens a mortgage secured by the given property.
func NewMortgageLoan(terms Terms, property MortgageDetails, opts ...Option) (*Account, error) {
	if err := property.validate(); err != nil {
		return nil, err
	}
	return newAccount(terms, property, opts...)
}

// LoanToValueRatio divides the principal by the collateral value. Unsecured
// loans have no collateral and return ErrNoCollateral.
func (a *Account) LoanToValueRatio() (decimal.Decimal, error) {
	s := a.snapshot()
	return s.loanToValue()
}

func (s snapshot) loanToValue() (decimal.Decimal, error) {
	value, ok := collateralValue(s.variant)
	if !ok {
		return decimal.Zero, wrapWrongVariant(s.name, ErrNoCollateral)
	}
	return s.principal.Div(value), nil
}

// IsPMIRequired reports whether private mortgage insurance applies, which is
// the case when the loan-to-value ratio is strictly above 80%.
func (a *Account) IsPMIRequired() (bool, error) {
	s := a.snapshot()
	if _, ok := s.variant.(MortgageDetails); !ok {
		return false, wrapWrongVariant(s.name, ErrNotMortgage)
	}
	ltv, err := s.loanToValue()
	if err != nil {
		return false, err
	}
	return ltv.GreaterThan(pmiThreshold), nil
}

// CalculateTotalMonthlyPayment returns the scheduled payment plus escrow when
// escrow is included.
func (a *Account) CalculateTotalMonthlyPayment() (decimal.Decimal, error) {
	s := a.snapshot()
	property, ok := s.variant.(MortgageDetails)
	if !ok {
		return decimal.Zero, wrapWrongVariant(s.name, ErrNotMortgage)
	}
	payment := MonthlyPayment(s.principal, s.rate, s.termInMonths)
	if property.EscrowIncluded {
		payment = payment.Add(property.EscrowAmount)
	}
	return payment, nil
}

// CalculateEquity returns the property value less the principal.
func (a *Account) CalculateEquity() (decimal.Decimal, error) {
	s := a.snapshot()
	property, ok := s.variant.(MortgageDetails)
	if !ok {
		return decimal.Zero, wrapWrongVariant(s.name, ErrNotMortgage)
	}
	return property.PropertyValue.Sub(s.principal), nil
}

// SetMortgageDetails replaces the property details of a mortgage.
func (a *Account) SetMortgageDetails(property MortgageDetails) error {
	if err := property.validate(); err != nil {
		a.logRejected("loans.SetMortgageDetails", err)
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.variant.(MortgageDetails); !ok {
		return wrapWrongVariant(a.name, ErrNotMortgage)
	}
	a.variant = property
	return nil
}
