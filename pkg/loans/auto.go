package loans

import (
	"github.com/iwvelando/loan-organizer/pkg/constants"
	"github.com/iwvelando/loan-organizer/pkg/datetime"
	"github.com/shopspring/decimal"
)

var (
	newVehicleFirstYearRetained  = decimal.NewFromInt(1).Sub(decimal.RequireFromString(constants.NewVehicleFirstYearDepreciation))
	usedVehicleFirstYearRetained = decimal.NewFromInt(1).Sub(decimal.RequireFromString(constants.UsedVehicleFirstYearDepreciation))
	annualVehicleRetained        = decimal.NewFromInt(1).Sub(decimal.RequireFromString(constants.AnnualVehicleDepreciation))
)

// NewAutoLoan opens an auto loan secured by the given vehicle.
func NewAutoLoan(terms Terms, vehicle AutoDetails, opts ...Option) (*Account, error) {
	if err := vehicle.validate(); err != nil {
		return nil, err
	}
	return newAccount(terms, vehicle, opts...)
}

// EstimateCurrentValue depreciates the vehicle value over ageInYears. The
// first year costs 20% for a new vehicle and 10% for a used one; every
// following year costs 10%, compounding.
func EstimateCurrentValue(vehicle AutoDetails, ageInYears int) decimal.Decimal {
	value := vehicle.VehicleValue
	for year := 0; year < ageInYears; year++ {
		switch {
		case year == 0 && vehicle.IsNew:
			value = value.Mul(newVehicleFirstYearRetained)
		case year == 0:
			value = value.Mul(usedVehicleFirstYearRetained)
		default:
			value = value.Mul(annualVehicleRetained)
		}
	}
	return value
}

// EstimateCurrentValue depreciates the vehicle securing this auto loan.
func (a *Account) EstimateCurrentValue(ageInYears int) (decimal.Decimal, error) {
	s := a.snapshot()
	vehicle, ok := s.variant.(AutoDetails)
	if !ok {
		return decimal.Zero, wrapWrongVariant(s.name, ErrNotAutoLoan)
	}
	return EstimateCurrentValue(vehicle, ageInYears), nil
}

// IsLoanUnderwater reports whether the scheduled balance ageInYears after the
// start date exceeds the depreciated vehicle value.
func (a *Account) IsLoanUnderwater(ageInYears int) (bool, error) {
	s := a.snapshot()
	vehicle, ok := s.variant.(AutoDetails)
	if !ok {
		return false, wrapWrongVariant(s.name, ErrNotAutoLoan)
	}
	value := EstimateCurrentValue(vehicle, ageInYears)
	asOf := datetime.AddYears(s.startDate, ageInYears)
	balance := RemainingBalance(s.principal, s.rate, s.termInMonths, s.startDate, asOf)
	return balance.GreaterThan(value), nil
}

// SetAutoDetails replaces the vehicle details of an auto loan.
func (a *Account) SetAutoDetails(vehicle AutoDetails) error {
	if err := vehicle.validate(); err != nil {
		a.logRejected("loans.SetAutoDetails", err)
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.variant.(AutoDetails); !ok {
		return wrapWrongVariant(a.name, ErrNotAutoLoan)
	}
	a.variant = vehicle
	return nil
}
