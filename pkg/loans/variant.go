package loans

import (
	"github.com/shopspring/decimal"
)

// Variant holds the type-specific data attached to an Account. The set of
// implementations is closed: PersonalDetails, AutoDetails and MortgageDetails.
type Variant interface {
	isVariant()
}

// PersonalDetails marks an unsecured loan (Personal or General).
type PersonalDetails struct{}

// AutoDetails describes the vehicle securing an auto loan.
type AutoDetails struct {
	VehicleMake  string          `json:"vehicleMake" yaml:"vehicleMake"`
	VehicleModel string          `json:"vehicleModel" yaml:"vehicleModel"`
	VehicleYear  int             `json:"vehicleYear" yaml:"vehicleYear"`
	VIN          string          `json:"vin" yaml:"vin"`
	VehicleValue decimal.Decimal `json:"vehicleValue" yaml:"vehicleValue"`
	IsNew        bool            `json:"isNew" yaml:"isNew"`
}

// MortgageDetails describes the property securing a mortgage.
type MortgageDetails struct {
	PropertyAddress string          `json:"propertyAddress" yaml:"propertyAddress"`
	PropertyValue   decimal.Decimal `json:"propertyValue" yaml:"propertyValue"`
	DownPayment     decimal.Decimal `json:"downPayment" yaml:"downPayment"`
	EscrowIncluded  bool            `json:"escrowIncluded" yaml:"escrowIncluded"`
	EscrowAmount    decimal.Decimal `json:"escrowAmount" yaml:"escrowAmount"`
}

func (PersonalDetails) isVariant() {}
func (AutoDetails) isVariant()     {}
func (MortgageDetails) isVariant() {}

func (d AutoDetails) validate() error {
	if !d.VehicleValue.IsPositive() {
		return wrapInvalidAssetValue("vehicle value", d.VehicleValue)
	}
	return nil
}

func (d MortgageDetails) validate() error {
	if !d.PropertyValue.IsPositive() {
		return wrapInvalidAssetValue("property value", d.PropertyValue)
	}
	if d.DownPayment.IsNegative() {
		return wrapInvalidDownPayment(d.DownPayment)
	}
	if d.EscrowAmount.IsNegative() {
		return wrapInvalidEscrowAmount(d.EscrowAmount)
	}
	return nil
}

// collateralValue returns the value securing the loan, if any.
func collateralValue(v Variant) (decimal.Decimal, bool) {
	switch d := v.(type) {
	case AutoDetails:
		return d.VehicleValue, true
	case MortgageDetails:
		return d.PropertyValue, true
	default:
		return decimal.Zero, false
	}
}

// typeAllowed reports whether a loan carrying v may be classified as t.
func typeAllowed(v Variant, t Type) bool {
	switch v.(type) {
	case AutoDetails:
		return t == TypeAuto
	case MortgageDetails:
		return t == TypeMortgage
	default:
		return t == TypePersonal || t == TypeGeneral
	}
}
