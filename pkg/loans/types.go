package loans

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a loan.
type Type string

// Loan types
const (
	TypePersonal Type = "Personal"
	TypeAuto     Type = "Auto"
	TypeMortgage Type = "Mortgage"
	TypeGeneral  Type = "General"
)

// Types lists every supported loan type.
func Types() []Type {
	return []Type{TypePersonal, TypeAuto, TypeMortgage, TypeGeneral}
}

// Valid reports whether t is one of the supported loan types.
func (t Type) Valid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseType converts a case-insensitive type name into a Type.
func ParseType(s string) (Type, error) {
	name := strings.TrimSpace(s)
	for _, known := range Types() {
		if strings.EqualFold(name, string(known)) {
			return known, nil
		}
	}
	return "", wrapInvalidType(Type(s))
}

// Payment is an actual payment made against a loan.
type Payment struct {
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
	Date   time.Time       `json:"date" yaml:"date"`
	Notes  string          `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewPayment builds a Payment, rejecting non-positive amounts.
func NewPayment(amount decimal.Decimal, date time.Time, notes string) (Payment, error) {
	if !amount.IsPositive() {
		return Payment{}, wrapInvalidPaymentAmount(amount)
	}
	return Payment{Amount: amount, Date: date, Notes: notes}, nil
}

// PaymentDetails is a single row of an amortization schedule.
type PaymentDetails struct {
	Month            int             `json:"month" yaml:"month"`
	PaymentDate      time.Time       `json:"paymentDate" yaml:"paymentDate"`
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment" yaml:"monthlyPayment"`
	PrincipalPayment decimal.Decimal `json:"principalPayment" yaml:"principalPayment"`
	InterestPayment  decimal.Decimal `json:"interestPayment" yaml:"interestPayment"`
	RemainingBalance decimal.Decimal `json:"remainingBalance" yaml:"remainingBalance"`
}
