package loans

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidPrincipal     = errors.New("principal must be positive")
	ErrInvalidInterestRate  = errors.New("interest rate must be between 0 and 1")
	ErrInvalidTerm          = errors.New("term must be between 1 and 600 months")
	ErrInvalidName          = errors.New("loan name cannot be empty")
	ErrInvalidType          = errors.New("invalid loan type")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidAssetValue    = errors.New("collateral value must be positive")
	ErrInvalidDownPayment   = errors.New("down payment cannot be negative")
	ErrInvalidEscrowAmount  = errors.New("escrow amount cannot be negative")
	ErrNoCollateral         = errors.New("loan has no collateral")
	ErrNotAutoLoan          = errors.New("loan is not an auto loan")
	ErrNotMortgage          = errors.New("loan is not a mortgage")
)

// Error codes
const (
	ErrCodeInvalidPrincipal     = "INVALID_PRINCIPAL"
	ErrCodeInvalidInterestRate  = "INVALID_INTEREST_RATE"
	ErrCodeInvalidTerm          = "INVALID_TERM"
	ErrCodeInvalidName          = "INVALID_NAME"
	ErrCodeInvalidType          = "INVALID_TYPE"
	ErrCodeInvalidPaymentAmount = "INVALID_PAYMENT_AMOUNT"
	ErrCodeInvalidAssetValue    = "INVALID_ASSET_VALUE"
	ErrCodeInvalidDownPayment   = "INVALID_DOWN_PAYMENT"
	ErrCodeInvalidEscrowAmount  = "INVALID_ESCROW_AMOUNT"
	ErrCodeNoCollateral         = "NO_COLLATERAL"
	ErrCodeWrongVariant         = "WRONG_LOAN_VARIANT"
)

// ValidationError is returned when an input is rejected. Err holds one of the
// package sentinels so callers can match it with errors.Is.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string, err error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func wrapInvalidPrincipal(principal decimal.Decimal) *ValidationError {
	return NewValidationError(
		ErrCodeInvalidPrincipal,
		fmt.Sprintf("Invalid principal: %s", principal.StringFixed(2)),
		ErrInvalidPrincipal,
	)
}

func wrapInvalidInterestRate(rate decimal.Decimal) *ValidationError {
	return NewValidationError(
		ErrCodeInvalidInterestRate,
		fmt.Sprintf("Invalid annual interest rate: %s", rate.String()),
		ErrInvalidInterestRate,
	)
}

func wrapInvalidTerm(term int) *ValidationError {
	return NewValidationError(
		ErrCodeInvalidTerm,
		fmt.Sprintf("Invalid term: %d months", term),
		ErrInvalidTerm,
	)
}

func wrapInvalidName() *ValidationError {
	return NewValidationError(ErrCodeInvalidName, "Loan name is blank", ErrInvalidName)
}

func wrapInvalidType(t Type) *ValidationError {
	return NewValidationError(
		ErrCodeInvalidType,
		fmt.Sprintf("Invalid loan type: %q", string(t)),
		ErrInvalidType,
	)
}

func wrapInvalidPaymentAmount(amount decimal.Decimal) *ValidationError {
	return NewValidationError(
		ErrCodeInvalidPaymentAmount,
		fmt.Sprintf("Invalid payment amount: %s", amount.StringFixed(2)),
		ErrInvalidPaymentAmount,
	)
}

func wrapInvalidAssetValue(what string, value decimal.Decimal) *ValidationError {
	return NewValidationError(
		ErrCodeInvalidAssetValue,
		fmt.Sprintf("Invalid %s: %s", what, value.StringFixed(2)),
		ErrInvalidAssetValue,
	)
}

func wrapInvalidDownPayment(value decimal.Decimal) *ValidationError {
	return NewValidationError(
		ErrCodeInvalidDownPayment,
		fmt.Sprintf("Invalid down payment: %s", value.StringFixed(2)),
		ErrInvalidDownPayment,
	)
}

func wrapInvalidEscrowAmount(value decimal.Decimal) *ValidationError {
	return NewValidationError(
		ErrCodeInvalidEscrowAmount,
		fmt.Sprintf("Invalid escrow amount: %s", value.StringFixed(2)),
		ErrInvalidEscrowAmount,
	)
}

func wrapWrongVariant(name string, want error) *ValidationError {
	code := ErrCodeWrongVariant
	if errors.Is(want, ErrNoCollateral) {
		code = ErrCodeNoCollateral
	}
	return NewValidationError(code, fmt.Sprintf("Loan %q", name), want)
}
