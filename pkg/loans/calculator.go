// Package loans provides the loan amortization engine: monthly payments,
// amortization schedules, point-in-time balances, extra-payment savings and
// collateral metrics for auto and mortgage loans.
package loans

import (
	"time"

	"github.com/iwvelando/loan-organizer/pkg/datetime"
	"github.com/iwvelando/loan-organizer/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// NeverPaidOff is returned by MonthsUntilPayoff when the payment does not
// cover the first month's interest.
const NeverPaidOff = -1

// workingPrecision is the number of decimal places carried by payments and
// per-month interest. A payment error compounds by roughly (1+r)^n / r over
// the term, which reaches 1e18 for long terms at high rates.
const workingPrecision = 40

// logPrecision is the number of decimal places used for the logarithms in
// MonthsUntilPayoff.
const logPrecision = 20

var one = decimal.NewFromInt(1)

// growthFactor returns (1+r)^n for the monthly rate r, rounded to the working
// precision. It reports false when the factor does not exceed one.
func growthFactor(monthlyRate decimal.Decimal, n int) (decimal.Decimal, bool) {
	factor, err := one.Add(monthlyRate).PowInt32(int32(n))
	if err != nil {
		return decimal.Zero, false
	}
	factor = factor.Round(workingPrecision)
	return factor, factor.GreaterThan(one)
}

// MonthlyPayment calculates the fixed monthly payment for a loan using the
// standard amortization formula P * r / (1 - (1+r)^-n), evaluated as
// P * r * f / (f - 1) with f = (1+r)^n. A zero rate degenerates to P / n.
func MonthlyPayment(principal, annualInterestRate decimal.Decimal, numberOfPayments int) decimal.Decimal {
	if numberOfPayments <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(numberOfPayments))
	monthlyRate := mathutil.MonthlyRate(annualInterestRate)
	if !monthlyRate.IsPositive() {
		return principal.DivRound(n, workingPrecision)
	}

	factor, ok := growthFactor(monthlyRate, numberOfPayments)
	if !ok {
		return principal.DivRound(n, workingPrecision)
	}
	return principal.Mul(monthlyRate).Mul(factor).DivRound(factor.Sub(one), workingPrecision)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingBalance, monthlyRate decimal.Decimal) decimal.Decimal {
	return remainingBalance.Mul(monthlyRate).Round(workingPrecision)
}

// TotalLoanCost returns the sum of all scheduled payments. Without interest
// the cost is exactly the principal.
func TotalLoanCost(principal, annualInterestRate decimal.Decimal, termInMonths int) decimal.Decimal {
	if termInMonths > 0 && !mathutil.MonthlyRate(annualInterestRate).IsPositive() {
		return principal
	}
	payment := MonthlyPayment(principal, annualInterestRate, termInMonths)
	return payment.Mul(decimal.NewFromInt(int64(termInMonths)))
}

// TotalInterest returns the interest paid over the full term.
func TotalInterest(principal, annualInterestRate decimal.Decimal, termInMonths int) decimal.Decimal {
	return TotalLoanCost(principal, annualInterestRate, termInMonths).Sub(principal)
}

// AmortizationSchedule produces one row per month from 1 to termInMonths.
// The final row absorbs any accumulated rounding so the balance ends at zero.
func AmortizationSchedule(principal, annualInterestRate decimal.Decimal, termInMonths int, startDate time.Time) []PaymentDetails {
	if termInMonths <= 0 {
		return nil
	}

	monthlyPayment := MonthlyPayment(principal, annualInterestRate, termInMonths)
	monthlyRate := mathutil.MonthlyRate(annualInterestRate)
	schedule := make([]PaymentDetails, 0, termInMonths)

	balance := principal
	for month := 1; month <= termInMonths; month++ {
		var row PaymentDetails
		row.Month = month
		row.PaymentDate = datetime.AddMonths(startDate, month)
		row.InterestPayment, row.PrincipalPayment, row.MonthlyPayment, balance =
			amortizeMonth(balance, monthlyRate, monthlyPayment, month == termInMonths)
		row.RemainingBalance = balance
		schedule = append(schedule, row)
	}

	return schedule
}

// amortizeMonth applies one month of the amortization loop and returns the
// interest, principal, payment and resulting balance. The principal never
// exceeds the balance, and the final month retires whatever is left.
func amortizeMonth(balance, monthlyRate, monthlyPayment decimal.Decimal, final bool) (interest, principal, payment, remaining decimal.Decimal) {
	interest = CalculateInterestPayment(balance, monthlyRate)
	principal = mathutil.ClampZero(monthlyPayment.Sub(interest))
	if final || principal.GreaterThan(balance) {
		principal = balance
	}
	payment = principal.Add(interest)
	remaining = mathutil.ClampZero(balance.Sub(principal))
	return interest, principal, payment, remaining
}

// balanceAfter replays the amortization loop for the given number of months.
func balanceAfter(principal, annualInterestRate decimal.Decimal, termInMonths, months int) decimal.Decimal {
	if months > termInMonths {
		months = termInMonths
	}
	monthlyPayment := MonthlyPayment(principal, annualInterestRate, termInMonths)
	monthlyRate := mathutil.MonthlyRate(annualInterestRate)

	balance := principal
	for month := 1; month <= months; month++ {
		_, _, _, balance = amortizeMonth(balance, monthlyRate, monthlyPayment, month == termInMonths)
	}
	return mathutil.ClampZero(balance)
}

// RemainingBalance returns the outstanding principal as of the given date.
// Before the start date nothing has been amortized so the full principal is
// owed; strictly after maturity the loan is paid off.
func RemainingBalance(principal, annualInterestRate decimal.Decimal, termInMonths int, startDate, asOfDate time.Time) decimal.Decimal {
	if asOfDate.Before(startDate) {
		return principal
	}
	if asOfDate.After(datetime.AddMonths(startDate, termInMonths)) {
		return decimal.Zero
	}
	monthsPassed := datetime.MonthsBetween(startDate, asOfDate)
	return balanceAfter(principal, annualInterestRate, termInMonths, monthsPassed)
}

// ExtraPaymentResult describes a simulated payoff with a fixed extra amount
// added to every monthly payment.
type ExtraPaymentResult struct {
	StandardInterest  decimal.Decimal
	SimulatedInterest decimal.Decimal
	Savings           decimal.Decimal
	PaymentsNeeded    int
	MonthsSaved       int
}

// SimulateExtraPayments runs the payoff loop paying the standard monthly
// payment plus extraPayment until the balance reaches zero or the term ends.
func SimulateExtraPayments(principal, annualInterestRate decimal.Decimal, termInMonths int, extraPayment decimal.Decimal) ExtraPaymentResult {
	result := ExtraPaymentResult{
		StandardInterest: TotalInterest(principal, annualInterestRate, termInMonths),
		PaymentsNeeded:   termInMonths,
	}
	if !extraPayment.IsPositive() || termInMonths <= 0 {
		result.SimulatedInterest = result.StandardInterest
		result.Savings = decimal.Zero
		return result
	}

	effectivePayment := MonthlyPayment(principal, annualInterestRate, termInMonths).Add(extraPayment)
	monthlyRate := mathutil.MonthlyRate(annualInterestRate)

	balance := principal
	totalInterest := decimal.Zero
	paymentsNeeded := 0
	for balance.IsPositive() && paymentsNeeded < termInMonths {
		interest := CalculateInterestPayment(balance, monthlyRate)
		principalPayment := effectivePayment.Sub(interest)

		if principalPayment.GreaterThanOrEqual(balance) {
			totalInterest = totalInterest.Add(interest)
			balance = decimal.Zero
		} else {
			balance = balance.Sub(principalPayment)
			totalInterest = totalInterest.Add(interest)
		}
		paymentsNeeded++
	}

	result.SimulatedInterest = totalInterest
	result.Savings = mathutil.ClampZero(result.StandardInterest.Sub(totalInterest))
	result.PaymentsNeeded = paymentsNeeded
	result.MonthsSaved = termInMonths - paymentsNeeded
	return result
}

// SavingsWithExtraPayments returns the interest saved by adding extraPayment
// to every monthly payment. It is zero when extraPayment is not positive.
func SavingsWithExtraPayments(principal, annualInterestRate decimal.Decimal, termInMonths int, extraPayment decimal.Decimal) decimal.Decimal {
	return SimulateExtraPayments(principal, annualInterestRate, termInMonths, extraPayment).Savings
}

// MonthsUntilPayoff returns how many monthly payments of the given size are
// needed to retire the principal. It returns 0 for non-positive inputs and
// NeverPaidOff when the payment does not exceed the first month's interest.
func MonthsUntilPayoff(principal, annualInterestRate, monthlyPayment decimal.Decimal) int {
	if !principal.IsPositive() || !monthlyPayment.IsPositive() {
		return 0
	}

	monthlyRate := mathutil.MonthlyRate(annualInterestRate)
	if monthlyRate.IsZero() {
		return int(principal.Div(monthlyPayment).Ceil().IntPart())
	}
	if monthlyPayment.LessThanOrEqual(principal.Mul(monthlyRate)) {
		return NeverPaidOff
	}

	ratio := monthlyPayment.DivRound(monthlyPayment.Sub(principal.Mul(monthlyRate)), workingPrecision)
	numerator, err := ratio.Ln(logPrecision)
	if err != nil {
		return NeverPaidOff
	}
	denominator, err := one.Add(monthlyRate).Ln(logPrecision)
	if err != nil || !denominator.IsPositive() {
		return NeverPaidOff
	}
	return int(numerator.DivRound(denominator, logPrecision).Ceil().IntPart())
}

// AffordableLoanAmount returns the largest principal whose monthly payment
// over termInMonths does not exceed maxMonthlyPayment.
func AffordableLoanAmount(maxMonthlyPayment, annualInterestRate decimal.Decimal, termInMonths int) decimal.Decimal {
	if termInMonths <= 0 || !maxMonthlyPayment.IsPositive() {
		return decimal.Zero
	}
	monthlyRate := mathutil.MonthlyRate(annualInterestRate)
	n := decimal.NewFromInt(int64(termInMonths))
	if !monthlyRate.IsPositive() {
		return maxMonthlyPayment.Mul(n)
	}
	factor, ok := growthFactor(monthlyRate, termInMonths)
	if !ok {
		return maxMonthlyPayment.Mul(n)
	}
	return maxMonthlyPayment.Mul(factor.Sub(one)).DivRound(factor.Mul(monthlyRate), workingPrecision)
}
