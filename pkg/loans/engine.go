package loans

import (
	"time"

	"github.com/iwvelando/loan-organizer/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CalculateMonthlyPayment returns the fixed payment that retires the
// principal over numberOfPayments months at the account's rate. It does not
// depend on the account's own term.
func (a *Account) CalculateMonthlyPayment(numberOfPayments int) decimal.Decimal {
	s := a.snapshot()
	return MonthlyPayment(s.principal, s.rate, numberOfPayments)
}

// CalculateTotalInterest returns the interest paid over the full term.
func (a *Account) CalculateTotalInterest() decimal.Decimal {
	s := a.snapshot()
	return TotalInterest(s.principal, s.rate, s.termInMonths)
}

// CalculateTotalCost returns the sum of all scheduled payments.
func (a *Account) CalculateTotalCost() decimal.Decimal {
	s := a.snapshot()
	return TotalLoanCost(s.principal, s.rate, s.termInMonths)
}

// GenerateAmortizationSchedule returns one row per month of the term.
func (a *Account) GenerateAmortizationSchedule() []PaymentDetails {
	s := a.snapshot()
	return AmortizationSchedule(s.principal, s.rate, s.termInMonths, s.startDate)
}

// CalculateRemainingBalance returns the scheduled balance as of asOf.
func (a *Account) CalculateRemainingBalance(asOf time.Time) decimal.Decimal {
	s := a.snapshot()
	return RemainingBalance(s.principal, s.rate, s.termInMonths, s.startDate, asOf)
}

// CalculateSavingsWithExtraPayments returns the interest saved by paying
// extraPayment on top of every scheduled payment.
func (a *Account) CalculateSavingsWithExtraPayments(extraPayment decimal.Decimal) decimal.Decimal {
	s := a.snapshot()
	return SavingsWithExtraPayments(s.principal, s.rate, s.termInMonths, extraPayment)
}

// MonthsSaved returns how many fewer payments are needed when extraPayment is
// added to every scheduled payment.
func (a *Account) MonthsSaved(extraPayment decimal.Decimal) int {
	s := a.snapshot()
	return SimulateExtraPayments(s.principal, s.rate, s.termInMonths, extraPayment).MonthsSaved
}

// RecordPayment appends a payment to the history. Non-positive amounts are
// rejected and leave the history unchanged.
func (a *Account) RecordPayment(amount decimal.Decimal, date time.Time, notes string) (Payment, error) {
	payment, err := NewPayment(amount, date, notes)
	if err != nil {
		a.logRejected("loans.RecordPayment", err)
		return Payment{}, err
	}

	a.mu.Lock()
	a.paymentHistory = append(a.paymentHistory, payment)
	count := len(a.paymentHistory)
	a.mu.Unlock()

	a.logger.Debug("recorded payment",
		zap.String("op", "loans.RecordPayment"),
		zap.String("id", a.id.String()),
		zap.String("amount", amount.StringFixed(2)),
		zap.Time("date", date),
		zap.Int("payments", count),
	)
	return payment, nil
}

// TotalPaid sums every recorded payment.
func (a *Account) TotalPaid() decimal.Decimal {
	history := a.PaymentHistory()
	amounts := make([]decimal.Decimal, 0, len(history))
	for _, p := range history {
		amounts = append(amounts, p.Amount)
	}
	return mathutil.Sum(amounts...)
}
