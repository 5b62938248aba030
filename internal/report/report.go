// Package report defines the data structures related to a loan book report and
// includes functions for computing per-loan summaries and comparisons.
package report

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-organizer/pkg/constants"
	"github.com/iwvelando/loan-organizer/pkg/datetime"
	"github.com/iwvelando/loan-organizer/pkg/loans"
	"github.com/iwvelando/loan-organizer/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options control what a report computes.
type Options struct {
	AsOf            time.Time
	ExtraPayment    decimal.Decimal
	IncludeSchedule bool
}

// Report holds the summaries of every loan in a book.
type Report struct {
	AsOf         time.Time           `json:"asOf" yaml:"asOf"`
	ExtraPayment decimal.Decimal     `json:"extraPayment" yaml:"extraPayment"`
	Loans        []LoanSummary       `json:"loans" yaml:"loans"`
	Comparisons  []ComparisonSummary `json:"comparisons,omitempty" yaml:"comparisons,omitempty"`
	Totals       Totals              `json:"totals" yaml:"totals"`
}

// LoanSummary holds the computed figures for a single loan.
type LoanSummary struct {
	ID               string          `json:"id" yaml:"id"`
	Name             string          `json:"name" yaml:"name"`
	Type             loans.Type      `json:"type" yaml:"type"`
	Description      string          `json:"description" yaml:"description"`
	Active           bool            `json:"active" yaml:"active"`
	Principal        decimal.Decimal `json:"principal" yaml:"principal"`
	InterestRate     decimal.Decimal `json:"interestRate" yaml:"interestRate"`
	TermInMonths     int             `json:"termInMonths" yaml:"termInMonths"`
	StartDate        time.Time       `json:"startDate" yaml:"startDate"`
	MaturityDate     time.Time       `json:"maturityDate" yaml:"maturityDate"`
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment" yaml:"monthlyPayment"`
	TotalInterest    decimal.Decimal `json:"totalInterest" yaml:"totalInterest"`
	TotalCost        decimal.Decimal `json:"totalCost" yaml:"totalCost"`
	RemainingBalance decimal.Decimal `json:"remainingBalance" yaml:"remainingBalance"`
	TotalPaid        decimal.Decimal `json:"totalPaid" yaml:"totalPaid"`
	Payments         int             `json:"payments" yaml:"payments"`
	InterestSavings  decimal.Decimal `json:"interestSavings" yaml:"interestSavings"`
	MonthsSaved      int             `json:"monthsSaved" yaml:"monthsSaved"`

	Auto     *AutoSummary           `json:"auto,omitempty" yaml:"auto,omitempty"`
	Mortgage *MortgageSummary       `json:"mortgage,omitempty" yaml:"mortgage,omitempty"`
	Schedule []loans.PaymentDetails `json:"schedule,omitempty" yaml:"schedule,omitempty"`
}

// AutoSummary holds the collateral figures of an auto loan.
type AutoSummary struct {
	Vehicle      string          `json:"vehicle" yaml:"vehicle"`
	VehicleValue decimal.Decimal `json:"vehicleValue" yaml:"vehicleValue"`
	AgeInYears   int             `json:"ageInYears" yaml:"ageInYears"`
	CurrentValue decimal.Decimal `json:"currentValue" yaml:"currentValue"`
	LoanToValue  decimal.Decimal `json:"loanToValue" yaml:"loanToValue"`
	Underwater   bool            `json:"underwater" yaml:"underwater"`
}

// MortgageSummary holds the collateral figures of a mortgage.
type MortgageSummary struct {
	PropertyAddress     string          `json:"propertyAddress" yaml:"propertyAddress"`
	PropertyValue       decimal.Decimal `json:"propertyValue" yaml:"propertyValue"`
	LoanToValue         decimal.Decimal `json:"loanToValue" yaml:"loanToValue"`
	PMIRequired         bool            `json:"pmiRequired" yaml:"pmiRequired"`
	TotalMonthlyPayment decimal.Decimal `json:"totalMonthlyPayment" yaml:"totalMonthlyPayment"`
	Equity              decimal.Decimal `json:"equity" yaml:"equity"`
}

// ComparisonSummary is the total cost comparison of two loans.
type ComparisonSummary struct {
	First      string          `json:"first" yaml:"first"`
	Second     string          `json:"second" yaml:"second"`
	Cheaper    string          `json:"cheaper,omitempty" yaml:"cheaper,omitempty"`
	Difference decimal.Decimal `json:"difference" yaml:"difference"`
	Tie        bool            `json:"tie" yaml:"tie"`
	Message    string          `json:"message" yaml:"message"`
}

// Totals aggregates the active loans of a report.
type Totals struct {
	Principal        decimal.Decimal `json:"principal" yaml:"principal"`
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment" yaml:"monthlyPayment"`
	RemainingBalance decimal.Decimal `json:"remainingBalance" yaml:"remainingBalance"`
	TotalInterest    decimal.Decimal `json:"totalInterest" yaml:"totalInterest"`
	TotalPaid        decimal.Decimal `json:"totalPaid" yaml:"totalPaid"`
}

// Build computes the report for the given accounts.
func Build(logger *zap.Logger, accounts []*loans.Account, opts Options) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := Report{
		AsOf:         opts.AsOf,
		ExtraPayment: opts.ExtraPayment,
		Loans:        make([]LoanSummary, 0, len(accounts)),
	}

	for _, account := range accounts {
		summary, err := Summarize(account, opts)
		if err != nil {
			return result, fmt.Errorf("summarizing loan %q: %w", account.Name(), err)
		}
		result.Loans = append(result.Loans, summary)

		if !summary.Active {
			logger.Debug(fmt.Sprintf("excluding loan %s from totals because it is inactive", summary.Name),
				zap.String("op", "report.Build"),
			)
			continue
		}
		result.Totals.Principal = result.Totals.Principal.Add(summary.Principal)
		result.Totals.MonthlyPayment = result.Totals.MonthlyPayment.Add(summary.MonthlyPayment)
		result.Totals.RemainingBalance = result.Totals.RemainingBalance.Add(summary.RemainingBalance)
		result.Totals.TotalInterest = result.Totals.TotalInterest.Add(summary.TotalInterest)
		result.Totals.TotalPaid = result.Totals.TotalPaid.Add(summary.TotalPaid)
	}

	result.Comparisons = Compare(accounts)

	logger.Debug("built loan report",
		zap.String("op", "report.Build"),
		zap.Int("loans", len(result.Loans)),
		zap.Int("comparisons", len(result.Comparisons)),
		zap.String("asOf", opts.AsOf.Format(constants.DateLayout)),
	)
	return result, nil
}

// Summarize computes the figures for a single account.
func Summarize(account *loans.Account, opts Options) (LoanSummary, error) {
	extra := loans.SimulateExtraPayments(account.Principal(), account.AnnualInterestRate(), account.TermInMonths(), opts.ExtraPayment)

	summary := LoanSummary{
		ID:               account.ID().String(),
		Name:             account.Name(),
		Type:             account.Type(),
		Description:      account.String(),
		Active:           account.IsActive(),
		Principal:        account.Principal(),
		InterestRate:     account.AnnualInterestRate(),
		TermInMonths:     account.TermInMonths(),
		StartDate:        account.StartDate(),
		MaturityDate:     account.MaturityDate(),
		MonthlyPayment:   mathutil.Round(account.CalculateMonthlyPayment(account.TermInMonths())),
		TotalInterest:    mathutil.Round(account.CalculateTotalInterest()),
		TotalCost:        mathutil.Round(account.CalculateTotalCost()),
		RemainingBalance: mathutil.Round(account.CalculateRemainingBalance(opts.AsOf)),
		TotalPaid:        account.TotalPaid(),
		Payments:         len(account.PaymentHistory()),
		InterestSavings:  mathutil.Round(extra.Savings),
		MonthsSaved:      extra.MonthsSaved,
	}

	if vehicle, ok := account.Auto(); ok {
		auto, err := summarizeAuto(account, vehicle, opts.AsOf)
		if err != nil {
			return summary, err
		}
		summary.Auto = auto
	}

	if property, ok := account.Mortgage(); ok {
		mortgage, err := summarizeMortgage(account, property)
		if err != nil {
			return summary, err
		}
		summary.Mortgage = mortgage
	}

	if opts.IncludeSchedule {
		summary.Schedule = roundSchedule(account.GenerateAmortizationSchedule(), account.Principal())
	}

	return summary, nil
}

// ageInYears counts whole years from start to asOf, never negative.
func ageInYears(start, asOf time.Time) int {
	months := datetime.MonthsBetween(start, asOf)
	if months < 0 {
		return 0
	}
	return months / constants.MonthsPerYear
}

func summarizeAuto(account *loans.Account, vehicle loans.AutoDetails, asOf time.Time) (*AutoSummary, error) {
	age := ageInYears(account.StartDate(), asOf)

	ltv, err := account.LoanToValueRatio()
	if err != nil {
		return nil, err
	}
	underwater, err := account.IsLoanUnderwater(age)
	if err != nil {
		return nil, err
	}

	return &AutoSummary{
		Vehicle:      fmt.Sprintf("%d %s %s", vehicle.VehicleYear, vehicle.VehicleMake, vehicle.VehicleModel),
		VehicleValue: vehicle.VehicleValue,
		AgeInYears:   age,
		CurrentValue: mathutil.Round(loans.EstimateCurrentValue(vehicle, age)),
		LoanToValue:  ltv.Round(4),
		Underwater:   underwater,
	}, nil
}

func summarizeMortgage(account *loans.Account, property loans.MortgageDetails) (*MortgageSummary, error) {
	ltv, err := account.LoanToValueRatio()
	if err != nil {
		return nil, err
	}
	pmi, err := account.IsPMIRequired()
	if err != nil {
		return nil, err
	}
	total, err := account.CalculateTotalMonthlyPayment()
	if err != nil {
		return nil, err
	}
	equity, err := account.CalculateEquity()
	if err != nil {
		return nil, err
	}

	return &MortgageSummary{
		PropertyAddress:     property.PropertyAddress,
		PropertyValue:       property.PropertyValue,
		LoanToValue:         ltv.Round(4),
		PMIRequired:         pmi,
		TotalMonthlyPayment: mathutil.Round(total),
		Equity:              mathutil.Round(equity),
	}, nil
}

// roundSchedule converts a schedule to whole cents. Each row keeps the rounded
// scheduled payment and interest, the principal is their difference and the
// balance is carried from the previous displayed row, so every row adds up.
// The final row retires the displayed balance.
func roundSchedule(schedule []loans.PaymentDetails, principal decimal.Decimal) []loans.PaymentDetails {
	balance := mathutil.Round(principal)
	for i := range schedule {
		row := &schedule[i]
		row.InterestPayment = mathutil.Round(row.InterestPayment)
		paid := mathutil.ClampZero(mathutil.Round(row.MonthlyPayment).Sub(row.InterestPayment))
		if i == len(schedule)-1 || paid.GreaterThan(balance) {
			paid = balance
		}
		row.PrincipalPayment = paid
		row.MonthlyPayment = paid.Add(row.InterestPayment)
		balance = balance.Sub(paid)
		row.RemainingBalance = balance
	}
	return schedule
}

// Compare produces a total cost comparison for every pair of accounts.
func Compare(accounts []*loans.Account) []ComparisonSummary {
	var comparisons []ComparisonSummary
	for i := 0; i < len(accounts); i++ {
		for j := i + 1; j < len(accounts); j++ {
			result := loans.CompareLoanCosts(accounts[i], accounts[j])
			summary := ComparisonSummary{
				First:      accounts[i].Name(),
				Second:     accounts[j].Name(),
				Difference: result.Difference,
				Tie:        result.Tie,
				Message:    result.String(),
			}
			if result.Cheaper != nil {
				summary.Cheaper = result.Cheaper.Name()
			}
			comparisons = append(comparisons, summary)
		}
	}
	return comparisons
}
