package config

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-organizer/pkg/datetime"
	"github.com/iwvelando/loan-organizer/pkg/loans"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Loan indicates a loan and its parameters.
type Loan struct {
	Name         string    `mapstructure:"name" yaml:"name" validate:"required"`
	Type         string    `mapstructure:"type" yaml:"type,omitempty"`
	Principal    float64   `mapstructure:"principal" yaml:"principal" validate:"gt=0"`
	InterestRate *float64  `mapstructure:"interestRate" yaml:"interestRate,omitempty" validate:"omitempty,gte=0,lte=1"`
	TermInMonths int       `mapstructure:"termInMonths" yaml:"termInMonths,omitempty" validate:"omitempty,gte=1,lte=600"`
	StartDate    string    `mapstructure:"startDate" yaml:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Inactive     bool      `mapstructure:"inactive" yaml:"inactive,omitempty"`
	Vehicle      *Vehicle  `mapstructure:"vehicle" yaml:"vehicle,omitempty"`
	Property     *Property `mapstructure:"property" yaml:"property,omitempty"`
	Payments     []Payment `mapstructure:"payments" yaml:"payments,omitempty" validate:"dive"`
}

// Vehicle holds the collateral of an auto loan.
type Vehicle struct {
	Make  string  `mapstructure:"make" yaml:"make"`
	Model string  `mapstructure:"model" yaml:"model"`
	Year  int     `mapstructure:"year" yaml:"year"`
	VIN   string  `mapstructure:"vin" yaml:"vin,omitempty"`
	Value float64 `mapstructure:"value" yaml:"value" validate:"gt=0"`
	IsNew bool    `mapstructure:"isNew" yaml:"isNew,omitempty"`
}

// Property holds the collateral of a mortgage.
type Property struct {
	Address        string  `mapstructure:"address" yaml:"address"`
	Value          float64 `mapstructure:"value" yaml:"value" validate:"gt=0"`
	DownPayment    float64 `mapstructure:"downPayment" yaml:"downPayment,omitempty" validate:"gte=0"`
	EscrowIncluded bool    `mapstructure:"escrowIncluded" yaml:"escrowIncluded,omitempty"`
	EscrowAmount   float64 `mapstructure:"escrowAmount" yaml:"escrowAmount,omitempty" validate:"gte=0"`
}

// Payment is a payment already made against a loan.
type Payment struct {
	Amount float64 `mapstructure:"amount" yaml:"amount"`
	Date   string  `mapstructure:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Notes  string  `mapstructure:"notes" yaml:"notes,omitempty"`
}

// BuildAccounts converts every configured loan into a loans.Account and
// records its payments.
func (conf *Configuration) BuildAccounts(logger *zap.Logger) ([]*loans.Account, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := conf.LoanDefaults()

	accounts := make([]*loans.Account, 0, len(conf.Loans))
	for i := range conf.Loans {
		account, err := conf.Loans[i].Build(logger, defaults)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	logger.Debug("built loan accounts",
		zap.String("op", "config.BuildAccounts"),
		zap.Int("count", len(accounts)),
	)
	return accounts, nil
}

// Build converts a single configured loan into a loans.Account.
func (loan *Loan) Build(logger *zap.Logger, defaults loans.Defaults) (*loans.Account, error) {
	terms, err := loan.terms()
	if err != nil {
		return nil, err
	}
	opts := []loans.Option{loans.WithLogger(logger), loans.WithDefaults(defaults)}

	var account *loans.Account
	switch {
	case loan.Vehicle != nil && loan.Property != nil:
		return nil, fmt.Errorf("loan %q: vehicle and property are mutually exclusive", loan.Name)
	case loan.Vehicle != nil:
		account, err = loans.NewAutoLoan(terms, loan.Vehicle.details(), opts...)
	case loan.Property != nil:
		account, err = loans.NewMortgageLoan(terms, loan.Property.details(), opts...)
	default:
		account, err = loans.NewAccount(terms, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("loan %q: %w", loan.Name, err)
	}

	if loan.Inactive {
		account.SetActive(false)
	}

	for _, payment := range loan.Payments {
		date, err := datetime.ParseDate(payment.Date)
		if err != nil {
			return nil, fmt.Errorf("loan %q: invalid payment date %q: %w", loan.Name, payment.Date, err)
		}
		if _, err := account.RecordPayment(decimal.NewFromFloat(payment.Amount), date, payment.Notes); err != nil {
			return nil, fmt.Errorf("loan %q: %w", loan.Name, err)
		}
	}

	return account, nil
}

func (loan *Loan) terms() (loans.Terms, error) {
	terms := loans.Terms{
		Name:         loan.Name,
		Principal:    decimal.NewFromFloat(loan.Principal),
		TermInMonths: loan.TermInMonths,
	}

	if loan.Type != "" {
		loanType, err := loans.ParseType(loan.Type)
		if err != nil {
			return loans.Terms{}, fmt.Errorf("loan %q: %w", loan.Name, err)
		}
		terms.Type = loanType
	}

	if loan.InterestRate != nil {
		terms.AnnualInterestRate = decimal.NewNullDecimal(decimal.NewFromFloat(*loan.InterestRate))
	}

	if loan.StartDate != "" {
		start, err := time.Parse(DateLayout, loan.StartDate)
		if err != nil {
			return loans.Terms{}, fmt.Errorf("loan %q: invalid start date %q: %w", loan.Name, loan.StartDate, err)
		}
		terms.StartDate = start
	}

	return terms, nil
}

func (v *Vehicle) details() loans.AutoDetails {
	return loans.AutoDetails{
		VehicleMake:  v.Make,
		VehicleModel: v.Model,
		VehicleYear:  v.Year,
		VIN:          v.VIN,
		VehicleValue: decimal.NewFromFloat(v.Value),
		IsNew:        v.IsNew,
	}
}

func (p *Property) details() loans.MortgageDetails {
	return loans.MortgageDetails{
		PropertyAddress: p.Address,
		PropertyValue:   decimal.NewFromFloat(p.Value),
		DownPayment:     decimal.NewFromFloat(p.DownPayment),
		EscrowIncluded:  p.EscrowIncluded,
		EscrowAmount:    decimal.NewFromFloat(p.EscrowAmount),
	}
}
