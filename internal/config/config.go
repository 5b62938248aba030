// Package config defines the data structures related to configuration and
// includes functions for loading, validating and converting the loan book.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/loan-organizer/pkg/configprocessor"
	"github.com/iwvelando/loan-organizer/pkg/constants"
	"github.com/iwvelando/loan-organizer/pkg/datetime"
	"github.com/iwvelando/loan-organizer/pkg/loans"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// DateLayout is the format expected in config files for loan and payment
// dates.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for loan-organizer.
type Configuration struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging,omitempty"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output,omitempty"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults,omitempty"`
	Loans    []Loan         `mapstructure:"loans" yaml:"loans" validate:"dive"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" yaml:"format,omitempty" validate:"omitempty,oneof=json console"`
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format,omitempty" validate:"omitempty,oneof=pretty csv json yaml"`
	Schedule bool   `mapstructure:"schedule" yaml:"schedule,omitempty"` // include amortization schedules
}

// DefaultsConfig holds the values applied to loans that leave them unset and
// the parameters of the report.
type DefaultsConfig struct {
	InterestRate *float64 `mapstructure:"interestRate" yaml:"interestRate,omitempty" validate:"omitempty,gte=0,lte=1"`
	TermInMonths int      `mapstructure:"termInMonths" yaml:"termInMonths,omitempty" validate:"omitempty,gte=1,lte=600"`
	AsOfDate     string   `mapstructure:"asOfDate" yaml:"asOfDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExtraPayment float64  `mapstructure:"extraPayment" yaml:"extraPayment,omitempty" validate:"gte=0"`
}

// envKeys are bound explicitly so environment overrides apply even when the
// key is absent from the file.
var envKeys = []string{
	"logging.level",
	"logging.format",
	"logging.outputFile",
	"output.format",
	"output.schedule",
	"defaults.interestRate",
	"defaults.termInMonths",
	"defaults.asOfDate",
	"defaults.extraPayment",
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A .env file in the working directory is loaded first
// so LOAN_ORGANIZER_* variables defined there can override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("unable to bind environment for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &configuration, nil
}

// Validate checks the structural constraints expressed in the struct tags.
// Domain rules are enforced again when the loans are built.
func (c *Configuration) Validate() error {
	return validator.New().Struct(c)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var loanInfos []configprocessor.LoanInfo
	for _, loan := range c.Loans {
		term := loan.TermInMonths
		if term == 0 {
			term = c.LoanDefaults().TermInMonths
		}
		var payments []configprocessor.PaymentInfo
		for _, payment := range loan.Payments {
			payments = append(payments, configprocessor.PaymentInfo{Date: payment.Date})
		}
		loanInfos = append(loanInfos, configprocessor.LoanInfo{
			Name:      loan.Name,
			StartDate: loan.StartDate,
			Term:      term,
			Payments:  payments,
		})
	}

	processor := configprocessor.NewProcessor()
	return processor.ValidateConfiguration(c.Defaults.AsOfDate, loanInfos)
}

// LoanDefaults returns the configured defaults layered over the standard ones.
func (c *Configuration) LoanDefaults() loans.Defaults {
	defaults := loans.StandardDefaults()
	if c.Defaults.InterestRate != nil {
		defaults.InterestRate = decimal.NewFromFloat(*c.Defaults.InterestRate)
	}
	if c.Defaults.TermInMonths != 0 {
		defaults.TermInMonths = c.Defaults.TermInMonths
	}
	return defaults
}

// AsOf returns the report date, falling back to the day of now.
func (c *Configuration) AsOf(now time.Time) (time.Time, error) {
	if c.Defaults.AsOfDate == "" {
		return datetime.Date(now.UTC()), nil
	}
	asOf, err := datetime.ParseDate(c.Defaults.AsOfDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid asOfDate %q: %w", c.Defaults.AsOfDate, err)
	}
	return asOf, nil
}

// ExtraPayment returns the configured extra monthly payment.
func (c *Configuration) ExtraPayment() decimal.Decimal {
	return decimal.NewFromFloat(c.Defaults.ExtraPayment)
}
