// Package constants provides shared constants for the loan-organizer application.
package constants

// DateLayout is the format expected in config files for loan and payment dates.
const DateLayout = "2006-01-02"

// DisplayDateLayout is the MM/DD/YYYY format used when presenting dates.
const DisplayDateLayout = "01/02/2006"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// CurrencyPlaces is the number of decimal places used for currency rounding
	CurrencyPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100
)

// Loan term and rate bounds
const (
	// MinTermMonths is the shortest permitted loan term
	MinTermMonths = 1

	// MaxTermMonths is the longest permitted loan term (50 years)
	MaxTermMonths = 600

	// MaxAnnualInterestRate is the largest rate accepted, expressed as a fraction
	MaxAnnualInterestRate = "1.0"
)

// Collateral constants
const (
	// PMIThreshold is the loan-to-value ratio above which private mortgage
	// insurance is required. Exactly at the threshold it is not.
	PMIThreshold = "0.80"

	// NewVehicleFirstYearDepreciation is the first-year value drop for a new vehicle
	NewVehicleFirstYearDepreciation = "0.20"

	// UsedVehicleFirstYearDepreciation is the first-year value drop for a used vehicle
	UsedVehicleFirstYearDepreciation = "0.10"

	// AnnualVehicleDepreciation is the value drop applied for every year after the first
	AnnualVehicleDepreciation = "0.10"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "loans.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "loans.yaml.example"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "LOAN_ORGANIZER"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = "0.01"
)
