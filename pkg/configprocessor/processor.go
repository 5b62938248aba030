// Package configprocessor provides shared configuration processing utilities.
package configprocessor

import (
	"github.com/iwvelando/loan-organizer/pkg/validation"
)

// PaymentInfo represents a configured payment
type PaymentInfo struct {
	Date string
}

// LoanInfo represents loan configuration information
type LoanInfo struct {
	Name      string
	StartDate string
	Term      int
	Payments  []PaymentInfo
}

// Processor handles configuration processing and validation
type Processor struct{}

// NewProcessor creates a new configuration processor
func NewProcessor() *Processor {
	return &Processor{}
}

// ValidateConfiguration validates the loan book and returns warnings
func (p *Processor) ValidateConfiguration(asOfDate string, loans []LoanInfo) []string {
	var validationLoans []validation.LoanConfig
	for _, loan := range loans {
		var dates []string
		for _, payment := range loan.Payments {
			dates = append(dates, payment.Date)
		}
		validationLoans = append(validationLoans, validation.LoanConfig{
			Name:         loan.Name,
			StartDate:    loan.StartDate,
			Term:         loan.Term,
			PaymentDates: dates,
		})
	}

	validator := validation.ConfigValidator{
		AsOfDate: asOfDate,
		Loans:    validationLoans,
	}

	warnings := validator.ValidateAll()
	if len(warnings) == 0 {
		return nil
	}
	return warnings
}
