// Package output provides utilities for formatting and displaying loan reports.
package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iwvelando/loan-organizer/internal/report"
	"github.com/iwvelando/loan-organizer/pkg/constants"
	"github.com/iwvelando/loan-organizer/pkg/format"
	"github.com/iwvelando/loan-organizer/pkg/loans"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result report.Report) {
	_ = WritePretty(os.Stdout, result)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result report.Report) {
	_ = WriteCSV(os.Stdout, result)
}

// JSONFormat outputs the report as indented JSON.
func JSONFormat(result report.Report) error {
	return WriteJSON(os.Stdout, result)
}

// YAMLFormat outputs the report as YAML.
func YAMLFormat(result report.Report) error {
	return WriteYAML(os.Stdout, result)
}

// Write renders the report to w in the named output format.
func Write(w io.Writer, outputFormat string, result report.Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return WritePretty(w, result)
	case constants.OutputFormatCSV:
		return WriteCSV(w, result)
	case constants.OutputFormatJSON:
		return WriteJSON(w, result)
	case constants.OutputFormatYAML:
		return WriteYAML(w, result)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// WritePretty renders one block per loan followed by comparisons and totals.
func WritePretty(w io.Writer, result report.Report) error {
	p := message.NewPrinter(language.English)
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "=== Loan report as of %s ===\n", format.Date(result.AsOf))
	if len(result.Loans) == 0 {
		buf.WriteString("No loans configured\n")
		_, err := w.Write(buf.Bytes())
		return err
	}

	for _, loan := range result.Loans {
		header := loan.Name
		if !loan.Active {
			header += " (inactive)"
		}
		fmt.Fprintf(&buf, "\n--- %s ---\n", header)
		fmt.Fprintf(&buf, "%s\n", loan.Description)
		row(&buf, "Start date", format.Date(loan.StartDate))
		row(&buf, "Maturity date", format.Date(loan.MaturityDate))
		row(&buf, "Monthly payment", format.Currency(loan.MonthlyPayment))
		row(&buf, "Total interest", format.Currency(loan.TotalInterest))
		row(&buf, "Total cost", format.Currency(loan.TotalCost))
		row(&buf, "Remaining balance", format.Currency(loan.RemainingBalance))
		row(&buf, "Total paid", p.Sprintf("%s (%d payments)", format.Currency(loan.TotalPaid), loan.Payments))
		if result.ExtraPayment.IsPositive() {
			row(&buf, "Extra payment", p.Sprintf("%s/month saves %s and %d months",
				format.Currency(result.ExtraPayment), format.Currency(loan.InterestSavings), loan.MonthsSaved))
		}

		if auto := loan.Auto; auto != nil {
			row(&buf, "Vehicle value", p.Sprintf("%s after %d years (new value %s)",
				format.Currency(auto.CurrentValue), auto.AgeInYears, format.Currency(auto.VehicleValue)))
			row(&buf, "Loan-to-value", format.Percent(auto.LoanToValue))
			row(&buf, "Underwater", yesNo(auto.Underwater))
		}

		if mortgage := loan.Mortgage; mortgage != nil {
			row(&buf, "Property value", format.Currency(mortgage.PropertyValue))
			row(&buf, "Loan-to-value", format.Percent(mortgage.LoanToValue))
			row(&buf, "PMI required", yesNo(mortgage.PMIRequired))
			row(&buf, "Equity", format.Currency(mortgage.Equity))
			row(&buf, "Total monthly", format.Currency(mortgage.TotalMonthlyPayment))
		}

		if len(loan.Schedule) > 0 {
			writePrettySchedule(&buf, loan.Schedule)
		}
	}

	if len(result.Comparisons) > 0 {
		buf.WriteString("\n--- Comparisons ---\n")
		for _, c := range result.Comparisons {
			fmt.Fprintf(&buf, "%s vs %s: %s\n", c.First, c.Second, c.Message)
		}
	}

	buf.WriteString("\n--- Totals (active loans) ---\n")
	row(&buf, "Principal", format.Currency(result.Totals.Principal))
	row(&buf, "Monthly payment", format.Currency(result.Totals.MonthlyPayment))
	row(&buf, "Remaining balance", format.Currency(result.Totals.RemainingBalance))
	row(&buf, "Total interest", format.Currency(result.Totals.TotalInterest))
	row(&buf, "Total paid", format.Currency(result.Totals.TotalPaid))

	_, err := w.Write(buf.Bytes())
	return err
}

func row(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "%-17s | %s\n", label, value)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func writePrettySchedule(buf *bytes.Buffer, schedule []loans.PaymentDetails) {
	buf.WriteString("Month | Date       | Payment       | Principal     | Interest      | Balance\n")
	buf.WriteString("_____ | __________ | _____________ | _____________ | _____________ | _______\n")
	for _, d := range schedule {
		fmt.Fprintf(buf, "%5d | %s | %13s | %13s | %13s | %s\n",
			d.Month,
			format.Date(d.PaymentDate),
			format.Currency(d.MonthlyPayment),
			format.Currency(d.PrincipalPayment),
			format.Currency(d.InterestPayment),
			format.Currency(d.RemainingBalance),
		)
	}
}

// CsvString renders the report in comma-separated value format.
func CsvString(result report.Report) string {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, result)
	return buf.String()
}

// WriteCSV writes one row per loan. When any loan carries a schedule, a
// second table with one row per scheduled payment follows a blank line.
func WriteCSV(w io.Writer, result report.Report) error {
	var buf bytes.Buffer

	buf.WriteString(`"name","type","active","principal","interest rate","term (months)","start date","maturity date",`)
	buf.WriteString(`"monthly payment","total interest","total cost","remaining balance","total paid","interest savings","months saved"` + "\n")
	for _, loan := range result.Loans {
		fields := []string{
			loan.Name,
			string(loan.Type),
			fmt.Sprintf("%t", loan.Active),
			amount(loan.Principal),
			loan.InterestRate.String(),
			fmt.Sprintf("%d", loan.TermInMonths),
			loan.StartDate.Format(constants.DateLayout),
			loan.MaturityDate.Format(constants.DateLayout),
			amount(loan.MonthlyPayment),
			amount(loan.TotalInterest),
			amount(loan.TotalCost),
			amount(loan.RemainingBalance),
			amount(loan.TotalPaid),
			amount(loan.InterestSavings),
			fmt.Sprintf("%d", loan.MonthsSaved),
		}
		writeCSVRow(&buf, fields)
	}

	scheduleHeader := false
	for _, loan := range result.Loans {
		if len(loan.Schedule) == 0 {
			continue
		}
		if !scheduleHeader {
			buf.WriteString("\n" + `"loan","month","date","payment","principal","interest","balance"` + "\n")
			scheduleHeader = true
		}
		for _, d := range loan.Schedule {
			writeCSVRow(&buf, []string{
				loan.Name,
				fmt.Sprintf("%d", d.Month),
				d.PaymentDate.Format(constants.DateLayout),
				amount(d.MonthlyPayment),
				amount(d.PrincipalPayment),
				amount(d.InterestPayment),
				amount(d.RemainingBalance),
			})
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(constants.CurrencyPlaces)
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`)
	}
	buf.WriteByte('\n')
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, result report.Report) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report as json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes the report as a YAML document.
func WriteYAML(w io.Writer, result report.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding report as yaml: %w", err)
	}
	return encoder.Close()
}
