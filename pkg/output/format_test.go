package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/iwvelando/loan-organizer/internal/report"
	"github.com/iwvelando/loan-organizer/pkg/loans"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, dom int) time.Time {
	return time.Date(year, month, dom, 0, 0, 0, 0, time.UTC)
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func testReport() report.Report {
	return report.Report{
		AsOf:         day(2026, time.January, 15),
		ExtraPayment: d("50"),
		Loans: []report.LoanSummary{
			{
				Name:             "Car Loan",
				Type:             loans.TypeAuto,
				Description:      "Auto Loan: Car Loan - $25,000.00 at 3.99% for 60 months on 2025 Toyota Camry",
				Active:           true,
				Principal:        d("25000"),
				InterestRate:     d("0.0399"),
				TermInMonths:     60,
				StartDate:        day(2025, time.January, 15),
				MaturityDate:     day(2030, time.January, 15),
				MonthlyPayment:   d("460.3"),
				TotalInterest:    d("2618.01"),
				TotalCost:        d("27618.01"),
				RemainingBalance: d("20390.2"),
				TotalPaid:        d("460.25"),
				Payments:         1,
				InterestSavings:  d("127.5"),
				MonthsSaved:      6,
				Auto: &report.AutoSummary{
					Vehicle:      "2025 Toyota Camry",
					VehicleValue: d("30000"),
					AgeInYears:   1,
					CurrentValue: d("24000"),
					LoanToValue:  d("0.8333"),
				},
			},
			{
				Name:             "Home Loan",
				Type:             loans.TypeMortgage,
				Description:      "Mortgage Loan: Home Loan - $200,000.00 at 4.50% for 360 months on property at 123 Main St",
				Active:           false,
				Principal:        d("200000"),
				InterestRate:     d("0.045"),
				TermInMonths:     360,
				StartDate:        day(2025, time.January, 1),
				MaturityDate:     day(2055, time.January, 1),
				MonthlyPayment:   d("1013.37"),
				TotalInterest:    d("164813.42"),
				TotalCost:        d("364813.42"),
				RemainingBalance: d("196773.55"),
				Mortgage: &report.MortgageSummary{
					PropertyAddress:     "123 Main St",
					PropertyValue:       d("250000"),
					LoanToValue:         d("0.8"),
					TotalMonthlyPayment: d("1363.37"),
					Equity:              d("50000"),
				},
			},
		},
		Comparisons: []report.ComparisonSummary{
			{
				First:      "Car Loan",
				Second:     "Home Loan",
				Cheaper:    "Car Loan",
				Difference: d("337195.41"),
				Message:    "Car Loan has a lower total cost by $337,195.41",
			},
		},
		Totals: report.Totals{
			Principal:        d("25000"),
			MonthlyPayment:   d("460.3"),
			RemainingBalance: d("20390.2"),
			TotalInterest:    d("2618.01"),
			TotalPaid:        d("460.25"),
		},
	}
}

func withSchedule(result report.Report) report.Report {
	result.Loans[0].Schedule = []loans.PaymentDetails{
		{
			Month:            1,
			PaymentDate:      day(2025, time.February, 15),
			MonthlyPayment:   d("460.3"),
			PrincipalPayment: d("377.18"),
			InterestPayment:  d("83.12"),
			RemainingBalance: d("24622.82"),
		},
	}
	return result
}

func TestPrettyFormat(t *testing.T) {
	output := captureStdout(t, func() { PrettyFormat(testReport()) })

	expected := []string{
		"=== Loan report as of 01/15/2026 ===",
		"--- Car Loan ---",
		"Auto Loan: Car Loan - $25,000.00 at 3.99% for 60 months on 2025 Toyota Camry",
		"Monthly payment   | $460.30",
		"Remaining balance | $20,390.20",
		"Total paid        | $460.25 (1 payments)",
		"Extra payment     | $50.00/month saves $127.50 and 6 months",
		"Vehicle value     | $24,000.00 after 1 years (new value $30,000.00)",
		"Loan-to-value     | 83.33%",
		"Underwater        | no",
		"--- Home Loan (inactive) ---",
		"PMI required      | no",
		"Equity            | $50,000.00",
		"Total monthly     | $1,363.37",
		"--- Comparisons ---",
		"Car Loan vs Home Loan: Car Loan has a lower total cost by $337,195.41",
		"--- Totals (active loans) ---",
		"Principal         | $25,000.00",
	}
	for _, element := range expected {
		assert.Contains(t, output, element)
	}
	assert.NotContains(t, output, "Month | Date", "schedule was not requested")
}

func TestPrettyFormatSchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, withSchedule(testReport())))
	output := buf.String()

	assert.Contains(t, output, "Month | Date       | Payment")
	assert.Contains(t, output, "    1 | 02/15/2025 |       $460.30 |       $377.18 |        $83.12 | $24,622.82")
}

func TestPrettyFormatWithoutExtraPayment(t *testing.T) {
	result := testReport()
	result.ExtraPayment = decimal.Zero

	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, result))
	assert.NotContains(t, buf.String(), "Extra payment")
}

func TestPrettyFormatEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, report.Report{AsOf: day(2026, time.January, 15)}))
	assert.Contains(t, buf.String(), "No loans configured")
	assert.NotContains(t, buf.String(), "Totals")
}

func TestCsvFormat(t *testing.T) {
	output := CsvString(testReport())
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 3, "expected header and two rows\n%s", output)

	assert.True(t, strings.HasPrefix(lines[0], `"name","type","active","principal","interest rate"`), lines[0])
	assert.Equal(t, `"Car Loan","Auto","true","25000.00","0.0399","60","2025-01-15","2030-01-15","460.30","2618.01","27618.01","20390.20","460.25","127.50","6"`, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], `"Home Loan","Mortgage","false"`), lines[2])
}

func TestCsvStringMatchesCsvFormat(t *testing.T) {
	result := withSchedule(testReport())
	expected := CsvString(result)
	output := captureStdout(t, func() { CsvFormat(result) })

	assert.Equal(t, expected, output)
}

func TestCsvFormatSchedule(t *testing.T) {
	output := CsvString(withSchedule(testReport()))

	assert.Contains(t, output, "\n\n"+`"loan","month","date","payment","principal","interest","balance"`)
	assert.Contains(t, output, `"Car Loan","1","2025-02-15","460.30","377.18","83.12","24622.82"`)
}

func TestCsvFormatQuotesHandling(t *testing.T) {
	result := report.Report{Loans: []report.LoanSummary{{Name: `The "Big" Loan`, Type: loans.TypeGeneral}}}
	output := CsvString(result)
	assert.Contains(t, output, `"The ""Big"" Loan","General"`)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testReport()))

	var decoded struct {
		Loans []struct {
			Name           string `json:"name"`
			MonthlyPayment string `json:"monthlyPayment"`
			Auto           *struct {
				Underwater bool `json:"underwater"`
			} `json:"auto"`
		} `json:"loans"`
		Comparisons []struct {
			Cheaper string `json:"cheaper"`
		} `json:"comparisons"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded), buf.String())
	require.Len(t, decoded.Loans, 2)
	assert.Equal(t, "460.3", decoded.Loans[0].MonthlyPayment)
	assert.NotNil(t, decoded.Loans[0].Auto)
	assert.Nil(t, decoded.Loans[1].Auto)
	require.Len(t, decoded.Comparisons, 1)
	assert.Equal(t, "Car Loan", decoded.Comparisons[0].Cheaper)
	assert.NotContains(t, buf.String(), `"schedule"`, "schedule should be omitted when empty")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, withSchedule(testReport())))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded), buf.String())
	loanList, ok := decoded["loans"].([]interface{})
	require.True(t, ok, "loans: %v", decoded["loans"])
	require.Len(t, loanList, 2)
	first, ok := loanList[0].(map[string]interface{})
	require.True(t, ok, "unexpected loan entry %T", loanList[0])
	assert.Equal(t, "Car Loan", first["name"])
	assert.Contains(t, first, "schedule")
}

func TestWrite(t *testing.T) {
	for _, outputFormat := range []string{"pretty", "csv", "json", "yaml"} {
		t.Run(outputFormat, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, outputFormat, testReport()))
			assert.Contains(t, buf.String(), "Car Loan")
		})
	}

	assert.Error(t, Write(io.Discard, "xml", testReport()))
}
