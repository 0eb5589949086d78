package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/mediquote/internal/domain"
)

// ConsoleFormatter renders the full estimate report for a terminal
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(est *domain.Estimate) ([]byte, error) {
	if est == nil {
		return nil, fmt.Errorf("no estimate to format")
	}
	var buf bytes.Buffer

	rule := strings.Repeat("=", 72)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "HEALTH INSURANCE PREMIUM ESTIMATE")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	writeProfile(&buf, est)

	switch est.Status {
	case domain.StatusRejected:
		fmt.Fprintln(&buf, "PREDICTION ERROR")
		fmt.Fprintln(&buf, strings.Repeat("-", 16))
		fmt.Fprintln(&buf, est.Error)
		return buf.Bytes(), nil
	case domain.StatusFallback:
		for _, w := range est.Warnings {
			fmt.Fprintf(&buf, "! %s\n", w)
		}
		fmt.Fprintln(&buf)
	}

	if !est.HasQuote() {
		return buf.Bytes(), nil
	}

	fmt.Fprintln(&buf, "ESTIMATED ANNUAL PREMIUM")
	fmt.Fprintln(&buf, strings.Repeat("-", 24))
	fmt.Fprintf(&buf, "%s  (%s)\n\n", FormatCurrency(est.Quote.Amount), est.Quote.Source)

	if est.Insights != nil {
		fmt.Fprintln(&buf, "PREMIUM COMPARISON")
		fmt.Fprintln(&buf, strings.Repeat("-", 18))
		for _, bar := range est.Insights.Bands.Bars() {
			fmt.Fprintf(&buf, "%-14s %12s\n", bar.Label, FormatCurrency(bar.Value))
		}
		fmt.Fprintln(&buf)

		fmt.Fprintln(&buf, "HEALTH INSIGHTS")
		fmt.Fprintln(&buf, strings.Repeat("-", 15))
		for _, note := range est.Insights.Notes {
			fmt.Fprintf(&buf, "• %s: %s\n", note.Title, note.Message)
			if note.HasSaving() {
				fmt.Fprintf(&buf, "  Potential saving: %s per year\n", FormatCurrency(note.Saving))
			}
		}
		fmt.Fprintln(&buf)
	}

	if len(est.Plans) > 0 {
		fmt.Fprintln(&buf, "INSURANCE PLANS")
		fmt.Fprintln(&buf, strings.Repeat("-", 15))
		fmt.Fprintf(&buf, "%-15s %8s %12s %10s %6s %14s %14s %7s\n",
			"Plan", "Coverage", "Annual", "Monthly", "Term", "Total Paid", "Claimable", "Return")
		for _, p := range est.Plans {
			fmt.Fprintf(&buf, "%-15s %8s %12s %10s %6d %14s %14s %7s\n",
				p.Plan.Name,
				FormatPercentage(p.Plan.CoveragePercentage),
				FormatCurrency(p.AdjustedPremium),
				FormatCurrency(p.MonthlyPremium),
				p.Term,
				FormatCurrency(p.TotalPaid),
				FormatCurrency(p.Claimable),
				FormatRatio(p.Ratio))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}

	return buf.Bytes(), nil
}

func writeProfile(buf *bytes.Buffer, est *domain.Estimate) {
	p := est.Profile
	fmt.Fprintln(buf, "APPLICANT")
	fmt.Fprintln(buf, strings.Repeat("-", 9))
	fmt.Fprintf(buf, "Age: %d  Gender: %s  Region: %s  Children: %d  Smoker: %s\n",
		p.Age, p.Gender, p.Region, p.Children, yesNo(p.IsSmoker))
	fmt.Fprintf(buf, "Height: %d cm  Weight: %d kg", p.HeightCm, p.WeightKg)
	if est.BMI != nil {
		fmt.Fprintf(buf, "  BMI: %s (%s)", est.BMI, est.BMI.Category)
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
